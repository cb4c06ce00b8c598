// cmd/worker/main.go
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"

	"github.com/launchdeck/campaignhub-backend/internal/config"
	"github.com/launchdeck/campaignhub-backend/internal/export"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
)

type ExportJob struct {
	PresentationID string `json:"presentation_id"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("failed to connect to DB:", err)
	}
	defer db.Close()

	presentationRepo := &repository.PresentationRepository{DB: db}

	// Connect to RabbitMQ
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open a channel:", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"presentation_exports", // name
		true,                   // durable
		false,                  // delete when unused
		false,                  // exclusive
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		log.Fatal("Failed to declare queue:", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case d, ok := <-msgs:
				if !ok {
					return nil
				}
				handleDelivery(d, ch, presentationRepo, cfg.ExportDir)
			}
		}
	})

	log.Println("Worker running, waiting for export jobs...")
	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Fatal("worker stopped:", err)
	}
}

// jobPublisher is the part of *amqp.Channel the retry path needs.
type jobPublisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

func handleDelivery(d amqp.Delivery, pub jobPublisher, repo repository.PresentationRepositoryInterface, exportDir string) {
	var job ExportJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		log.Println("Invalid job:", err)
		d.Ack(false)
		return
	}

	if err := processExport(job.PresentationID, repo, exportDir); err != nil {
		log.Println("Failed to export presentation:", err)
		// Retry logic: republish with a bumped x-retry-count, up to 3
		// attempts. A plain Nack requeue would redeliver the original
		// headers untouched and loop forever.
		retryCount := deliveryRetryCount(d)
		if retryCount < 3 {
			repub := amqp.Publishing{
				ContentType: "application/json",
				Body:        d.Body,
				Headers:     amqp.Table{"x-retry-count": retryCount + 1},
			}
			if err := pub.Publish("", "presentation_exports", false, false, repub); err != nil {
				log.Println("Failed to republish export job:", err)
				d.Nack(false, true)
				return
			}
			d.Ack(false)
			return
		}
		_ = repo.UpdateStatus(job.PresentationID, "failed", err.Error())
	}

	d.Ack(false)
}

func deliveryRetryCount(d amqp.Delivery) int32 {
	switch v := d.Headers["x-retry-count"].(type) {
	case int32:
		return v
	case int64:
		return int32(v)
	}
	return 0
}

func processExport(presentationID string, repo repository.PresentationRepositoryInterface, exportDir string) error {
	deck, err := repo.GetByID(presentationID)
	if err != nil {
		return err
	}
	if deck == nil {
		log.Println("Presentation not found, dropping job:", presentationID)
		return nil
	}

	path, err := export.WriteFile(exportDir, deck)
	if err != nil {
		return err
	}

	if err := repo.MarkExported(deck.ID); err != nil {
		return err
	}

	log.Println("✅ Exported presentation", deck.ID, "to", path)
	return nil
}
