// internal/controller/presentation_controller.go
package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/streadway/amqp"

	"github.com/launchdeck/campaignhub-backend/internal/repository"
	"github.com/launchdeck/campaignhub-backend/internal/service"
)

type PresentationController struct {
	PresentationService *service.PresentationService
	PresentationRepo    repository.PresentationRepositoryInterface
	AMQPURL             string
}

// Generate builds the deck and hands the export off to the worker via
// RabbitMQ. The deck itself is returned immediately.
func (c *PresentationController) Generate(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var body struct {
		Title string `json:"title"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
	}

	deck, err := c.PresentationService.Generate(campaignID, body.Title)
	if err != nil {
		respondError(w, err)
		return
	}

	// Connect to RabbitMQ
	conn, err := amqp.Dial(c.AMQPURL)
	if err != nil {
		http.Error(w, "Failed to connect to queue", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		http.Error(w, "Failed to open queue channel", http.StatusInternalServerError)
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"presentation_exports",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		http.Error(w, "Failed to declare queue", http.StatusInternalServerError)
		return
	}

	payload, _ := json.Marshal(map[string]string{"presentation_id": deck.ID})
	err = ch.Publish(
		"",
		q.Name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        payload,
		},
	)
	if err != nil {
		log.Println("Failed to publish export job:", err)
	} else if err := c.PresentationRepo.UpdateStatus(deck.ID, "exporting", ""); err != nil {
		log.Println("Failed to mark presentation exporting:", err)
	}

	respondJSON(w, http.StatusCreated, deck)
}

func (c *PresentationController) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "presentationID")

	deck, err := c.PresentationService.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, deck)
}

func (c *PresentationController) ListByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	decks, err := c.PresentationRepo.ListByCampaign(campaignID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": decks})
}
