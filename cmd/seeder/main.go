// cmd/seeder/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"

	"github.com/launchdeck/campaignhub-backend/internal/config"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
)

// Fixtures mirrors seed/fixtures.yaml.
type Fixtures struct {
	TeamMembers []struct {
		Name        string `yaml:"name"`
		Role        string `yaml:"role"`
		CapacityPct int    `yaml:"capacity_pct"`
	} `yaml:"team_members"`

	Campaigns []struct {
		Name        string   `yaml:"name"`
		Status      string   `yaml:"status"`
		Channels    []string `yaml:"channels"`
		Objectives  []string `yaml:"objectives"`
		StartDate   string   `yaml:"start_date"`
		EndDate     string   `yaml:"end_date"`
		BudgetTotal float64  `yaml:"budget_total"`
		BudgetSpent float64  `yaml:"budget_spent"`
		Currency    string   `yaml:"currency"`
		Impressions int64    `yaml:"impressions"`
		Engagement  int64    `yaml:"engagement"`
		Clicks      int64    `yaml:"clicks"`
		Conversions int64    `yaml:"conversions"`
		Revenue     float64  `yaml:"revenue"`

		Stages []struct {
			Name        string   `yaml:"name"`
			Status      string   `yaml:"status"`
			Channels    []string `yaml:"channels"`
			Impressions int64    `yaml:"impressions"`
			Engagement  int64    `yaml:"engagement"`
		} `yaml:"stages"`

		Content []struct {
			Title       string `yaml:"title"`
			ContentType string `yaml:"content_type"`
			Status      string `yaml:"status"`
			Channel     string `yaml:"channel"`
			Stage       string `yaml:"stage"` // stage name within the campaign
			Impressions int64  `yaml:"impressions"`
			Engagement  int64  `yaml:"engagement"`
		} `yaml:"content"`

		Tasks []struct {
			Title    string `yaml:"title"`
			Status   string `yaml:"status"`
			Priority string `yaml:"priority"`
			Assignee string `yaml:"assignee"` // team member name
			DueDate  string `yaml:"due_date"`
		} `yaml:"tasks"`
	} `yaml:"campaigns"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	schema, err := os.ReadFile("seed/schema.sql")
	if err != nil {
		log.Fatalf("failed to read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}
	fmt.Println("Applied: seed/schema.sql")

	raw, err := os.ReadFile("seed/fixtures.yaml")
	if err != nil {
		log.Fatalf("failed to read fixtures: %v", err)
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		log.Fatalf("failed to parse fixtures: %v", err)
	}

	if err := seed(db, &fixtures); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	fmt.Println("Database seeding completed successfully!")
}

func seed(db *sql.DB, fixtures *Fixtures) error {
	memberIDs := map[string]int{}
	for _, tm := range fixtures.TeamMembers {
		var id int
		err := db.QueryRow(
			`INSERT INTO team_members (name, role, capacity_pct) VALUES ($1, $2, $3) RETURNING id`,
			tm.Name, tm.Role, tm.CapacityPct,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed team member %s: %w", tm.Name, err)
		}
		memberIDs[tm.Name] = id
	}
	fmt.Printf("Seeded: %d team members\n", len(memberIDs))

	campaignRepo := &repository.CampaignRepository{DB: db}
	stageRepo := &repository.JourneyStageRepository{DB: db}
	contentRepo := &repository.ContentRepository{DB: db}
	taskRepo := &repository.TaskRepository{DB: db}
	approvalRepo := &repository.ApprovalRepository{DB: db}

	for _, fc := range fixtures.Campaigns {
		campaign := &model.Campaign{
			Name:        fc.Name,
			Status:      fc.Status,
			Channels:    fc.Channels,
			Objectives:  fc.Objectives,
			BudgetTotal: fc.BudgetTotal,
			BudgetSpent: fc.BudgetSpent,
			Currency:    fc.Currency,
			Impressions: fc.Impressions,
			Engagement:  fc.Engagement,
			Clicks:      fc.Clicks,
			Conversions: fc.Conversions,
			Revenue:     fc.Revenue,
		}
		campaign.StartDate = mustDate(fc.StartDate)
		campaign.EndDate = mustDate(fc.EndDate)

		if err := campaignRepo.Create(campaign); err != nil {
			return fmt.Errorf("seed campaign %s: %w", fc.Name, err)
		}

		stageIDs := map[string]int{}
		for i, fs := range fc.Stages {
			stage := &model.JourneyStage{
				CampaignID:  campaign.ID,
				Name:        fs.Name,
				Position:    i,
				Status:      fs.Status,
				Channels:    fs.Channels,
				Impressions: fs.Impressions,
				Engagement:  fs.Engagement,
			}
			if err := stageRepo.Create(stage); err != nil {
				return fmt.Errorf("seed stage %s: %w", fs.Name, err)
			}
			stageIDs[fs.Name] = stage.ID
		}

		for _, fi := range fc.Content {
			item := &model.ContentItem{
				CampaignID:  campaign.ID,
				Title:       fi.Title,
				ContentType: fi.ContentType,
				Status:      fi.Status,
				Channel:     fi.Channel,
				Impressions: fi.Impressions,
				Engagement:  fi.Engagement,
			}
			if stageID, ok := stageIDs[fi.Stage]; ok {
				item.JourneyStageID = &stageID
			}
			if err := contentRepo.Create(item); err != nil {
				return fmt.Errorf("seed content %s: %w", fi.Title, err)
			}
			if item.Status == "in_review" {
				if _, err := approvalRepo.Create(item.ID); err != nil {
					return fmt.Errorf("seed approval for %s: %w", fi.Title, err)
				}
			}
		}

		for _, ft := range fc.Tasks {
			task := &model.Task{
				CampaignID: campaign.ID,
				Title:      ft.Title,
				Status:     ft.Status,
				Priority:   ft.Priority,
			}
			if id, ok := memberIDs[ft.Assignee]; ok {
				task.AssigneeID = &id
			}
			if ft.DueDate != "" {
				due := mustDate(ft.DueDate)
				task.DueDate = &due
			}
			if err := taskRepo.Create(task); err != nil {
				return fmt.Errorf("seed task %s: %w", ft.Title, err)
			}
		}

		if err := stageRepo.RefreshContentCounts(campaign.ID); err != nil {
			return err
		}

		fmt.Printf("Seeded: campaign %q with %d stages, %d content items, %d tasks\n",
			fc.Name, len(fc.Stages), len(fc.Content), len(fc.Tasks))
	}

	return nil
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("invalid date in fixtures: %q", s)
	}
	return t
}
