// internal/model/campaign.go
package model

import (
	"time"

	"github.com/lib/pq"
)

type Campaign struct {
	ID          int            `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Status      string         `db:"status" json:"status"` // draft, scheduled, active, paused, completed, archived
	Channels    pq.StringArray `db:"channels" json:"channels"`
	Objectives  pq.StringArray `db:"objectives" json:"objectives"`
	StartDate   time.Time      `db:"start_date" json:"start_date"`
	EndDate     time.Time      `db:"end_date" json:"end_date"`
	BudgetTotal float64        `db:"budget_total" json:"budget_total"`
	BudgetSpent float64        `db:"budget_spent" json:"budget_spent"`
	Currency    string         `db:"currency" json:"currency"`
	Impressions int64          `db:"impressions" json:"impressions"`
	Engagement  int64          `db:"engagement" json:"engagement"`
	Clicks      int64          `db:"clicks" json:"clicks"`
	Conversions int64          `db:"conversions" json:"conversions"`
	Revenue     float64        `db:"revenue" json:"revenue"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time     `db:"updated_at" json:"updated_at,omitempty"`
}

// CampaignTransitions lists the statuses a campaign may move to from its current one.
var CampaignTransitions = map[string][]string{
	"draft":     {"scheduled", "active", "archived"},
	"scheduled": {"draft", "active", "archived"},
	"active":    {"paused", "completed"},
	"paused":    {"active", "completed"},
	"completed": {"archived"},
	"archived":  {},
}

func CanTransition(from, to string) bool {
	for _, allowed := range CampaignTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
