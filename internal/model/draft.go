// internal/model/draft.go
package model

import "time"

// CloneDraft is the server-side state of the 3-step campaign cloning flow:
// basics (0), adjustments (1), confirm (2).
type CloneDraft struct {
	ID               int        `db:"id" json:"id"`
	SourceCampaignID int        `db:"source_campaign_id" json:"source_campaign_id"`
	Step             int        `db:"step" json:"step"`
	Name             string     `db:"name" json:"name"`
	StartDate        *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate          *time.Time `db:"end_date" json:"end_date,omitempty"`
	BudgetTotal      float64    `db:"budget_total" json:"budget_total"`
	KeepContent      bool       `db:"keep_content" json:"keep_content"`
	Status           string     `db:"status" json:"status"` // in_progress, completed, abandoned
	ResultCampaignID *int       `db:"result_campaign_id" json:"result_campaign_id,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ABTestDraft is the server-side state of the 4-step A/B test setup flow:
// goal (0), variants (1), audience (2), review (3).
type ABTestDraft struct {
	ID            int        `db:"id" json:"id"`
	CampaignID    int        `db:"campaign_id" json:"campaign_id"`
	Step          int        `db:"step" json:"step"`
	Goal          string     `db:"goal" json:"goal"`
	MetricName    string     `db:"metric_name" json:"metric_name"`
	BaselineRate  float64    `db:"baseline_rate" json:"baseline_rate"`
	MinDetectable float64    `db:"min_detectable" json:"min_detectable"`
	Confidence    int        `db:"confidence" json:"confidence"` // 90, 95 or 99
	VariantCount  int        `db:"variant_count" json:"variant_count"`
	DailyTraffic  int        `db:"daily_traffic" json:"daily_traffic"`
	SampleSize    int        `db:"sample_size" json:"sample_size"` // per variant, computed at review
	EstimatedDays int        `db:"estimated_days" json:"estimated_days"`
	Status        string     `db:"status" json:"status"` // in_progress, completed, abandoned
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
