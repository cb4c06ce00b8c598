// internal/model/presentation.go
package model

import "time"

// Slide is one rendered slide of a stakeholder deck. Slides are stored as a
// JSON column and exported to YAML by the worker.
type Slide struct {
	Kind    string   `json:"kind" yaml:"kind"` // overview, metrics, journey, budget, next_steps
	Title   string   `json:"title" yaml:"title"`
	Bullets []string `json:"bullets" yaml:"bullets"`
}

type Presentation struct {
	ID          string     `db:"id" json:"id"` // uuid
	CampaignID  int        `db:"campaign_id" json:"campaign_id"`
	Title       string     `db:"title" json:"title"`
	Status      string     `db:"status" json:"status"` // generated, exporting, exported, failed
	Slides      []Slide    `db:"-" json:"slides"`
	GeneratedAt time.Time  `db:"generated_at" json:"generated_at"`
	ExportedAt  *time.Time `db:"exported_at" json:"exported_at,omitempty"`
	LastError   string     `db:"last_error" json:"last_error,omitempty"`
}
