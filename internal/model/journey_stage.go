// internal/model/journey_stage.go
package model

import "github.com/lib/pq"

type JourneyStage struct {
	ID           int            `db:"id" json:"id"`
	CampaignID   int            `db:"campaign_id" json:"campaign_id"`
	Name         string         `db:"name" json:"name"` // awareness, consideration, conversion, retention
	Position     int            `db:"position" json:"position"`
	Status       string         `db:"status" json:"status"` // completed, active, pending
	Channels     pq.StringArray `db:"channels" json:"channels"`
	ContentCount int            `db:"content_count" json:"content_count"`
	Impressions  int64          `db:"impressions" json:"impressions"`
	Engagement   int64          `db:"engagement" json:"engagement"`
}
