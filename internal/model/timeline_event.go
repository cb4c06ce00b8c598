// internal/model/timeline_event.go
package model

import "time"

type TimelineEvent struct {
	ID         int       `db:"id" json:"id"`
	CampaignID int       `db:"campaign_id" json:"campaign_id"`
	Actor      string    `db:"actor" json:"actor"`
	EventType  string    `db:"event_type" json:"event_type"` // content_created, status_changed, approval_decided, ...
	Detail     string    `db:"detail" json:"detail"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
