// internal/model/content_item.go
package model

import "time"

type ContentItem struct {
	ID             int        `db:"id" json:"id"`
	CampaignID     int        `db:"campaign_id" json:"campaign_id"`
	JourneyStageID *int       `db:"journey_stage_id" json:"journey_stage_id,omitempty"`
	Title          string     `db:"title" json:"title"`
	ContentType    string     `db:"content_type" json:"content_type"` // blog_post, social_post, email, video, landing_page
	Status         string     `db:"status" json:"status"`             // draft, in_review, approved, published
	Channel        string     `db:"channel" json:"channel"`
	Impressions    int64      `db:"impressions" json:"impressions"`
	Engagement     int64      `db:"engagement" json:"engagement"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ContentTransitions mirrors the review workflow: drafts go out for review,
// rejected or changes-requested items fall back to draft.
var ContentTransitions = map[string][]string{
	"draft":     {"in_review"},
	"in_review": {"approved", "draft"},
	"approved":  {"published", "draft"},
	"published": {},
}

func ContentCanTransition(from, to string) bool {
	for _, allowed := range ContentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
