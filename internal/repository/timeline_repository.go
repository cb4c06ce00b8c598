package repository

import (
	"database/sql"
	"time"

	"github.com/launchdeck/campaignhub-backend/internal/model"
)

type TimelineRepositoryInterface interface {
	Append(e *model.TimelineEvent) error
	ListByCampaign(campaignID, limit int) ([]model.TimelineEvent, error)
}

type TimelineRepository struct {
	DB *sql.DB
}

func (r *TimelineRepository) Append(e *model.TimelineEvent) error {
	e.CreatedAt = time.Now()
	query := `
        INSERT INTO timeline_events (campaign_id, actor, event_type, detail, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	return r.DB.QueryRow(query, e.CampaignID, e.Actor, e.EventType, e.Detail, e.CreatedAt).Scan(&e.ID)
}

// ListByCampaign returns the newest events first.
func (r *TimelineRepository) ListByCampaign(campaignID, limit int) ([]model.TimelineEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
        SELECT id, campaign_id, actor, event_type, detail, created_at
        FROM timeline_events
        WHERE campaign_id=$1
        ORDER BY id DESC
        LIMIT $2
    `
	rows, err := r.DB.Query(query, campaignID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.TimelineEvent{}
	for rows.Next() {
		var e model.TimelineEvent
		if err := rows.Scan(&e.ID, &e.CampaignID, &e.Actor, &e.EventType, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

var _ TimelineRepositoryInterface = (*TimelineRepository)(nil)
