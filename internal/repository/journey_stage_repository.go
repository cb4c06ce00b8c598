package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/launchdeck/campaignhub-backend/internal/model"
)

type JourneyStageRepositoryInterface interface {
	ListByCampaign(campaignID int) ([]model.JourneyStage, error)
	Create(s *model.JourneyStage) error
	UpdateStatus(stageID int, status string) error
	RefreshContentCounts(campaignID int) error
}

type JourneyStageRepository struct {
	DB *sql.DB
}

func (r *JourneyStageRepository) ListByCampaign(campaignID int) ([]model.JourneyStage, error) {
	query := `
        SELECT id, campaign_id, name, position, status, channels, content_count, impressions, engagement
        FROM journey_stages
        WHERE campaign_id=$1
        ORDER BY position
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := []model.JourneyStage{}
	for rows.Next() {
		var s model.JourneyStage
		if err := rows.Scan(&s.ID, &s.CampaignID, &s.Name, &s.Position, &s.Status,
			&s.Channels, &s.ContentCount, &s.Impressions, &s.Engagement); err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, nil
}

func (r *JourneyStageRepository) Create(s *model.JourneyStage) error {
	if s.Status == "" {
		s.Status = "pending"
	}
	query := `
        INSERT INTO journey_stages (campaign_id, name, position, status, channels, content_count, impressions, engagement)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	return r.DB.QueryRow(query,
		s.CampaignID, s.Name, s.Position, s.Status, pq.Array(s.Channels),
		s.ContentCount, s.Impressions, s.Engagement,
	).Scan(&s.ID)
}

func (r *JourneyStageRepository) UpdateStatus(stageID int, status string) error {
	_, err := r.DB.Exec(`UPDATE journey_stages SET status=$1 WHERE id=$2`, status, stageID)
	return err
}

// RefreshContentCounts recomputes content_count from the content table after
// content items are created or moved between stages.
func (r *JourneyStageRepository) RefreshContentCounts(campaignID int) error {
	query := `
        UPDATE journey_stages s
        SET content_count = (
            SELECT COUNT(*) FROM content_items c
            WHERE c.journey_stage_id = s.id
        )
        WHERE s.campaign_id = $1
    `
	_, err := r.DB.Exec(query, campaignID)
	return err
}

var _ JourneyStageRepositoryInterface = (*JourneyStageRepository)(nil)
