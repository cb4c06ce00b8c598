package repository

import (
	"database/sql"
	"fmt"
	"time"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/model"
)

// ContentFilter narrows content listings; zero values mean "no filter".
type ContentFilter struct {
	CampaignID  int
	Status      string
	Channel     string
	ContentType string
	StageID     int
}

type ContentRepositoryInterface interface {
	List(filter ContentFilter, offset, limit int) ([]*model.ContentItem, int, error)
	GetByID(id int) (*model.ContentItem, error)
	Create(item *model.ContentItem) error
	UpdateStatus(id int, status string) error
}

type ContentRepository struct {
	DB *sql.DB
}

const contentColumns = `id, campaign_id, journey_stage_id, title, content_type, status, channel,
        impressions, engagement, created_at, updated_at`

func (r *ContentRepository) Create(item *model.ContentItem) error {
	item.CreatedAt = time.Now()
	if item.Status == "" {
		item.Status = "draft"
	}
	query := `
        INSERT INTO content_items
            (campaign_id, journey_stage_id, title, content_type, status, channel, impressions, engagement, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	return r.DB.QueryRow(query,
		item.CampaignID, item.JourneyStageID, item.Title, item.ContentType,
		item.Status, item.Channel, item.Impressions, item.Engagement, item.CreatedAt,
	).Scan(&item.ID)
}

func (r *ContentRepository) GetByID(id int) (*model.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE id=$1`
	var item model.ContentItem
	err := r.DB.QueryRow(query, id).Scan(
		&item.ID, &item.CampaignID, &item.JourneyStageID, &item.Title, &item.ContentType,
		&item.Status, &item.Channel, &item.Impressions, &item.Engagement,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewContentNotFound(id)
		}
		return nil, err
	}
	return &item, nil
}

func (r *ContentRepository) UpdateStatus(id int, status string) error {
	query := `UPDATE content_items SET status=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.DB.Exec(query, status, id)
	return err
}

func (r *ContentRepository) List(filter ContentFilter, offset, limit int) ([]*model.ContentItem, int, error) {
	items := []*model.ContentItem{}

	where, args := contentWhere(filter)
	argPos := len(args) + 1

	query := `SELECT ` + contentColumns + ` FROM content_items` + where +
		fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		item := &model.ContentItem{}
		if err := rows.Scan(
			&item.ID, &item.CampaignID, &item.JourneyStageID, &item.Title, &item.ContentType,
			&item.Status, &item.Channel, &item.Impressions, &item.Engagement,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	countWhere, countArgs := contentWhere(filter)
	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM content_items`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func contentWhere(filter ContentFilter) (string, []interface{}) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.CampaignID != 0 {
		where += fmt.Sprintf(" AND campaign_id=$%d", argPos)
		args = append(args, filter.CampaignID)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status=$%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Channel != "" {
		where += fmt.Sprintf(" AND channel=$%d", argPos)
		args = append(args, filter.Channel)
		argPos++
	}
	if filter.ContentType != "" {
		where += fmt.Sprintf(" AND content_type=$%d", argPos)
		args = append(args, filter.ContentType)
		argPos++
	}
	if filter.StageID != 0 {
		where += fmt.Sprintf(" AND journey_stage_id=$%d", argPos)
		args = append(args, filter.StageID)
	}

	return where, args
}

var _ ContentRepositoryInterface = (*ContentRepository)(nil)
