package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	ListCampaigns(offset, limit int, status, channel string) ([]*model.Campaign, int, error)
	GetByID(id int) (*model.Campaign, error)
	Create(c *model.Campaign) error
	Update(c *model.Campaign) error
	UpdateStatus(campaignID int, status string) error
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, name, status, channels, objectives, start_date, end_date,
        budget_total, budget_spent, currency,
        impressions, engagement, clicks, conversions, revenue,
        created_at, updated_at`

func scanCampaign(row interface{ Scan(...any) error }) (*model.Campaign, error) {
	var c model.Campaign
	err := row.Scan(
		&c.ID, &c.Name, &c.Status, &c.Channels, &c.Objectives,
		&c.StartDate, &c.EndDate,
		&c.BudgetTotal, &c.BudgetSpent, &c.Currency,
		&c.Impressions, &c.Engagement, &c.Clicks, &c.Conversions, &c.Revenue,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	c.CreatedAt = time.Now()
	if c.Status == "" {
		c.Status = "draft"
	}
	if c.Currency == "" {
		c.Currency = "USD"
	}
	query := `
        INSERT INTO campaigns
            (name, status, channels, objectives, start_date, end_date,
             budget_total, budget_spent, currency,
             impressions, engagement, clicks, conversions, revenue, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id
    `
	return r.DB.QueryRow(query,
		c.Name, c.Status, pq.Array(c.Channels), pq.Array(c.Objectives),
		c.StartDate, c.EndDate,
		c.BudgetTotal, c.BudgetSpent, c.Currency,
		c.Impressions, c.Engagement, c.Clicks, c.Conversions, c.Revenue,
		c.CreatedAt,
	).Scan(&c.ID)
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	query := `
        UPDATE campaigns
        SET name=$1, channels=$2, objectives=$3, start_date=$4, end_date=$5,
            budget_total=$6, budget_spent=$7,
            impressions=$8, engagement=$9, clicks=$10, conversions=$11, revenue=$12,
            updated_at=NOW()
        WHERE id=$13
    `
	_, err := r.DB.Exec(query,
		c.Name, pq.Array(c.Channels), pq.Array(c.Objectives), c.StartDate, c.EndDate,
		c.BudgetTotal, c.BudgetSpent,
		c.Impressions, c.Engagement, c.Clicks, c.Conversions, c.Revenue,
		c.ID,
	)
	return err
}

func (r *CampaignRepository) UpdateStatus(campaignID int, status string) error {
	query := `UPDATE campaigns SET status=$1, updated_at=$2 WHERE id=$3`
	_, err := r.DB.Exec(query, status, time.Now(), campaignID)
	return err
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
	c, err := scanCampaign(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepository) ListCampaigns(offset, limit int, status, channel string) ([]*model.Campaign, int, error) {
	campaigns := []*model.Campaign{}
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if status != "" {
		query += fmt.Sprintf(" AND status=$%d", argPos)
		args = append(args, status)
		argPos++
	}
	if channel != "" {
		query += fmt.Sprintf(" AND $%d = ANY(channels)", argPos)
		args = append(args, channel)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, c)
	}

	// Count total
	countQuery := `SELECT COUNT(*) FROM campaigns WHERE 1=1`
	argsCount := []interface{}{}
	argPosCount := 1
	if status != "" {
		countQuery += fmt.Sprintf(" AND status=$%d", argPosCount)
		argsCount = append(argsCount, status)
		argPosCount++
	}
	if channel != "" {
		countQuery += fmt.Sprintf(" AND $%d = ANY(channels)", argPosCount)
		argsCount = append(argsCount, channel)
	}

	var total int
	if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return campaigns, total, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
