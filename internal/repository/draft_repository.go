package repository

import (
	"database/sql"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/model"
)

type CloneDraftRepositoryInterface interface {
	Create(d *model.CloneDraft) error
	GetByID(id int) (*model.CloneDraft, error)
	Update(d *model.CloneDraft) error
}

type CloneDraftRepository struct {
	DB *sql.DB
}

func (r *CloneDraftRepository) Create(d *model.CloneDraft) error {
	if d.Status == "" {
		d.Status = "in_progress"
	}
	query := `
        INSERT INTO clone_drafts
            (source_campaign_id, step, name, start_date, end_date, budget_total, keep_content, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
        RETURNING id, created_at
    `
	return r.DB.QueryRow(query,
		d.SourceCampaignID, d.Step, d.Name, d.StartDate, d.EndDate,
		d.BudgetTotal, d.KeepContent, d.Status,
	).Scan(&d.ID, &d.CreatedAt)
}

func (r *CloneDraftRepository) GetByID(id int) (*model.CloneDraft, error) {
	query := `
        SELECT id, source_campaign_id, step, name, start_date, end_date, budget_total,
               keep_content, status, result_campaign_id, created_at, updated_at
        FROM clone_drafts WHERE id=$1
    `
	var d model.CloneDraft
	err := r.DB.QueryRow(query, id).Scan(
		&d.ID, &d.SourceCampaignID, &d.Step, &d.Name, &d.StartDate, &d.EndDate,
		&d.BudgetTotal, &d.KeepContent, &d.Status, &d.ResultCampaignID,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewDraftNotFound(id)
		}
		return nil, err
	}
	return &d, nil
}

func (r *CloneDraftRepository) Update(d *model.CloneDraft) error {
	query := `
        UPDATE clone_drafts
        SET step=$1, name=$2, start_date=$3, end_date=$4, budget_total=$5,
            keep_content=$6, status=$7, result_campaign_id=$8, updated_at=NOW()
        WHERE id=$9
    `
	_, err := r.DB.Exec(query,
		d.Step, d.Name, d.StartDate, d.EndDate, d.BudgetTotal,
		d.KeepContent, d.Status, d.ResultCampaignID, d.ID,
	)
	return err
}

var _ CloneDraftRepositoryInterface = (*CloneDraftRepository)(nil)

type ABTestDraftRepositoryInterface interface {
	Create(d *model.ABTestDraft) error
	GetByID(id int) (*model.ABTestDraft, error)
	Update(d *model.ABTestDraft) error
}

type ABTestDraftRepository struct {
	DB *sql.DB
}

func (r *ABTestDraftRepository) Create(d *model.ABTestDraft) error {
	if d.Status == "" {
		d.Status = "in_progress"
	}
	query := `
        INSERT INTO abtest_drafts
            (campaign_id, step, goal, metric_name, baseline_rate, min_detectable,
             confidence, variant_count, daily_traffic, sample_size, estimated_days, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
        RETURNING id, created_at
    `
	return r.DB.QueryRow(query,
		d.CampaignID, d.Step, d.Goal, d.MetricName, d.BaselineRate, d.MinDetectable,
		d.Confidence, d.VariantCount, d.DailyTraffic, d.SampleSize, d.EstimatedDays, d.Status,
	).Scan(&d.ID, &d.CreatedAt)
}

func (r *ABTestDraftRepository) GetByID(id int) (*model.ABTestDraft, error) {
	query := `
        SELECT id, campaign_id, step, goal, metric_name, baseline_rate, min_detectable,
               confidence, variant_count, daily_traffic, sample_size, estimated_days,
               status, created_at, updated_at
        FROM abtest_drafts WHERE id=$1
    `
	var d model.ABTestDraft
	err := r.DB.QueryRow(query, id).Scan(
		&d.ID, &d.CampaignID, &d.Step, &d.Goal, &d.MetricName, &d.BaselineRate, &d.MinDetectable,
		&d.Confidence, &d.VariantCount, &d.DailyTraffic, &d.SampleSize, &d.EstimatedDays,
		&d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewDraftNotFound(id)
		}
		return nil, err
	}
	return &d, nil
}

func (r *ABTestDraftRepository) Update(d *model.ABTestDraft) error {
	query := `
        UPDATE abtest_drafts
        SET step=$1, goal=$2, metric_name=$3, baseline_rate=$4, min_detectable=$5,
            confidence=$6, variant_count=$7, daily_traffic=$8, sample_size=$9,
            estimated_days=$10, status=$11, updated_at=NOW()
        WHERE id=$12
    `
	_, err := r.DB.Exec(query,
		d.Step, d.Goal, d.MetricName, d.BaselineRate, d.MinDetectable,
		d.Confidence, d.VariantCount, d.DailyTraffic, d.SampleSize,
		d.EstimatedDays, d.Status, d.ID,
	)
	return err
}

var _ ABTestDraftRepositoryInterface = (*ABTestDraftRepository)(nil)
