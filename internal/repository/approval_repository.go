package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/model"
)

type ApprovalRepositoryInterface interface {
	Create(contentItemID int) (*model.Approval, error)
	GetByID(id int) (*model.Approval, error)
	GetPendingByContent(contentItemID int) (*model.Approval, error)
	Decide(id int, status string, reviewerID int, comment string) error
	ListByStatus(status string) ([]*model.Approval, error)
}

type ApprovalRepository struct {
	DB *sql.DB
}

const approvalColumns = `id, content_item_id, status, reviewer_id, comment, decided_at, created_at`

// Create is idempotent per content item: an existing pending approval is
// returned instead of inserting a duplicate.
func (r *ApprovalRepository) Create(contentItemID int) (*model.Approval, error) {
	existing, err := r.GetPendingByContent(contentItemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	query := `
        INSERT INTO approvals (content_item_id, status, comment, created_at)
        VALUES ($1, 'pending', '', NOW())
        RETURNING id, created_at
    `
	a := &model.Approval{ContentItemID: contentItemID, Status: "pending"}
	if err := r.DB.QueryRow(query, contentItemID).Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ApprovalRepository) GetByID(id int) (*model.Approval, error) {
	query := `SELECT ` + approvalColumns + ` FROM approvals WHERE id=$1`
	a, err := r.scanOne(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewApprovalNotFound(id)
		}
		return nil, err
	}
	return a, nil
}

func (r *ApprovalRepository) GetPendingByContent(contentItemID int) (*model.Approval, error) {
	query := `SELECT ` + approvalColumns + ` FROM approvals WHERE content_item_id=$1 AND status='pending'`
	a, err := r.scanOne(r.DB.QueryRow(query, contentItemID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *ApprovalRepository) Decide(id int, status string, reviewerID int, comment string) error {
	query := `
        UPDATE approvals
        SET status=$1, reviewer_id=$2, comment=$3, decided_at=$4
        WHERE id=$5
    `
	_, err := r.DB.Exec(query, status, reviewerID, comment, time.Now(), id)
	return err
}

func (r *ApprovalRepository) ListByStatus(status string) ([]*model.Approval, error) {
	query := `SELECT ` + approvalColumns + ` FROM approvals WHERE status=$1 ORDER BY id DESC`
	rows, err := r.DB.Query(query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	approvals := []*model.Approval{}
	for rows.Next() {
		a, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		approvals = append(approvals, a)
	}
	return approvals, nil
}

func (r *ApprovalRepository) scanOne(row interface{ Scan(...any) error }) (*model.Approval, error) {
	var a model.Approval
	err := row.Scan(&a.ID, &a.ContentItemID, &a.Status, &a.ReviewerID, &a.Comment, &a.DecidedAt, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

var _ ApprovalRepositoryInterface = (*ApprovalRepository)(nil)
