package repository

import (
	"database/sql"
	"fmt"
	"time"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/model"
)

type TaskRepositoryInterface interface {
	List(campaignID int, status string) ([]*model.Task, error)
	GetByID(id int) (*model.Task, error)
	Create(t *model.Task) error
	Assign(taskID, memberID int) error
	UpdateStatus(taskID int, status string, completedAt *time.Time) error
	ListByAssignee(memberID int) ([]*model.Task, error)
}

type TaskRepository struct {
	DB *sql.DB
}

const taskColumns = `id, campaign_id, assignee_id, title, status, priority, due_date, completed_at, created_at, updated_at`

func (r *TaskRepository) Create(t *model.Task) error {
	t.CreatedAt = time.Now()
	if t.Status == "" {
		t.Status = "todo"
	}
	if t.Priority == "" {
		t.Priority = "medium"
	}
	query := `
        INSERT INTO tasks (campaign_id, assignee_id, title, status, priority, due_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	return r.DB.QueryRow(query,
		t.CampaignID, t.AssigneeID, t.Title, t.Status, t.Priority, t.DueDate, t.CreatedAt,
	).Scan(&t.ID)
}

func (r *TaskRepository) GetByID(id int) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id=$1`
	var t model.Task
	err := r.DB.QueryRow(query, id).Scan(
		&t.ID, &t.CampaignID, &t.AssigneeID, &t.Title, &t.Status, &t.Priority,
		&t.DueDate, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewTaskNotFound(id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Assign(taskID, memberID int) error {
	query := `UPDATE tasks SET assignee_id=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.DB.Exec(query, memberID, taskID)
	return err
}

func (r *TaskRepository) UpdateStatus(taskID int, status string, completedAt *time.Time) error {
	query := `UPDATE tasks SET status=$1, completed_at=$2, updated_at=NOW() WHERE id=$3`
	_, err := r.DB.Exec(query, status, completedAt, taskID)
	return err
}

func (r *TaskRepository) List(campaignID int, status string) ([]*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if campaignID != 0 {
		query += fmt.Sprintf(" AND campaign_id=$%d", argPos)
		args = append(args, campaignID)
		argPos++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status=$%d", argPos)
		args = append(args, status)
	}
	query += " ORDER BY id DESC"

	return r.queryTasks(query, args...)
}

func (r *TaskRepository) ListByAssignee(memberID int) ([]*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE assignee_id=$1 ORDER BY id DESC`
	return r.queryTasks(query, memberID)
}

func (r *TaskRepository) queryTasks(query string, args ...interface{}) ([]*model.Task, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*model.Task{}
	for rows.Next() {
		t := &model.Task{}
		if err := rows.Scan(
			&t.ID, &t.CampaignID, &t.AssigneeID, &t.Title, &t.Status, &t.Priority,
			&t.DueDate, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)
