// internal/model/task.go
package model

import "time"

type Task struct {
	ID          int        `db:"id" json:"id"`
	CampaignID  int        `db:"campaign_id" json:"campaign_id"`
	AssigneeID  *int       `db:"assignee_id" json:"assignee_id,omitempty"`
	Title       string     `db:"title" json:"title"`
	Status      string     `db:"status" json:"status"`     // todo, in_progress, blocked, done
	Priority    string     `db:"priority" json:"priority"` // low, medium, high, urgent
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

func (t *Task) IsOpen() bool {
	return t.Status != "done"
}

// CompletedOnTime reports whether a done task beat its due date.
// Tasks without a due date count as on time.
func (t *Task) CompletedOnTime() bool {
	if t.Status != "done" || t.CompletedAt == nil {
		return false
	}
	if t.DueDate == nil {
		return true
	}
	return !t.CompletedAt.After(*t.DueDate)
}
