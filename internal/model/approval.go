// internal/model/approval.go
package model

import "time"

type Approval struct {
	ID            int        `db:"id" json:"id"`
	ContentItemID int        `db:"content_item_id" json:"content_item_id"`
	Status        string     `db:"status" json:"status"` // pending, approved, rejected, changes_requested
	ReviewerID    *int       `db:"reviewer_id" json:"reviewer_id,omitempty"`
	Comment       string     `db:"comment" json:"comment"`
	DecidedAt     *time.Time `db:"decided_at" json:"decided_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}
