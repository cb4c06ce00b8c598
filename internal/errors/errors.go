// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id int) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

type ErrContentNotFound struct {
	ContentID int
}

func (e *ErrContentNotFound) Error() string {
	return fmt.Sprintf("content item with ID %d not found", e.ContentID)
}

func NewContentNotFound(id int) error {
	return &ErrContentNotFound{ContentID: id}
}

type ErrTaskNotFound struct {
	TaskID int
}

func (e *ErrTaskNotFound) Error() string {
	return fmt.Sprintf("task with ID %d not found", e.TaskID)
}

func NewTaskNotFound(id int) error {
	return &ErrTaskNotFound{TaskID: id}
}

type ErrApprovalNotFound struct {
	ApprovalID int
}

func (e *ErrApprovalNotFound) Error() string {
	return fmt.Sprintf("approval with ID %d not found", e.ApprovalID)
}

func NewApprovalNotFound(id int) error {
	return &ErrApprovalNotFound{ApprovalID: id}
}

type ErrDraftNotFound struct {
	DraftID int
}

func (e *ErrDraftNotFound) Error() string {
	return fmt.Sprintf("draft with ID %d not found", e.DraftID)
}

func NewDraftNotFound(id int) error {
	return &ErrDraftNotFound{DraftID: id}
}

// ErrInvalidTransition reports a status change the workflow does not allow.
type ErrInvalidTransition struct {
	Entity string
	From   string
	To     string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("%s cannot move from %q to %q", e.Entity, e.From, e.To)
}

func NewInvalidTransition(entity, from, to string) error {
	return &ErrInvalidTransition{Entity: entity, From: from, To: to}
}
