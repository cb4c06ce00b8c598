// internal/service/approval_service.go
package service

import (
	"fmt"
	"log"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/queue"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
)

type ApprovalService struct {
	ApprovalRepo repository.ApprovalRepositoryInterface
	ContentRepo  repository.ContentRepositoryInterface
	MemberRepo   repository.TeamMemberRepositoryInterface
	TimelineRepo repository.TimelineRepositoryInterface
	Queue        queue.Queue
}

// Content status applied by each decision.
var decisionOutcome = map[string]string{
	"approved":          "approved",
	"rejected":          "draft",
	"changes_requested": "draft",
}

func (s *ApprovalService) ListPending() ([]model.Approval, error) {
	ptrs, err := s.ApprovalRepo.ListByStatus("pending")
	if err != nil {
		return nil, err
	}
	approvals := make([]model.Approval, len(ptrs))
	for i, a := range ptrs {
		approvals[i] = *a
	}
	return approvals, nil
}

// Decide resolves a pending approval: the approval is stamped, the content
// item follows the decision, a timeline event is appended and a notification
// job goes out on the queue.
func (s *ApprovalService) Decide(approvalID int, decision string, reviewerID int, comment string) (*model.Approval, error) {
	outcome, ok := decisionOutcome[decision]
	if !ok {
		return nil, fmt.Errorf("unknown decision: %s", decision)
	}

	approval, err := s.ApprovalRepo.GetByID(approvalID)
	if err != nil {
		return nil, err
	}
	if approval.Status != "pending" {
		return nil, appErrors.NewInvalidTransition("approval", approval.Status, decision)
	}

	reviewer, err := s.MemberRepo.GetByID(reviewerID)
	if err != nil {
		return nil, err
	}
	if reviewer == nil {
		return nil, fmt.Errorf("reviewer %d not found", reviewerID)
	}

	item, err := s.ContentRepo.GetByID(approval.ContentItemID)
	if err != nil {
		return nil, err
	}

	if err := s.ApprovalRepo.Decide(approvalID, decision, reviewerID, comment); err != nil {
		return nil, err
	}
	if err := s.ContentRepo.UpdateStatus(item.ID, outcome); err != nil {
		return nil, err
	}

	_ = s.TimelineRepo.Append(&model.TimelineEvent{
		CampaignID: item.CampaignID,
		Actor:      reviewer.Name,
		EventType:  "approval_decided",
		Detail:     fmt.Sprintf("content %q %s", item.Title, decision),
	})

	if s.Queue != nil {
		err := s.Queue.Publish("approval_decisions", queue.ApprovalNotification{
			ApprovalID:    approvalID,
			ContentItemID: item.ID,
			Decision:      decision,
			Reviewer:      reviewer.Name,
		})
		if err != nil {
			log.Println("⚠️ failed to enqueue approval notification:", err)
		}
	}

	approval.Status = decision
	approval.ReviewerID = &reviewerID
	approval.Comment = comment
	return approval, nil
}
