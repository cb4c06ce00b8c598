// internal/service/content_service.go
package service

import (
	"fmt"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
)

type ContentService struct {
	ContentRepo  repository.ContentRepositoryInterface
	StageRepo    repository.JourneyStageRepositoryInterface
	ApprovalRepo repository.ApprovalRepositoryInterface
	TimelineRepo repository.TimelineRepositoryInterface
}

// ListContent fetches content items with filters and pagination
func (s *ContentService) ListContent(filter repository.ContentFilter, page, pageSize int) ([]model.ContentItem, map[string]int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	ptrs, total, err := s.ContentRepo.List(filter, offset, pageSize)
	if err != nil {
		return nil, nil, err
	}

	items := make([]model.ContentItem, len(ptrs))
	for i, item := range ptrs {
		items[i] = *item
	}

	totalPages := (total + pageSize - 1) / pageSize
	pagination := map[string]int{
		"page":        page,
		"page_size":   pageSize,
		"total_count": total,
		"total_pages": totalPages,
	}

	return items, pagination, nil
}

func (s *ContentService) CreateContent(item *model.ContentItem) (*model.ContentItem, error) {
	if item.Title == "" {
		return nil, fmt.Errorf("content title is required")
	}
	if err := s.ContentRepo.Create(item); err != nil {
		return nil, err
	}

	if err := s.StageRepo.RefreshContentCounts(item.CampaignID); err != nil {
		return nil, err
	}

	_ = s.TimelineRepo.Append(&model.TimelineEvent{
		CampaignID: item.CampaignID,
		Actor:      "system",
		EventType:  "content_created",
		Detail:     fmt.Sprintf("content %q added", item.Title),
	})

	return item, nil
}

// ChangeStatus moves a content item through the review workflow. Moving to
// in_review opens a pending approval for it.
func (s *ContentService) ChangeStatus(id int, to, actor string) (*model.ContentItem, error) {
	item, err := s.ContentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !model.ContentCanTransition(item.Status, to) {
		return nil, appErrors.NewInvalidTransition("content item", item.Status, to)
	}

	if err := s.ContentRepo.UpdateStatus(id, to); err != nil {
		return nil, err
	}

	if to == "in_review" {
		if _, err := s.ApprovalRepo.Create(id); err != nil {
			return nil, err
		}
	}

	_ = s.TimelineRepo.Append(&model.TimelineEvent{
		CampaignID: item.CampaignID,
		Actor:      actor,
		EventType:  "content_status_changed",
		Detail:     fmt.Sprintf("content %q moved from %s to %s", item.Title, item.Status, to),
	})

	item.Status = to
	return item, nil
}
