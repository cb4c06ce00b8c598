// internal/service/clone_service.go
package service

import (
	"fmt"

	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
	"github.com/launchdeck/campaignhub-backend/internal/wizard"
)

// Campaign cloning is a 3-step flow: basics, adjustments, confirm.
const cloneLastStep = 2

type CloneService struct {
	DraftRepo    repository.CloneDraftRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	ContentRepo  repository.ContentRepositoryInterface
	StageRepo    repository.JourneyStageRepositoryInterface
}

// StartDraft opens a clone flow seeded from the source campaign.
func (s *CloneService) StartDraft(sourceCampaignID int) (*model.CloneDraft, error) {
	source, err := s.CampaignRepo.GetByID(sourceCampaignID)
	if err != nil {
		return nil, err
	}

	draft := &model.CloneDraft{
		SourceCampaignID: source.ID,
		Step:             0,
		Name:             source.Name + " (Copy)",
		BudgetTotal:      source.BudgetTotal,
		KeepContent:      true,
	}
	if err := s.DraftRepo.Create(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// CloneDraftInput carries the editable fields of the current step.
type CloneDraftInput struct {
	Name        *string `json:"name"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	BudgetTotal *float64 `json:"budget_total"`
	KeepContent *bool   `json:"keep_content"`
}

// UpdateDraft applies the step's fields without moving the step.
func (s *CloneService) UpdateDraft(draftID int, input CloneDraftInput) (*model.CloneDraft, error) {
	draft, err := s.activeDraft(draftID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		draft.Name = *input.Name
	}
	if input.BudgetTotal != nil {
		draft.BudgetTotal = *input.BudgetTotal
	}
	if input.KeepContent != nil {
		draft.KeepContent = *input.KeepContent
	}
	if input.StartDate != nil {
		t, err := parseDate(*input.StartDate)
		if err != nil {
			return nil, err
		}
		draft.StartDate = t
	}
	if input.EndDate != nil {
		t, err := parseDate(*input.EndDate)
		if err != nil {
			return nil, err
		}
		draft.EndDate = t
	}

	if err := s.DraftRepo.Update(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Next advances the draft one step; the current step must validate first.
func (s *CloneService) Next(draftID int) (*model.CloneDraft, error) {
	draft, err := s.activeDraft(draftID)
	if err != nil {
		return nil, err
	}

	if err := s.validateStep(draft, draft.Step); err != nil {
		return nil, err
	}

	draft.Step = wizard.Advance(draft.Step, cloneLastStep)
	if err := s.DraftRepo.Update(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *CloneService) Previous(draftID int) (*model.CloneDraft, error) {
	draft, err := s.activeDraft(draftID)
	if err != nil {
		return nil, err
	}

	draft.Step = wizard.Retreat(draft.Step)
	if err := s.DraftRepo.Update(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *CloneService) Jump(draftID, target int) (*model.CloneDraft, error) {
	draft, err := s.activeDraft(draftID)
	if err != nil {
		return nil, err
	}

	draft.Step = wizard.Jump(target, cloneLastStep)
	if err := s.DraftRepo.Update(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Complete finishes the flow on the confirm step: the source campaign is
// copied with metrics zeroed and spend reset, optionally with its content.
func (s *CloneService) Complete(draftID int) (*model.Campaign, error) {
	draft, err := s.activeDraft(draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != cloneLastStep {
		return nil, fmt.Errorf("clone draft %d is on step %d, confirm step required", draft.ID, draft.Step)
	}
	// Jump can land on confirm with earlier steps edited since they were
	// validated, so every step is re-checked here.
	for step := 0; step <= cloneLastStep; step++ {
		if err := s.validateStep(draft, step); err != nil {
			return nil, err
		}
	}

	source, err := s.CampaignRepo.GetByID(draft.SourceCampaignID)
	if err != nil {
		return nil, err
	}

	clone := &model.Campaign{
		Name:        draft.Name,
		Status:      "draft",
		Channels:    source.Channels,
		Objectives:  source.Objectives,
		StartDate:   source.StartDate,
		EndDate:     source.EndDate,
		BudgetTotal: draft.BudgetTotal,
		Currency:    source.Currency,
		// metrics deliberately zeroed: a clone starts fresh
	}
	if draft.StartDate != nil {
		clone.StartDate = *draft.StartDate
	}
	if draft.EndDate != nil {
		clone.EndDate = *draft.EndDate
	}

	if err := s.CampaignRepo.Create(clone); err != nil {
		return nil, err
	}

	if err := s.cloneStagesAndContent(source.ID, clone.ID, draft.KeepContent); err != nil {
		return nil, err
	}

	draft.Status = "completed"
	draft.ResultCampaignID = &clone.ID
	if err := s.DraftRepo.Update(draft); err != nil {
		return nil, err
	}

	return clone, nil
}

func (s *CloneService) cloneStagesAndContent(sourceID, cloneID int, keepContent bool) error {
	stages, err := s.StageRepo.ListByCampaign(sourceID)
	if err != nil {
		return err
	}

	stageMap := map[int]int{} // source stage ID -> clone stage ID
	for _, st := range stages {
		ns := &model.JourneyStage{
			CampaignID: cloneID,
			Name:       st.Name,
			Position:   st.Position,
			Status:     "pending",
			Channels:   st.Channels,
		}
		if err := s.StageRepo.Create(ns); err != nil {
			return err
		}
		stageMap[st.ID] = ns.ID
	}

	if !keepContent {
		return nil
	}

	items, _, err := s.ContentRepo.List(repository.ContentFilter{CampaignID: sourceID}, 0, 100)
	if err != nil {
		return err
	}
	for _, item := range items {
		ni := &model.ContentItem{
			CampaignID:  cloneID,
			Title:       item.Title,
			ContentType: item.ContentType,
			Status:      "draft",
			Channel:     item.Channel,
		}
		if item.JourneyStageID != nil {
			if mapped, ok := stageMap[*item.JourneyStageID]; ok {
				ni.JourneyStageID = &mapped
			}
		}
		if err := s.ContentRepo.Create(ni); err != nil {
			return err
		}
	}

	return s.StageRepo.RefreshContentCounts(cloneID)
}

func (s *CloneService) validateStep(d *model.CloneDraft, step int) error {
	switch step {
	case 0: // basics
		if d.Name == "" {
			return fmt.Errorf("clone name is required")
		}
	case 1: // adjustments
		if d.BudgetTotal < 0 {
			return fmt.Errorf("budget cannot be negative")
		}
		if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
			return fmt.Errorf("end date cannot be before start date")
		}
	}
	return nil
}

func (s *CloneService) activeDraft(draftID int) (*model.CloneDraft, error) {
	draft, err := s.DraftRepo.GetByID(draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status != "in_progress" {
		return nil, fmt.Errorf("clone draft %d is %s", draft.ID, draft.Status)
	}
	return draft, nil
}
