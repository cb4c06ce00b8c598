// internal/service/abtest_service.go
package service

import (
	"fmt"

	"github.com/launchdeck/campaignhub-backend/internal/insights"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
	"github.com/launchdeck/campaignhub-backend/internal/wizard"
)

// A/B test setup is a 4-step flow: goal, variants, audience, review.
const abtestLastStep = 3

type ABTestService struct {
	DraftRepo    repository.ABTestDraftRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
}

func (s *ABTestService) StartDraft(campaignID int) (*model.ABTestDraft, error) {
	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		return nil, err
	}

	draft := &model.ABTestDraft{
		CampaignID:   campaignID,
		Step:         0,
		Confidence:   95,
		VariantCount: 2,
	}
	if err := s.DraftRepo.Create(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ABTestDraftInput carries the editable fields of the current step.
type ABTestDraftInput struct {
	Goal          *string  `json:"goal"`
	MetricName    *string  `json:"metric_name"`
	BaselineRate  *float64 `json:"baseline_rate"`
	MinDetectable *float64 `json:"min_detectable"`
	Confidence    *int     `json:"confidence"`
	VariantCount  *int     `json:"variant_count"`
	DailyTraffic  *int     `json:"daily_traffic"`
}

func (s *ABTestService) UpdateDraft(draftID int, input ABTestDraftInput) (*model.ABTestDraft, error) {
	draft, err := s.activeDraft(draftID)
	if err != nil {
		return nil, err
	}

	if input.Goal != nil {
		draft.Goal = *input.Goal
	}
	if input.MetricName != nil {
		draft.MetricName = *input.MetricName
	}
	if input.BaselineRate != nil {
		draft.BaselineRate = *input.BaselineRate
	}
	if input.MinDetectable != nil {
		draft.MinDetectable = *input.MinDetectable
	}
	if input.Confidence != nil {
		draft.Confidence = *input.Confidence
	}
	if input.VariantCount != nil {
		draft.VariantCount = *input.VariantCount
	}
	if input.DailyTraffic != nil {
		draft.DailyTraffic = *input.DailyTraffic
	}

	if err := s.DraftRepo.Update(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Next advances the draft one step after the current step validates.
// Reaching the review step computes the sample-size estimate.
func (s *ABTestService) Next(draftID int) (*model.ABTestDraft, error) {
	draft, err := s.activeDraft(draftID)
	if err != nil {
		return nil, err
	}

	if err := s.validateStep(draft, draft.Step); err != nil {
		return nil, err
	}

	draft.Step = wizard.Advance(draft.Step, abtestLastStep)
	if draft.Step == abtestLastStep {
		s.recompute(draft)
	}

	if err := s.DraftRepo.Update(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *ABTestService) Previous(draftID int) (*model.ABTestDraft, error) {
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

func (s *ABTestService) Jump(draftID, target int) (*model.ABTestDraft, error) {
	draft, err := s.activeDraft(draftID)
	if err != nil {
		return nil, err
	}

	draft.Step = wizard.Jump(target, abtestLastStep)
	if draft.Step == abtestLastStep {
		s.recompute(draft)
	}
	if err := s.DraftRepo.Update(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Complete finishes the flow on the review step.
func (s *ABTestService) Complete(draftID int) (*model.ABTestDraft, error) {
	draft, err := s.activeDraft(draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != abtestLastStep {
		return nil, fmt.Errorf("A/B test draft %d is on step %d, review step required", draft.ID, draft.Step)
	}
	// Jump can land on review with earlier steps edited since they were
	// validated, so every step is re-checked here.
	for step := 0; step <= abtestLastStep; step++ {
		if err := s.validateStep(draft, step); err != nil {
			return nil, err
		}
	}

	s.recompute(draft)
	if draft.SampleSize == 0 {
		return nil, fmt.Errorf("cannot complete test setup: sample size estimate is zero, check baseline and lift")
	}

	draft.Status = "completed"
	if err := s.DraftRepo.Update(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *ABTestService) recompute(d *model.ABTestDraft) {
	d.SampleSize = insights.SampleSizePerVariant(d.Confidence, d.BaselineRate, d.MinDetectable)
	d.EstimatedDays = insights.EstimateDuration(d.SampleSize, d.VariantCount, d.DailyTraffic)
}

func (s *ABTestService) validateStep(d *model.ABTestDraft, step int) error {
	switch step {
	case 0: // goal
		if d.Goal == "" || d.MetricName == "" {
			return fmt.Errorf("goal and metric are required")
		}
	case 1: // variants
		if d.VariantCount < 2 {
			return fmt.Errorf("a test needs at least two variants")
		}
		switch d.Confidence {
		case 90, 95, 99:
		default:
			return fmt.Errorf("confidence must be 90, 95 or 99")
		}
	case 2: // audience
		if d.BaselineRate <= 0 || d.BaselineRate >= 1 {
			return fmt.Errorf("baseline rate must be a fraction between 0 and 1")
		}
		if d.MinDetectable <= 0 {
			return fmt.Errorf("minimum detectable lift must be positive")
		}
		if d.DailyTraffic <= 0 {
			return fmt.Errorf("daily traffic must be positive")
		}
	}
	return nil
}

func (s *ABTestService) activeDraft(draftID int) (*model.ABTestDraft, error) {
	draft, err := s.DraftRepo.GetByID(draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status != "in_progress" {
		return nil, fmt.Errorf("A/B test draft %d is %s", draft.ID, draft.Status)
	}
	return draft, nil
}
