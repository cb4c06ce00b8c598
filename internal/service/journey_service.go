// internal/service/journey_service.go
package service

import (
	"github.com/launchdeck/campaignhub-backend/internal/insights"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
)

type JourneyService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	StageRepo    repository.JourneyStageRepositoryInterface
}

// JourneyStageView is one funnel phase with its derived numbers.
type JourneyStageView struct {
	model.JourneyStage
	EngagementRate       float64 `json:"engagement_rate"`
	ImpressionsFormatted string  `json:"impressions_formatted"`
	// DropoffPct is the impression change relative to the previous stage;
	// 0 for the first stage.
	DropoffPct float64 `json:"dropoff_pct"`
}

// GetJourney returns the funnel for a campaign, ordered by position, with
// stage-to-stage dropoff computed between neighbours.
func (s *JourneyService) GetJourney(campaignID int) ([]JourneyStageView, error) {
	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		return nil, err
	}

	stages, err := s.StageRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	views := []JourneyStageView{}
	for i, st := range stages {
		view := JourneyStageView{
			JourneyStage:         st,
			EngagementRate:       insights.EngagementRate(st.Engagement, st.Impressions),
			ImpressionsFormatted: insights.FormatCount(float64(st.Impressions)),
		}
		if i > 0 {
			view.DropoffPct = insights.PercentChange(float64(st.Impressions), float64(stages[i-1].Impressions))
		}
		views = append(views, view)
	}
	return views, nil
}

// AdvanceStage marks a stage completed and activates the next pending one.
func (s *JourneyService) AdvanceStage(campaignID, stageID int) ([]JourneyStageView, error) {
	stages, err := s.StageRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	for i, st := range stages {
		if st.ID != stageID {
			continue
		}
		if err := s.StageRepo.UpdateStatus(st.ID, "completed"); err != nil {
			return nil, err
		}
		if i+1 < len(stages) && stages[i+1].Status == "pending" {
			if err := s.StageRepo.UpdateStatus(stages[i+1].ID, "active"); err != nil {
				return nil, err
			}
		}
		break
	}

	return s.GetJourney(campaignID)
}
