// internal/service/campaign_service.go
package service

import (
	"fmt"
	"time"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/insights"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	StageRepo    repository.JourneyStageRepositoryInterface
	TimelineRepo repository.TimelineRepositoryInterface
}

// CampaignMetrics is the derived-metric block attached to campaign details.
type CampaignMetrics struct {
	BudgetUtilization    float64 `json:"budget_utilization"`
	ROI                  float64 `json:"roi"`
	ROILabel             string  `json:"roi_label"`
	EngagementRate       float64 `json:"engagement_rate"`
	ClickThroughRate     float64 `json:"click_through_rate"`
	ConversionRate       float64 `json:"conversion_rate"`
	CostPerConversion    float64 `json:"cost_per_conversion"`
	ImpressionsFormatted string  `json:"impressions_formatted"`
	EngagementFormatted  string  `json:"engagement_formatted"`
}

type StageRollup struct {
	model.JourneyStage
	EngagementRate float64 `json:"engagement_rate"`
}

type CampaignDetails struct {
	Campaign model.Campaign  `json:"campaign"`
	Metrics  CampaignMetrics `json:"metrics"`
	Stages   []StageRollup   `json:"stages"`
}

func computeMetrics(c *model.Campaign) CampaignMetrics {
	roi := insights.ROI(c.Revenue, c.BudgetSpent)
	return CampaignMetrics{
		BudgetUtilization:    insights.BudgetUtilization(c.BudgetSpent, c.BudgetTotal),
		ROI:                  roi,
		ROILabel:             insights.ROILabel(roi),
		EngagementRate:       insights.EngagementRate(c.Engagement, c.Impressions),
		ClickThroughRate:     insights.ClickThroughRate(c.Clicks, c.Impressions),
		ConversionRate:       insights.ConversionRate(c.Conversions, c.Clicks),
		CostPerConversion:    insights.CostPerConversion(c.BudgetSpent, c.Conversions),
		ImpressionsFormatted: insights.FormatCount(float64(c.Impressions)),
		EngagementFormatted:  insights.FormatCount(float64(c.Engagement)),
	}
}

func (s *CampaignService) CreateCampaign(c *model.Campaign) (*model.Campaign, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	if !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}
	c.Status = "draft"

	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns fetches campaigns with pagination
func (s *CampaignService) ListCampaigns(page, pageSize int, status, channel string) ([]model.Campaign, map[string]int, error) {
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

	ptrs, total, err := s.CampaignRepo.ListCampaigns(offset, pageSize, status, channel)
	if err != nil {
		return nil, nil, err
	}

	campaigns := make([]model.Campaign, len(ptrs))
	for i, c := range ptrs {
		campaigns[i] = *c
	}

	totalPages := (total + pageSize - 1) / pageSize
	pagination := map[string]int{
		"page":        page,
		"page_size":   pageSize,
		"total_count": total,
		"total_pages": totalPages,
	}

	return campaigns, pagination, nil
}

// GetCampaignDetails returns the campaign with its derived metrics and
// per-stage rollups.
func (s *CampaignService) GetCampaignDetails(id int) (*CampaignDetails, error) {
	campaign, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	details := &CampaignDetails{
		Campaign: *campaign,
		Metrics:  computeMetrics(campaign),
		Stages:   []StageRollup{},
	}

	if s.StageRepo != nil {
		stages, err := s.StageRepo.ListByCampaign(id)
		if err != nil {
			return nil, err
		}
		for _, st := range stages {
			details.Stages = append(details.Stages, StageRollup{
				JourneyStage:   st,
				EngagementRate: insights.EngagementRate(st.Engagement, st.Impressions),
			})
		}
	}

	return details, nil
}

// ChangeStatus moves a campaign through its lifecycle, rejecting transitions
// the workflow does not allow.
func (s *CampaignService) ChangeStatus(id int, to, actor string) (*model.Campaign, error) {
	campaign, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(campaign.Status, to) {
		return nil, appErrors.NewInvalidTransition("campaign", campaign.Status, to)
	}

	if err := s.CampaignRepo.UpdateStatus(id, to); err != nil {
		return nil, err
	}

	if s.TimelineRepo != nil {
		_ = s.TimelineRepo.Append(&model.TimelineEvent{
			CampaignID: id,
			Actor:      actor,
			EventType:  "status_changed",
			Detail:     fmt.Sprintf("campaign moved from %s to %s", campaign.Status, to),
		})
	}

	campaign.Status = to
	now := time.Now()
	campaign.UpdatedAt = &now
	return campaign, nil
}

// Compare builds the head-to-head comparison for two campaigns.
func (s *CampaignService) Compare(aID, bID int) (*insights.Comparison, error) {
	a, err := s.CampaignRepo.GetByID(aID)
	if err != nil {
		return nil, err
	}
	b, err := s.CampaignRepo.GetByID(bID)
	if err != nil {
		return nil, err
	}

	cmp := insights.CompareCampaigns(snapshot(a), snapshot(b))
	return &cmp, nil
}

func snapshot(c *model.Campaign) insights.CampaignSnapshot {
	return insights.CampaignSnapshot{
		ID:          c.ID,
		Name:        c.Name,
		Impressions: c.Impressions,
		Engagement:  c.Engagement,
		Clicks:      c.Clicks,
		Conversions: c.Conversions,
		Spend:       c.BudgetSpent,
		Revenue:     c.Revenue,
	}
}

// DashboardSummary aggregates every campaign into the dashboard header
// numbers: totals, blended rates and the top performer by ROI.
type DashboardSummary struct {
	CampaignCount        int     `json:"campaign_count"`
	ActiveCount          int     `json:"active_count"`
	TotalBudget          float64 `json:"total_budget"`
	TotalSpent           float64 `json:"total_spent"`
	BudgetUtilization    float64 `json:"budget_utilization"`
	TotalImpressions     int64   `json:"total_impressions"`
	ImpressionsFormatted string  `json:"impressions_formatted"`
	TotalConversions     int64   `json:"total_conversions"`
	AvgEngagementRate    float64 `json:"avg_engagement_rate"`
	OverallROI           float64 `json:"overall_roi"`
	OverallROILabel      string  `json:"overall_roi_label"`
	TopPerformer         string  `json:"top_performer"`
}

func (s *CampaignService) GetDashboardSummary() (*DashboardSummary, error) {
	summary := &DashboardSummary{}
	var impressions, engagement int64
	var revenue float64
	bestROI := 0.0

	// The repo caps pages at 100, so walk every page.
	offset := 0
	for {
		campaigns, total, err := s.CampaignRepo.ListCampaigns(offset, 100, "", "")
		if err != nil {
			return nil, err
		}
		summary.CampaignCount = total

		for _, c := range campaigns {
			if c.Status == "active" {
				summary.ActiveCount++
			}
			summary.TotalBudget += c.BudgetTotal
			summary.TotalSpent += c.BudgetSpent
			summary.TotalConversions += c.Conversions
			impressions += c.Impressions
			engagement += c.Engagement
			revenue += c.Revenue

			roi := insights.ROI(c.Revenue, c.BudgetSpent)
			if summary.TopPerformer == "" || roi > bestROI {
				bestROI = roi
				summary.TopPerformer = c.Name
			}
		}

		offset += len(campaigns)
		if len(campaigns) == 0 || offset >= total {
			break
		}
	}

	summary.TotalImpressions = impressions
	summary.ImpressionsFormatted = insights.FormatCount(float64(impressions))
	summary.BudgetUtilization = insights.BudgetUtilization(summary.TotalSpent, summary.TotalBudget)
	summary.AvgEngagementRate = insights.EngagementRate(engagement, impressions)
	summary.OverallROI = insights.ROI(revenue, summary.TotalSpent)
	summary.OverallROILabel = insights.ROILabel(summary.OverallROI)

	return summary, nil
}
