// internal/service/presentation_service.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/launchdeck/campaignhub-backend/internal/insights"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
)

type PresentationService struct {
	PresentationRepo repository.PresentationRepositoryInterface
	CampaignRepo     repository.CampaignRepositoryInterface
	StageRepo        repository.JourneyStageRepositoryInterface
	TaskRepo         repository.TaskRepositoryInterface
}

// Generate builds a stakeholder deck from the campaign's current numbers and
// persists it. Export to file happens asynchronously in the worker.
func (s *PresentationService) Generate(campaignID int, title string) (*model.Presentation, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = campaign.Name + " — Stakeholder Update"
	}

	stages, err := s.StageRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepo.List(campaignID, "")
	if err != nil {
		return nil, err
	}
	openTasks := make([]*model.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status != "done" {
			openTasks = append(openTasks, task)
		}
	}

	deck := &model.Presentation{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		Title:      title,
		Slides: []model.Slide{
			overviewSlide(campaign),
			metricsSlide(campaign),
			journeySlide(stages),
			budgetSlide(campaign),
			nextStepsSlide(openTasks),
		},
	}

	if err := s.PresentationRepo.Create(deck); err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *PresentationService) Get(id string) (*model.Presentation, error) {
	deck, err := s.PresentationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, fmt.Errorf("presentation %s not found", id)
	}
	return deck, nil
}

func overviewSlide(c *model.Campaign) model.Slide {
	bullets := []string{
		fmt.Sprintf("Status: %s", c.Status),
		fmt.Sprintf("Flight: %s to %s", c.StartDate.Format("Jan 2, 2006"), c.EndDate.Format("Jan 2, 2006")),
	}
	for _, obj := range c.Objectives {
		bullets = append(bullets, "Objective: "+obj)
	}
	return model.Slide{Kind: "overview", Title: c.Name, Bullets: bullets}
}

func metricsSlide(c *model.Campaign) model.Slide {
	roi := insights.ROI(c.Revenue, c.BudgetSpent)
	return model.Slide{
		Kind:  "metrics",
		Title: "Performance",
		Bullets: []string{
			fmt.Sprintf("Impressions: %s", insights.FormatCount(float64(c.Impressions))),
			fmt.Sprintf("Engagement rate: %.1f%%", insights.EngagementRate(c.Engagement, c.Impressions)),
			fmt.Sprintf("Click-through rate: %.2f%%", insights.ClickThroughRate(c.Clicks, c.Impressions)),
			fmt.Sprintf("Conversions: %s", insights.FormatCount(float64(c.Conversions))),
			fmt.Sprintf("ROI: %.1f%% (%s)", roi, insights.ROILabel(roi)),
		},
	}
}

func journeySlide(stages []model.JourneyStage) model.Slide {
	bullets := []string{}
	for _, st := range stages {
		bullets = append(bullets, fmt.Sprintf(
			"%s [%s]: %s impressions, %d content pieces",
			st.Name, st.Status, insights.FormatCount(float64(st.Impressions)), st.ContentCount,
		))
	}
	return model.Slide{Kind: "journey", Title: "Customer Journey", Bullets: bullets}
}

func budgetSlide(c *model.Campaign) model.Slide {
	return model.Slide{
		Kind:  "budget",
		Title: "Budget",
		Bullets: []string{
			fmt.Sprintf("Total: %.2f %s", c.BudgetTotal, c.Currency),
			fmt.Sprintf("Spent: %.2f %s", c.BudgetSpent, c.Currency),
			fmt.Sprintf("Utilization: %.1f%%", insights.BudgetUtilization(c.BudgetSpent, c.BudgetTotal)),
			fmt.Sprintf("Cost per conversion: %.2f %s", insights.CostPerConversion(c.BudgetSpent, c.Conversions), c.Currency),
		},
	}
}

func nextStepsSlide(openTasks []*model.Task) model.Slide {
	bullets := []string{}
	for _, t := range openTasks {
		line := t.Title
		if t.Status == "blocked" {
			line += " [blocked]"
		}
		if t.DueDate != nil {
			line += " (due " + t.DueDate.Format("Jan 2") + ")"
		}
		bullets = append(bullets, line)
	}
	if len(bullets) == 0 {
		bullets = append(bullets, "No open items")
	}
	return model.Slide{Kind: "next_steps", Title: "Next Steps", Bullets: bullets}
}
