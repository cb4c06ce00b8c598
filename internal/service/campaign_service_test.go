package service_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/service"
)

func seedCampaign(repo *MockCampaignRepo, c model.Campaign) *model.Campaign {
	_ = repo.Create(&c)
	if c.Status != "draft" {
		_ = repo.UpdateStatus(c.ID, c.Status)
	}
	return &c
}

func TestCreateCampaignRequiresName(t *testing.T) {
	svc := &service.CampaignService{CampaignRepo: newMockCampaignRepo()}

	_, err := svc.CreateCampaign(&model.Campaign{})
	if err == nil {
		t.Fatal("expected error for missing name, got nil")
	}
}

func TestCreateCampaignRejectsBackwardDates(t *testing.T) {
	svc := &service.CampaignService{CampaignRepo: newMockCampaignRepo()}

	_, err := svc.CreateCampaign(&model.Campaign{
		Name:      "Bad Dates",
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err == nil {
		t.Fatal("expected error for end date before start date, got nil")
	}
}

func TestCreateCampaignForcesDraftStatus(t *testing.T) {
	repo := newMockCampaignRepo()
	svc := &service.CampaignService{CampaignRepo: repo}

	created, err := svc.CreateCampaign(&model.Campaign{Name: "Launch", Status: "active"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != "draft" {
		t.Errorf("expected status draft, got %s", created.Status)
	}
}

func TestChangeStatusRejectsInvalidTransition(t *testing.T) {
	repo := newMockCampaignRepo()
	c := seedCampaign(repo, model.Campaign{Name: "Live", Status: "active"})

	svc := &service.CampaignService{CampaignRepo: repo, TimelineRepo: &MockTimelineRepo{}}

	_, err := svc.ChangeStatus(c.ID, "draft", "carol")
	var invalid *appErrors.ErrInvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if invalid.From != "active" || invalid.To != "draft" {
		t.Errorf("unexpected transition in error: %s -> %s", invalid.From, invalid.To)
	}
}

func TestChangeStatusAppendsTimelineEvent(t *testing.T) {
	repo := newMockCampaignRepo()
	timeline := &MockTimelineRepo{}
	c := seedCampaign(repo, model.Campaign{Name: "Launch"})

	svc := &service.CampaignService{CampaignRepo: repo, TimelineRepo: timeline}

	updated, err := svc.ChangeStatus(c.ID, "active", "carol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "active" {
		t.Errorf("expected status active, got %s", updated.Status)
	}

	stored, _ := repo.GetByID(c.ID)
	if stored.Status != "active" {
		t.Errorf("expected persisted status active, got %s", stored.Status)
	}
	if len(timeline.events) != 1 {
		t.Fatalf("expected 1 timeline event, got %d", len(timeline.events))
	}
	if timeline.events[0].EventType != "status_changed" {
		t.Errorf("unexpected event type %s", timeline.events[0].EventType)
	}
}

func TestChangeStatusUnknownCampaign(t *testing.T) {
	svc := &service.CampaignService{CampaignRepo: newMockCampaignRepo()}

	_, err := svc.ChangeStatus(99, "active", "carol")
	var notFound *appErrors.ErrCampaignNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestGetCampaignDetailsMetrics(t *testing.T) {
	repo := newMockCampaignRepo()
	stages := newMockStageRepo()
	c := seedCampaign(repo, model.Campaign{
		Name:        "Spring Launch",
		BudgetTotal: 1000,
		BudgetSpent: 250,
		Impressions: 2_000_000,
		Engagement:  500_000,
		Clicks:      100_000,
		Conversions: 5_000,
		Revenue:     500,
	})
	_ = stages.Create(&model.JourneyStage{
		CampaignID: c.ID, Name: "Awareness", Position: 1,
		Impressions: 1000, Engagement: 250,
	})

	svc := &service.CampaignService{CampaignRepo: repo, StageRepo: stages}

	details, err := svc.GetCampaignDetails(c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := details.Metrics
	if m.BudgetUtilization != 25 {
		t.Errorf("expected budget utilization 25, got %v", m.BudgetUtilization)
	}
	if m.ROI != 100 {
		t.Errorf("expected ROI 100, got %v", m.ROI)
	}
	if m.ROILabel != "Profitable" {
		t.Errorf("expected Profitable, got %s", m.ROILabel)
	}
	if m.EngagementRate != 25 {
		t.Errorf("expected engagement rate 25, got %v", m.EngagementRate)
	}
	if m.ImpressionsFormatted != "2.0M" {
		t.Errorf("expected 2.0M, got %s", m.ImpressionsFormatted)
	}

	if len(details.Stages) != 1 {
		t.Fatalf("expected 1 stage rollup, got %d", len(details.Stages))
	}
	if details.Stages[0].EngagementRate != 25 {
		t.Errorf("expected stage engagement rate 25, got %v", details.Stages[0].EngagementRate)
	}
}

func TestListCampaignsPaginationDefaults(t *testing.T) {
	repo := newMockCampaignRepo()
	for i := 0; i < 25; i++ {
		seedCampaign(repo, model.Campaign{Name: "Campaign"})
	}

	svc := &service.CampaignService{CampaignRepo: repo}

	campaigns, pagination, err := svc.ListCampaigns(0, 0, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != 20 {
		t.Errorf("expected 20 campaigns on the first page, got %d", len(campaigns))
	}
	if pagination["page"] != 1 || pagination["page_size"] != 20 {
		t.Errorf("unexpected pagination defaults: %v", pagination)
	}
	if pagination["total_count"] != 25 || pagination["total_pages"] != 2 {
		t.Errorf("unexpected totals: %v", pagination)
	}

	campaigns, _, err = svc.ListCampaigns(2, 20, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != 5 {
		t.Errorf("expected 5 campaigns on the second page, got %d", len(campaigns))
	}
}

func TestListCampaignsCapsPageSize(t *testing.T) {
	svc := &service.CampaignService{CampaignRepo: newMockCampaignRepo()}

	_, pagination, err := svc.ListCampaigns(1, 500, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pagination["page_size"] != 100 {
		t.Errorf("expected page size capped at 100, got %d", pagination["page_size"])
	}
}

func TestListCampaignsFiltersByStatus(t *testing.T) {
	repo := newMockCampaignRepo()
	seedCampaign(repo, model.Campaign{Name: "One", Status: "active"})
	seedCampaign(repo, model.Campaign{Name: "Two"})
	seedCampaign(repo, model.Campaign{Name: "Three", Status: "active"})

	svc := &service.CampaignService{CampaignRepo: repo}

	campaigns, pagination, err := svc.ListCampaigns(1, 20, "active", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != 2 || pagination["total_count"] != 2 {
		t.Errorf("expected 2 active campaigns, got %d (total %d)", len(campaigns), pagination["total_count"])
	}
}

func TestGetDashboardSummaryWalksEveryPage(t *testing.T) {
	repo := newMockCampaignRepo()

	// the best performer lands on the second page of the repo listing
	seedCampaign(repo, model.Campaign{
		Name: "Sleeper", Status: "draft",
		BudgetTotal: 10, BudgetSpent: 10, Revenue: 1000,
	})
	for i := 0; i < 149; i++ {
		seedCampaign(repo, model.Campaign{
			Name: fmt.Sprintf("Filler %d", i), Status: "draft",
			BudgetTotal: 10, BudgetSpent: 5,
		})
	}

	svc := &service.CampaignService{CampaignRepo: repo}

	summary, err := svc.GetDashboardSummary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.CampaignCount != 150 {
		t.Errorf("expected 150 campaigns, got %d", summary.CampaignCount)
	}
	if summary.TotalBudget != 1500 {
		t.Errorf("expected totals across every page, got budget %v", summary.TotalBudget)
	}
	if summary.TopPerformer != "Sleeper" {
		t.Errorf("expected top performer from the second page, got %s", summary.TopPerformer)
	}
}

func TestGetDashboardSummary(t *testing.T) {
	repo := newMockCampaignRepo()
	seedCampaign(repo, model.Campaign{
		Name: "Steady", Status: "active",
		BudgetTotal: 1000, BudgetSpent: 500,
		Impressions: 1000, Engagement: 100,
		Conversions: 10, Revenue: 600,
	})
	seedCampaign(repo, model.Campaign{
		Name: "Star", Status: "completed",
		BudgetTotal: 1000, BudgetSpent: 500,
		Impressions: 3000, Engagement: 900,
		Conversions: 40, Revenue: 2000,
	})

	svc := &service.CampaignService{CampaignRepo: repo}

	summary, err := svc.GetDashboardSummary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.CampaignCount != 2 || summary.ActiveCount != 1 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if summary.TotalBudget != 2000 || summary.TotalSpent != 1000 {
		t.Errorf("unexpected budget totals: %+v", summary)
	}
	if summary.BudgetUtilization != 50 {
		t.Errorf("expected utilization 50, got %v", summary.BudgetUtilization)
	}
	if summary.TotalImpressions != 4000 || summary.AvgEngagementRate != 25 {
		t.Errorf("unexpected engagement rollup: %+v", summary)
	}
	if summary.TopPerformer != "Star" {
		t.Errorf("expected top performer Star, got %s", summary.TopPerformer)
	}
	if summary.OverallROILabel != "Profitable" {
		t.Errorf("expected Profitable overall, got %s", summary.OverallROILabel)
	}
}
