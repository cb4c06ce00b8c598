package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/handler"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/service"
)

// mockCampaignRepo stores campaigns in memory
type mockCampaignRepo struct {
	campaigns map[int]*model.Campaign
}

func (m *mockCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	cp := *c
	return &cp, nil
}

func (m *mockCampaignRepo) ListCampaigns(offset, limit int, status, channel string) ([]*model.Campaign, int, error) {
	return nil, 0, nil
}

func (m *mockCampaignRepo) Create(c *model.Campaign) error { return nil }

func (m *mockCampaignRepo) Update(c *model.Campaign) error { return nil }

func (m *mockCampaignRepo) UpdateStatus(campaignID int, status string) error { return nil }

func newInsightsRouter(repo *mockCampaignRepo) *chi.Mux {
	h := &handler.DashboardHandler{
		CampaignService: &service.CampaignService{CampaignRepo: repo},
	}
	r := chi.NewRouter()
	r.Get("/campaigns/{id}/insights", h.GetCampaignWithInsights)
	return r
}

func TestGetCampaignWithInsights(t *testing.T) {
	repo := &mockCampaignRepo{campaigns: map[int]*model.Campaign{
		1: {ID: 1, Name: "Spring Launch", Status: "active"},
	}}
	r := newInsightsRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/campaigns/1/insights", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetCampaignWithInsightsNotFound(t *testing.T) {
	repo := &mockCampaignRepo{campaigns: map[int]*model.Campaign{}}
	r := newInsightsRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/campaigns/42/insights", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown campaign, got %d", rec.Code)
	}
}
