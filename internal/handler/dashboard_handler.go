// internal/handler/dashboard_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
	"github.com/launchdeck/campaignhub-backend/internal/service"
)

// DashboardHandler holds the dependencies for the metric-heavy read endpoints
type DashboardHandler struct {
	CampaignService *service.CampaignService
	TimelineRepo    repository.TimelineRepositoryInterface
}

// GetCampaignWithInsights returns a campaign plus its derived metrics and
// journey rollups
func (h *DashboardHandler) GetCampaignWithInsights(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	details, err := h.CampaignService.GetCampaignDetails(id)
	if err != nil {
		var notFound *appErrors.ErrCampaignNotFound
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Println("❌ Error fetching campaign:", err)
		http.Error(w, "failed to fetch campaign: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(details)
}

// GetDashboardSummary returns the cross-campaign header numbers
func (h *DashboardHandler) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.CampaignService.GetDashboardSummary()
	if err != nil {
		http.Error(w, "failed to build summary: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// GetCampaignTimeline returns the newest events for a campaign
func (h *DashboardHandler) GetCampaignTimeline(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.TimelineRepo.ListByCampaign(id, limit)
	if err != nil {
		http.Error(w, "failed to fetch timeline: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": events})
}
