// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string   `json:"name"`
		Channels    []string `json:"channels"`
		Objectives  []string `json:"objectives"`
		StartDate   string   `json:"start_date"`
		EndDate     string   `json:"end_date"`
		BudgetTotal float64  `json:"budget_total"`
		Currency    string   `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign := &model.Campaign{
		Name:        body.Name,
		Channels:    body.Channels,
		Objectives:  body.Objectives,
		BudgetTotal: body.BudgetTotal,
		Currency:    body.Currency,
	}
	if body.StartDate != "" {
		t, err := parseDateParam(body.StartDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		campaign.StartDate = t
	}
	if body.EndDate != "" {
		t, err := parseDateParam(body.EndDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		campaign.EndDate = t
	}

	created, err := c.CampaignService.CreateCampaign(campaign)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	status := r.URL.Query().Get("status")
	channel := r.URL.Query().Get("channel")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	campaigns, pagination, err := c.CampaignService.ListCampaigns(page, pageSize, status, channel)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":       campaigns,
		"pagination": pagination,
	})
}

func (c *CampaignController) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var body struct {
		Status string `json:"status"`
		Actor  string `json:"actor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.Actor == "" {
		body.Actor = "system"
	}

	campaign, err := c.CampaignService.ChangeStatus(id, body.Status, body.Actor)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, campaign)
}

// CompareCampaigns handles GET /campaigns/compare?a=1&b=2
func (c *CampaignController) CompareCampaigns(w http.ResponseWriter, r *http.Request) {
	aID, errA := strconv.Atoi(r.URL.Query().Get("a"))
	bID, errB := strconv.Atoi(r.URL.Query().Get("b"))
	if errA != nil || errB != nil {
		http.Error(w, "query parameters a and b must be campaign IDs", http.StatusBadRequest)
		return
	}

	cmp, err := c.CampaignService.Compare(aID, bID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cmp)
}
