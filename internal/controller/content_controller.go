// internal/controller/content_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
	"github.com/launchdeck/campaignhub-backend/internal/service"
)

type ContentController struct {
	ContentService *service.ContentService
}

func (c *ContentController) ListContent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	campaignID, _ := strconv.Atoi(q.Get("campaign_id"))
	stageID, _ := strconv.Atoi(q.Get("stage_id"))

	filter := repository.ContentFilter{
		CampaignID:  campaignID,
		Status:      q.Get("status"),
		Channel:     q.Get("channel"),
		ContentType: q.Get("type"),
		StageID:     stageID,
	}

	items, pagination, err := c.ContentService.ListContent(filter, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":       items,
		"pagination": pagination,
	})
}

func (c *ContentController) CreateContent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CampaignID     int    `json:"campaign_id"`
		JourneyStageID *int   `json:"journey_stage_id"`
		Title          string `json:"title"`
		ContentType    string `json:"content_type"`
		Channel        string `json:"channel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	item := &model.ContentItem{
		CampaignID:     body.CampaignID,
		JourneyStageID: body.JourneyStageID,
		Title:          body.Title,
		ContentType:    body.ContentType,
		Channel:        body.Channel,
	}

	created, err := c.ContentService.CreateContent(item)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (c *ContentController) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid content id", http.StatusBadRequest)
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

	item, err := c.ContentService.ChangeStatus(id, body.Status, body.Actor)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}
