// internal/controller/journey_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/launchdeck/campaignhub-backend/internal/service"
)

type JourneyController struct {
	JourneyService *service.JourneyService
}

func (c *JourneyController) GetJourney(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	stages, err := c.JourneyService.GetJourney(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": stages})
}

func (c *JourneyController) AdvanceStage(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	stageID, err := strconv.Atoi(chi.URLParam(r, "stageID"))
	if err != nil {
		http.Error(w, "invalid stage id", http.StatusBadRequest)
		return
	}

	stages, err := c.JourneyService.AdvanceStage(campaignID, stageID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": stages})
}
