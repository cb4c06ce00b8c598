// internal/controller/wizard_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/launchdeck/campaignhub-backend/internal/service"
)

// CloneController drives the 3-step campaign cloning flow.
type CloneController struct {
	CloneService *service.CloneService
}

func (c *CloneController) Start(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	draft, err := c.CloneService.StartDraft(campaignID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, draft)
}

func (c *CloneController) Update(w http.ResponseWriter, r *http.Request) {
	draftID, err := strconv.Atoi(chi.URLParam(r, "draftID"))
	if err != nil {
		http.Error(w, "invalid draft id", http.StatusBadRequest)
		return
	}

	var input service.CloneDraftInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	draft, err := c.CloneService.UpdateDraft(draftID, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

// Step handles POST /clone-drafts/{draftID}/step with {"move":"next"|"previous"|"jump","target":N}
func (c *CloneController) Step(w http.ResponseWriter, r *http.Request) {
	draftID, err := strconv.Atoi(chi.URLParam(r, "draftID"))
	if err != nil {
		http.Error(w, "invalid draft id", http.StatusBadRequest)
		return
	}

	var body struct {
		Move   string `json:"move"`
		Target int    `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	var draft interface{}
	switch body.Move {
	case "next":
		draft, err = c.CloneService.Next(draftID)
	case "previous":
		draft, err = c.CloneService.Previous(draftID)
	case "jump":
		draft, err = c.CloneService.Jump(draftID, body.Target)
	default:
		http.Error(w, "move must be next, previous or jump", http.StatusBadRequest)
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

func (c *CloneController) Complete(w http.ResponseWriter, r *http.Request) {
	draftID, err := strconv.Atoi(chi.URLParam(r, "draftID"))
	if err != nil {
		http.Error(w, "invalid draft id", http.StatusBadRequest)
		return
	}

	campaign, err := c.CloneService.Complete(draftID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, campaign)
}

// ABTestController drives the 4-step A/B test setup flow.
type ABTestController struct {
	ABTestService *service.ABTestService
}

func (c *ABTestController) Start(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	draft, err := c.ABTestService.StartDraft(campaignID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, draft)
}

func (c *ABTestController) Update(w http.ResponseWriter, r *http.Request) {
	draftID, err := strconv.Atoi(chi.URLParam(r, "draftID"))
	if err != nil {
		http.Error(w, "invalid draft id", http.StatusBadRequest)
		return
	}

	var input service.ABTestDraftInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	draft, err := c.ABTestService.UpdateDraft(draftID, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

func (c *ABTestController) Step(w http.ResponseWriter, r *http.Request) {
	draftID, err := strconv.Atoi(chi.URLParam(r, "draftID"))
	if err != nil {
		http.Error(w, "invalid draft id", http.StatusBadRequest)
		return
	}

	var body struct {
		Move   string `json:"move"`
		Target int    `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	var draft interface{}
	switch body.Move {
	case "next":
		draft, err = c.ABTestService.Next(draftID)
	case "previous":
		draft, err = c.ABTestService.Previous(draftID)
	case "jump":
		draft, err = c.ABTestService.Jump(draftID, body.Target)
	default:
		http.Error(w, "move must be next, previous or jump", http.StatusBadRequest)
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

func (c *ABTestController) Complete(w http.ResponseWriter, r *http.Request) {
	draftID, err := strconv.Atoi(chi.URLParam(r, "draftID"))
	if err != nil {
		http.Error(w, "invalid draft id", http.StatusBadRequest)
		return
	}

	draft, err := c.ABTestService.Complete(draftID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, draft)
}
