// internal/controller/approval_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/launchdeck/campaignhub-backend/internal/service"
)

type ApprovalController struct {
	ApprovalService *service.ApprovalService
}

func (c *ApprovalController) ListPending(w http.ResponseWriter, r *http.Request) {
	approvals, err := c.ApprovalService.ListPending()
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": approvals})
}

func (c *ApprovalController) Decide(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid approval id", http.StatusBadRequest)
		return
	}

	var body struct {
		Decision   string `json:"decision"`
		ReviewerID int    `json:"reviewer_id"`
		Comment    string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	approval, err := c.ApprovalService.Decide(id, body.Decision, body.ReviewerID, body.Comment)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, approval)
}
