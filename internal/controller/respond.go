// internal/controller/respond.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondError maps the service error taxonomy onto status codes:
// not-found types to 404, invalid transitions to 409, anything else 500.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var campaignNF *appErrors.ErrCampaignNotFound
	var contentNF *appErrors.ErrContentNotFound
	var taskNF *appErrors.ErrTaskNotFound
	var approvalNF *appErrors.ErrApprovalNotFound
	var draftNF *appErrors.ErrDraftNotFound
	var badMove *appErrors.ErrInvalidTransition

	switch {
	case errors.As(err, &campaignNF),
		errors.As(err, &contentNF),
		errors.As(err, &taskNF),
		errors.As(err, &approvalNF),
		errors.As(err, &draftNF):
		status = http.StatusNotFound
	case errors.As(err, &badMove):
		status = http.StatusConflict
	}

	http.Error(w, err.Error(), status)
}
