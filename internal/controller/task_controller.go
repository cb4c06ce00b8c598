// internal/controller/task_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/service"
)

type TaskController struct {
	TaskService *service.TaskService
}

func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CampaignID int    `json:"campaign_id"`
		AssigneeID *int   `json:"assignee_id"`
		Title      string `json:"title"`
		Priority   string `json:"priority"`
		DueDate    string `json:"due_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	task := &model.Task{
		CampaignID: body.CampaignID,
		AssigneeID: body.AssigneeID,
		Title:      body.Title,
		Priority:   body.Priority,
	}
	if body.DueDate != "" {
		t, err := parseDateParam(body.DueDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		task.DueDate = &t
	}

	created, err := c.TaskService.CreateTask(task)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	campaignID, _ := strconv.Atoi(r.URL.Query().Get("campaign_id"))
	status := r.URL.Query().Get("status")

	tasks, err := c.TaskService.ListTasks(campaignID, status)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": tasks})
}

func (c *TaskController) AssignTask(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var body struct {
		MemberID int `json:"member_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	task, err := c.TaskService.AssignTask(id, body.MemberID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (c *TaskController) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	task, err := c.TaskService.ChangeStatus(id, body.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (c *TaskController) TeamWorkload(w http.ResponseWriter, r *http.Request) {
	board, err := c.TaskService.TeamWorkload()
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": board})
}

func (c *TaskController) SuggestAssignee(w http.ResponseWriter, r *http.Request) {
	suggestion, err := c.TaskService.SuggestAssignee()
	if err != nil {
		respondError(w, err)
		return
	}
	if suggestion == nil {
		http.Error(w, "all team members are at capacity", http.StatusConflict)
		return
	}

	respondJSON(w, http.StatusOK, suggestion)
}
