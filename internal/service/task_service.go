// internal/service/task_service.go
package service

import (
	"fmt"
	"time"

	"github.com/launchdeck/campaignhub-backend/internal/insights"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
)

type TaskService struct {
	TaskRepo   repository.TaskRepositoryInterface
	MemberRepo repository.TeamMemberRepositoryInterface
}

// MemberWorkload is one row of the team workload board.
type MemberWorkload struct {
	Member          model.TeamMember `json:"member"`
	OpenTasks       int              `json:"open_tasks"`
	Load            float64          `json:"load"`
	WorkloadScore   float64          `json:"workload_score"`
	EfficiencyScore float64          `json:"efficiency_score"`
}

func (s *TaskService) CreateTask(t *model.Task) (*model.Task, error) {
	if t.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}
	if t.AssigneeID != nil {
		member, err := s.MemberRepo.GetByID(*t.AssigneeID)
		if err != nil {
			return nil, err
		}
		if member == nil {
			return nil, fmt.Errorf("team member %d not found", *t.AssigneeID)
		}
	}
	if err := s.TaskRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) AssignTask(taskID, memberID int) (*model.Task, error) {
	task, err := s.TaskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	member, err := s.MemberRepo.GetByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("team member %d not found", memberID)
	}

	if err := s.TaskRepo.Assign(taskID, memberID); err != nil {
		return nil, err
	}

	task.AssigneeID = &memberID
	return task, nil
}

// ChangeStatus updates a task; marking it done stamps completed_at so
// punctuality can be scored later.
func (s *TaskService) ChangeStatus(taskID int, status string) (*model.Task, error) {
	task, err := s.TaskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	switch status {
	case "todo", "in_progress", "blocked", "done":
	default:
		return nil, fmt.Errorf("unknown task status: %s", status)
	}

	var completedAt *time.Time
	if status == "done" {
		now := time.Now()
		completedAt = &now
	}

	if err := s.TaskRepo.UpdateStatus(taskID, status, completedAt); err != nil {
		return nil, err
	}

	task.Status = status
	task.CompletedAt = completedAt
	return task, nil
}

func (s *TaskService) ListTasks(campaignID int, status string) ([]model.Task, error) {
	ptrs, err := s.TaskRepo.List(campaignID, status)
	if err != nil {
		return nil, err
	}
	tasks := make([]model.Task, len(ptrs))
	for i, t := range ptrs {
		tasks[i] = *t
	}
	return tasks, nil
}

// TeamWorkload scores every member from their assigned tasks.
func (s *TaskService) TeamWorkload() ([]MemberWorkload, error) {
	members, err := s.MemberRepo.ListAll()
	if err != nil {
		return nil, err
	}

	board := []MemberWorkload{}
	for _, member := range members {
		tasks, err := s.TaskRepo.ListByAssignee(member.ID)
		if err != nil {
			return nil, err
		}
		board = append(board, scoreMember(member, tasks))
	}
	return board, nil
}

func scoreMember(member model.TeamMember, tasks []*model.Task) MemberWorkload {
	var openPriorities []string
	var completed, onTime int

	for _, t := range tasks {
		if t.IsOpen() {
			openPriorities = append(openPriorities, t.Priority)
			continue
		}
		completed++
		if t.CompletedOnTime() {
			onTime++
		}
	}

	load := insights.TaskLoad(openPriorities)
	return MemberWorkload{
		Member:          member,
		OpenTasks:       len(openPriorities),
		Load:            load,
		WorkloadScore:   insights.WorkloadScore(load, member.CapacityPct),
		EfficiencyScore: insights.EfficiencyScore(completed, len(tasks), onTime),
	}
}

// SuggestAssignee picks the member with the lowest workload score who still
// has room. Returns nil when everyone is at capacity.
func (s *TaskService) SuggestAssignee() (*MemberWorkload, error) {
	board, err := s.TeamWorkload()
	if err != nil {
		return nil, err
	}

	var best *MemberWorkload
	for i := range board {
		w := &board[i]
		if w.WorkloadScore >= 100 {
			continue
		}
		if best == nil || w.WorkloadScore < best.WorkloadScore {
			best = w
		}
	}
	return best, nil
}
