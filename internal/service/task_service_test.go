package service_test

import (
	"testing"
	"time"

	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/service"
)

func intPtr(v int) *int { return &v }

func TestCreateTaskRejectsUnknownAssignee(t *testing.T) {
	svc := &service.TaskService{
		TaskRepo:   newMockTaskRepo(),
		MemberRepo: newMockMemberRepo(),
	}

	_, err := svc.CreateTask(&model.Task{Title: "Draft brief", AssigneeID: intPtr(42)})
	if err == nil {
		t.Fatal("expected error for unknown assignee, got nil")
	}
}

func TestAssignTask(t *testing.T) {
	tasks := newMockTaskRepo()
	members := newMockMemberRepo(model.TeamMember{ID: 1, Name: "Alice", CapacityPct: 100})
	svc := &service.TaskService{TaskRepo: tasks, MemberRepo: members}

	created, err := svc.CreateTask(&model.Task{Title: "Draft brief", CampaignID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assigned, err := svc.AssignTask(created.ID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assigned.AssigneeID == nil || *assigned.AssigneeID != 1 {
		t.Errorf("expected assignee 1, got %v", assigned.AssigneeID)
	}
}

func TestChangeStatusStampsCompletedAt(t *testing.T) {
	tasks := newMockTaskRepo()
	svc := &service.TaskService{TaskRepo: tasks, MemberRepo: newMockMemberRepo()}

	created, _ := svc.CreateTask(&model.Task{Title: "Ship it", CampaignID: 1})

	done, err := svc.ChangeStatus(created.ID, "done")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.CompletedAt == nil {
		t.Error("expected completed_at to be set for done task")
	}

	if _, err := svc.ChangeStatus(created.ID, "bogus"); err == nil {
		t.Error("expected error for unknown status, got nil")
	}
}

func TestTeamWorkloadScoresMembers(t *testing.T) {
	tasks := newMockTaskRepo()
	members := newMockMemberRepo(
		model.TeamMember{ID: 1, Name: "Alice", CapacityPct: 100},
		model.TeamMember{ID: 2, Name: "Bob", CapacityPct: 50},
	)
	svc := &service.TaskService{TaskRepo: tasks, MemberRepo: members}

	// Alice: one open high task, one done-on-time task.
	_ = tasks.Create(&model.Task{Title: "a", CampaignID: 1, AssigneeID: intPtr(1), Priority: "high"})
	due := time.Now().Add(24 * time.Hour)
	doneAt := time.Now()
	completed := &model.Task{Title: "b", CampaignID: 1, AssigneeID: intPtr(1), Priority: "low", DueDate: &due}
	_ = tasks.Create(completed)
	_ = tasks.UpdateStatus(completed.ID, "done", &doneAt)

	// Bob: three urgent open tasks against half capacity.
	for i := 0; i < 3; i++ {
		_ = tasks.Create(&model.Task{Title: "c", CampaignID: 1, AssigneeID: intPtr(2), Priority: "urgent"})
	}

	board, err := svc.TeamWorkload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(board))
	}

	alice := board[0]
	if alice.OpenTasks != 1 {
		t.Errorf("expected 1 open task for Alice, got %d", alice.OpenTasks)
	}
	// One high task: 3 * 10 load points against full capacity.
	if alice.Load != 30 || alice.WorkloadScore != 30 {
		t.Errorf("unexpected Alice scores: load=%v workload=%v", alice.Load, alice.WorkloadScore)
	}
	// 1 of 2 completed, all on time: 0.6*50 + 0.4*100.
	if alice.EfficiencyScore != 70 {
		t.Errorf("expected Alice efficiency 70, got %v", alice.EfficiencyScore)
	}

	bob := board[1]
	// Three urgent tasks: 120 load against half capacity, clamped to 100.
	if bob.WorkloadScore != 100 {
		t.Errorf("expected Bob workload clamped to 100, got %v", bob.WorkloadScore)
	}
}

func TestSuggestAssigneePicksLowestWorkload(t *testing.T) {
	tasks := newMockTaskRepo()
	members := newMockMemberRepo(
		model.TeamMember{ID: 1, Name: "Alice", CapacityPct: 100},
		model.TeamMember{ID: 2, Name: "Bob", CapacityPct: 100},
	)
	svc := &service.TaskService{TaskRepo: tasks, MemberRepo: members}

	_ = tasks.Create(&model.Task{Title: "a", CampaignID: 1, AssigneeID: intPtr(1), Priority: "urgent"})
	_ = tasks.Create(&model.Task{Title: "b", CampaignID: 1, AssigneeID: intPtr(2), Priority: "low"})

	suggestion, err := svc.SuggestAssignee()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suggestion == nil || suggestion.Member.Name != "Bob" {
		t.Fatalf("expected Bob, got %+v", suggestion)
	}
}

func TestSuggestAssigneeAllAtCapacity(t *testing.T) {
	tasks := newMockTaskRepo()
	members := newMockMemberRepo(model.TeamMember{ID: 1, Name: "Alice", CapacityPct: 10})
	svc := &service.TaskService{TaskRepo: tasks, MemberRepo: members}

	for i := 0; i < 5; i++ {
		_ = tasks.Create(&model.Task{Title: "x", CampaignID: 1, AssigneeID: intPtr(1), Priority: "urgent"})
	}

	suggestion, err := svc.SuggestAssignee()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suggestion != nil {
		t.Errorf("expected nil suggestion when everyone is at capacity, got %+v", suggestion)
	}
}
