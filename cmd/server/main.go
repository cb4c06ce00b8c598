// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/launchdeck/campaignhub-backend/internal/config"
	"github.com/launchdeck/campaignhub-backend/internal/controller"
	"github.com/launchdeck/campaignhub-backend/internal/db"
	"github.com/launchdeck/campaignhub-backend/internal/handler"
	"github.com/launchdeck/campaignhub-backend/internal/queue"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
	"github.com/launchdeck/campaignhub-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	// Init DB
	db.Init(cfg)
	q := queue.NewInMemoryQueue()
	queue.StartApprovalSubscriber(q, queue.MockNotifier)

	campaignRepo := &repository.CampaignRepository{DB: db.DB}
	stageRepo := &repository.JourneyStageRepository{DB: db.DB}
	contentRepo := &repository.ContentRepository{DB: db.DB}
	taskRepo := &repository.TaskRepository{DB: db.DB}
	memberRepo := &repository.TeamMemberRepository{DB: db.DB}
	approvalRepo := &repository.ApprovalRepository{DB: db.DB}
	timelineRepo := &repository.TimelineRepository{DB: db.DB}
	presentationRepo := &repository.PresentationRepository{DB: db.DB}
	cloneDraftRepo := &repository.CloneDraftRepository{DB: db.DB}
	abtestDraftRepo := &repository.ABTestDraftRepository{DB: db.DB}

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		StageRepo:    stageRepo,
		TimelineRepo: timelineRepo,
	}
	contentService := &service.ContentService{
		ContentRepo:  contentRepo,
		StageRepo:    stageRepo,
		ApprovalRepo: approvalRepo,
		TimelineRepo: timelineRepo,
	}
	taskService := &service.TaskService{
		TaskRepo:   taskRepo,
		MemberRepo: memberRepo,
	}
	approvalService := &service.ApprovalService{
		ApprovalRepo: approvalRepo,
		ContentRepo:  contentRepo,
		MemberRepo:   memberRepo,
		TimelineRepo: timelineRepo,
		Queue:        q,
	}
	journeyService := &service.JourneyService{
		CampaignRepo: campaignRepo,
		StageRepo:    stageRepo,
	}
	cloneService := &service.CloneService{
		DraftRepo:    cloneDraftRepo,
		CampaignRepo: campaignRepo,
		ContentRepo:  contentRepo,
		StageRepo:    stageRepo,
	}
	abtestService := &service.ABTestService{
		DraftRepo:    abtestDraftRepo,
		CampaignRepo: campaignRepo,
	}
	presentationService := &service.PresentationService{
		PresentationRepo: presentationRepo,
		CampaignRepo:     campaignRepo,
		StageRepo:        stageRepo,
		TaskRepo:         taskRepo,
	}

	campaignController := &controller.CampaignController{CampaignService: campaignService}
	contentController := &controller.ContentController{ContentService: contentService}
	taskController := &controller.TaskController{TaskService: taskService}
	approvalController := &controller.ApprovalController{ApprovalService: approvalService}
	journeyController := &controller.JourneyController{JourneyService: journeyService}
	cloneController := &controller.CloneController{CloneService: cloneService}
	abtestController := &controller.ABTestController{ABTestService: abtestService}
	presentationController := &controller.PresentationController{
		PresentationService: presentationService,
		PresentationRepo:    presentationRepo,
		AMQPURL:             cfg.AMQPURL,
	}

	dashboardHandler := &handler.DashboardHandler{
		CampaignService: campaignService,
		TimelineRepo:    timelineRepo,
	}

	r := chi.NewRouter()

	// Dashboard
	r.Get("/dashboard/summary", dashboardHandler.GetDashboardSummary)

	// Campaign routes
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Get("/campaigns/compare", campaignController.CompareCampaigns)
	r.Get("/campaigns/{id}", dashboardHandler.GetCampaignWithInsights)
	r.Post("/campaigns/{id}/status", campaignController.ChangeStatus)
	r.Get("/campaigns/{id}/timeline", dashboardHandler.GetCampaignTimeline)

	// Journey
	r.Get("/campaigns/{id}/journey", journeyController.GetJourney)
	r.Post("/campaigns/{id}/journey/{stageID}/advance", journeyController.AdvanceStage)

	// Content
	r.Get("/content", contentController.ListContent)
	r.Post("/content", contentController.CreateContent)
	r.Post("/content/{id}/status", contentController.ChangeStatus)

	// Tasks & workload
	r.Get("/tasks", taskController.ListTasks)
	r.Post("/tasks", taskController.CreateTask)
	r.Post("/tasks/{id}/assign", taskController.AssignTask)
	r.Post("/tasks/{id}/status", taskController.ChangeStatus)
	r.Get("/team/workload", taskController.TeamWorkload)
	r.Get("/team/suggest-assignee", taskController.SuggestAssignee)

	// Approvals
	r.Get("/approvals/pending", approvalController.ListPending)
	r.Post("/approvals/{id}/decide", approvalController.Decide)

	// Cloning wizard
	r.Post("/campaigns/{id}/clone-drafts", cloneController.Start)
	r.Patch("/clone-drafts/{draftID}", cloneController.Update)
	r.Post("/clone-drafts/{draftID}/step", cloneController.Step)
	r.Post("/clone-drafts/{draftID}/complete", cloneController.Complete)

	// A/B test setup wizard
	r.Post("/campaigns/{id}/abtest-drafts", abtestController.Start)
	r.Patch("/abtest-drafts/{draftID}", abtestController.Update)
	r.Post("/abtest-drafts/{draftID}/step", abtestController.Step)
	r.Post("/abtest-drafts/{draftID}/complete", abtestController.Complete)

	// Presentations
	r.Post("/campaigns/{id}/presentations", presentationController.Generate)
	r.Get("/campaigns/{id}/presentations", presentationController.ListByCampaign)
	r.Get("/presentations/{presentationID}", presentationController.Get)

	log.Println("🚀 Server running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
