package service_test

import (
	"sort"
	"strings"
	"sync"
	"time"

	appErrors "github.com/launchdeck/campaignhub-backend/internal/errors"
	"github.com/launchdeck/campaignhub-backend/internal/model"
	"github.com/launchdeck/campaignhub-backend/internal/repository"
)

// --- In-memory mock repositories ---

type MockCampaignRepo struct {
	campaigns map[int]*model.Campaign
	nextID    int
}

func newMockCampaignRepo() *MockCampaignRepo {
	return &MockCampaignRepo{campaigns: map[int]*model.Campaign{}, nextID: 1}
}

func (m *MockCampaignRepo) Create(c *model.Campaign) error {
	c.ID = m.nextID
	m.nextID++
	if c.Status == "" {
		c.Status = "draft"
	}
	c.CreatedAt = time.Now()
	cp := *c
	m.campaigns[c.ID] = &cp
	return nil
}

func (m *MockCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	cp := *c
	return &cp, nil
}

func (m *MockCampaignRepo) Update(c *model.Campaign) error {
	cp := *c
	m.campaigns[c.ID] = &cp
	return nil
}

func (m *MockCampaignRepo) UpdateStatus(campaignID int, status string) error {
	c, ok := m.campaigns[campaignID]
	if !ok {
		return appErrors.NewCampaignNotFound(campaignID)
	}
	c.Status = status
	return nil
}

func (m *MockCampaignRepo) ListCampaigns(offset, limit int, status, channel string) ([]*model.Campaign, int, error) {
	ids := []int{}
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))

	filtered := []*model.Campaign{}
	for _, id := range ids {
		c := m.campaigns[id]
		if status != "" && c.Status != status {
			continue
		}
		if channel != "" && !hasChannel(c.Channels, channel) {
			continue
		}
		filtered = append(filtered, c)
	}
	total := len(filtered)

	start := offset
	end := offset + limit
	if start > total {
		return []*model.Campaign{}, total, nil
	}
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}

func hasChannel(channels []string, channel string) bool {
	for _, ch := range channels {
		if strings.EqualFold(ch, channel) {
			return true
		}
	}
	return false
}

var _ repository.CampaignRepositoryInterface = (*MockCampaignRepo)(nil)

type MockStageRepo struct {
	stages []model.JourneyStage
	nextID int
}

func newMockStageRepo() *MockStageRepo {
	return &MockStageRepo{nextID: 1}
}

func (m *MockStageRepo) ListByCampaign(campaignID int) ([]model.JourneyStage, error) {
	out := []model.JourneyStage{}
	for _, s := range m.stages {
		if s.CampaignID == campaignID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *MockStageRepo) Create(s *model.JourneyStage) error {
	s.ID = m.nextID
	m.nextID++
	if s.Status == "" {
		s.Status = "pending"
	}
	m.stages = append(m.stages, *s)
	return nil
}

func (m *MockStageRepo) UpdateStatus(stageID int, status string) error {
	for i := range m.stages {
		if m.stages[i].ID == stageID {
			m.stages[i].Status = status
		}
	}
	return nil
}

func (m *MockStageRepo) RefreshContentCounts(campaignID int) error { return nil }

var _ repository.JourneyStageRepositoryInterface = (*MockStageRepo)(nil)

type MockContentRepo struct {
	items  map[int]*model.ContentItem
	nextID int
}

func newMockContentRepo() *MockContentRepo {
	return &MockContentRepo{items: map[int]*model.ContentItem{}, nextID: 1}
}

func (m *MockContentRepo) Create(item *model.ContentItem) error {
	item.ID = m.nextID
	m.nextID++
	if item.Status == "" {
		item.Status = "draft"
	}
	item.CreatedAt = time.Now()
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *MockContentRepo) GetByID(id int) (*model.ContentItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, appErrors.NewContentNotFound(id)
	}
	cp := *item
	return &cp, nil
}

func (m *MockContentRepo) UpdateStatus(id int, status string) error {
	item, ok := m.items[id]
	if !ok {
		return appErrors.NewContentNotFound(id)
	}
	item.Status = status
	return nil
}

func (m *MockContentRepo) List(filter repository.ContentFilter, offset, limit int) ([]*model.ContentItem, int, error) {
	ids := []int{}
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))

	filtered := []*model.ContentItem{}
	for _, id := range ids {
		item := m.items[id]
		if filter.CampaignID != 0 && item.CampaignID != filter.CampaignID {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.Channel != "" && item.Channel != filter.Channel {
			continue
		}
		if filter.ContentType != "" && item.ContentType != filter.ContentType {
			continue
		}
		if filter.StageID != 0 && (item.JourneyStageID == nil || *item.JourneyStageID != filter.StageID) {
			continue
		}
		filtered = append(filtered, item)
	}
	total := len(filtered)

	start := offset
	end := offset + limit
	if start > total {
		return []*model.ContentItem{}, total, nil
	}
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}

var _ repository.ContentRepositoryInterface = (*MockContentRepo)(nil)

type MockTaskRepo struct {
	tasks  map[int]*model.Task
	nextID int
}

func newMockTaskRepo() *MockTaskRepo {
	return &MockTaskRepo{tasks: map[int]*model.Task{}, nextID: 1}
}

func (m *MockTaskRepo) Create(t *model.Task) error {
	t.ID = m.nextID
	m.nextID++
	if t.Status == "" {
		t.Status = "todo"
	}
	if t.Priority == "" {
		t.Priority = "medium"
	}
	t.CreatedAt = time.Now()
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *MockTaskRepo) GetByID(id int) (*model.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, appErrors.NewTaskNotFound(id)
	}
	cp := *t
	return &cp, nil
}

func (m *MockTaskRepo) Assign(taskID, memberID int) error {
	t, ok := m.tasks[taskID]
	if !ok {
		return appErrors.NewTaskNotFound(taskID)
	}
	t.AssigneeID = &memberID
	return nil
}

func (m *MockTaskRepo) UpdateStatus(taskID int, status string, completedAt *time.Time) error {
	t, ok := m.tasks[taskID]
	if !ok {
		return appErrors.NewTaskNotFound(taskID)
	}
	t.Status = status
	t.CompletedAt = completedAt
	return nil
}

func (m *MockTaskRepo) List(campaignID int, status string) ([]*model.Task, error) {
	out := []*model.Task{}
	for _, t := range m.tasks {
		if campaignID != 0 && t.CampaignID != campaignID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MockTaskRepo) ListByAssignee(memberID int) ([]*model.Task, error) {
	out := []*model.Task{}
	for _, t := range m.tasks {
		if t.AssigneeID != nil && *t.AssigneeID == memberID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

var _ repository.TaskRepositoryInterface = (*MockTaskRepo)(nil)

type MockMemberRepo struct {
	members map[int]model.TeamMember
}

func newMockMemberRepo(members ...model.TeamMember) *MockMemberRepo {
	m := &MockMemberRepo{members: map[int]model.TeamMember{}}
	for _, member := range members {
		m.members[member.ID] = member
	}
	return m
}

func (m *MockMemberRepo) GetByID(id int) (*model.TeamMember, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, nil // not found
	}
	return &member, nil
}

func (m *MockMemberRepo) ListAll() ([]model.TeamMember, error) {
	ids := []int{}
	for id := range m.members {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := []model.TeamMember{}
	for _, id := range ids {
		out = append(out, m.members[id])
	}
	return out, nil
}

var _ repository.TeamMemberRepositoryInterface = (*MockMemberRepo)(nil)

type MockApprovalRepo struct {
	approvals map[int]*model.Approval
	nextID    int
}

func newMockApprovalRepo() *MockApprovalRepo {
	return &MockApprovalRepo{approvals: map[int]*model.Approval{}, nextID: 1}
}

func (m *MockApprovalRepo) Create(contentItemID int) (*model.Approval, error) {
	if existing, _ := m.GetPendingByContent(contentItemID); existing != nil {
		return existing, nil
	}
	a := &model.Approval{
		ID:            m.nextID,
		ContentItemID: contentItemID,
		Status:        "pending",
		CreatedAt:     time.Now(),
	}
	m.nextID++
	m.approvals[a.ID] = a
	cp := *a
	return &cp, nil
}

func (m *MockApprovalRepo) GetByID(id int) (*model.Approval, error) {
	a, ok := m.approvals[id]
	if !ok {
		return nil, appErrors.NewApprovalNotFound(id)
	}
	cp := *a
	return &cp, nil
}

func (m *MockApprovalRepo) GetPendingByContent(contentItemID int) (*model.Approval, error) {
	for _, a := range m.approvals {
		if a.ContentItemID == contentItemID && a.Status == "pending" {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MockApprovalRepo) Decide(id int, status string, reviewerID int, comment string) error {
	a, ok := m.approvals[id]
	if !ok {
		return appErrors.NewApprovalNotFound(id)
	}
	now := time.Now()
	a.Status = status
	a.ReviewerID = &reviewerID
	a.Comment = comment
	a.DecidedAt = &now
	return nil
}

func (m *MockApprovalRepo) ListByStatus(status string) ([]*model.Approval, error) {
	out := []*model.Approval{}
	for _, a := range m.approvals {
		if a.Status == status {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

var _ repository.ApprovalRepositoryInterface = (*MockApprovalRepo)(nil)

type MockTimelineRepo struct {
	events []model.TimelineEvent
}

func (m *MockTimelineRepo) Append(e *model.TimelineEvent) error {
	e.ID = len(m.events) + 1
	e.CreatedAt = time.Now()
	m.events = append(m.events, *e)
	return nil
}

func (m *MockTimelineRepo) ListByCampaign(campaignID, limit int) ([]model.TimelineEvent, error) {
	out := []model.TimelineEvent{}
	for i := len(m.events) - 1; i >= 0; i-- {
		if m.events[i].CampaignID == campaignID {
			out = append(out, m.events[i])
		}
	}
	return out, nil
}

var _ repository.TimelineRepositoryInterface = (*MockTimelineRepo)(nil)

type MockCloneDraftRepo struct {
	drafts map[int]*model.CloneDraft
	nextID int
}

func newMockCloneDraftRepo() *MockCloneDraftRepo {
	return &MockCloneDraftRepo{drafts: map[int]*model.CloneDraft{}, nextID: 1}
}

func (m *MockCloneDraftRepo) Create(d *model.CloneDraft) error {
	d.ID = m.nextID
	m.nextID++
	if d.Status == "" {
		d.Status = "in_progress"
	}
	d.CreatedAt = time.Now()
	cp := *d
	m.drafts[d.ID] = &cp
	return nil
}

func (m *MockCloneDraftRepo) GetByID(id int) (*model.CloneDraft, error) {
	d, ok := m.drafts[id]
	if !ok {
		return nil, appErrors.NewDraftNotFound(id)
	}
	cp := *d
	return &cp, nil
}

func (m *MockCloneDraftRepo) Update(d *model.CloneDraft) error {
	cp := *d
	m.drafts[d.ID] = &cp
	return nil
}

var _ repository.CloneDraftRepositoryInterface = (*MockCloneDraftRepo)(nil)

type MockABTestDraftRepo struct {
	drafts map[int]*model.ABTestDraft
	nextID int
}

func newMockABTestDraftRepo() *MockABTestDraftRepo {
	return &MockABTestDraftRepo{drafts: map[int]*model.ABTestDraft{}, nextID: 1}
}

func (m *MockABTestDraftRepo) Create(d *model.ABTestDraft) error {
	d.ID = m.nextID
	m.nextID++
	if d.Status == "" {
		d.Status = "in_progress"
	}
	d.CreatedAt = time.Now()
	cp := *d
	m.drafts[d.ID] = &cp
	return nil
}

func (m *MockABTestDraftRepo) GetByID(id int) (*model.ABTestDraft, error) {
	d, ok := m.drafts[id]
	if !ok {
		return nil, appErrors.NewDraftNotFound(id)
	}
	cp := *d
	return &cp, nil
}

func (m *MockABTestDraftRepo) Update(d *model.ABTestDraft) error {
	cp := *d
	m.drafts[d.ID] = &cp
	return nil
}

var _ repository.ABTestDraftRepositoryInterface = (*MockABTestDraftRepo)(nil)

type MockPresentationRepo struct {
	decks map[string]*model.Presentation
}

func newMockPresentationRepo() *MockPresentationRepo {
	return &MockPresentationRepo{decks: map[string]*model.Presentation{}}
}

func (m *MockPresentationRepo) Create(p *model.Presentation) error {
	if p.Status == "" {
		p.Status = "generated"
	}
	p.GeneratedAt = time.Now()
	cp := *p
	m.decks[p.ID] = &cp
	return nil
}

func (m *MockPresentationRepo) GetByID(id string) (*model.Presentation, error) {
	p, ok := m.decks[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *MockPresentationRepo) ListByCampaign(campaignID int) ([]*model.Presentation, error) {
	out := []*model.Presentation{}
	for _, p := range m.decks {
		if p.CampaignID == campaignID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockPresentationRepo) UpdateStatus(id, status, lastError string) error {
	p, ok := m.decks[id]
	if !ok {
		return nil
	}
	p.Status = status
	p.LastError = lastError
	return nil
}

func (m *MockPresentationRepo) MarkExported(id string) error {
	p, ok := m.decks[id]
	if !ok {
		return nil
	}
	now := time.Now()
	p.Status = "exported"
	p.LastError = ""
	p.ExportedAt = &now
	return nil
}

var _ repository.PresentationRepositoryInterface = (*MockPresentationRepo)(nil)

// FakeQueue records published payloads instead of delivering them.
type FakeQueue struct {
	mu        sync.Mutex
	published map[string][]any
}

func newFakeQueue() *FakeQueue {
	return &FakeQueue{published: map[string][]any{}}
}

func (q *FakeQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.published[topic] = append(q.published[topic], payload)
	return nil
}

func (q *FakeQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}
