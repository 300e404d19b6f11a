package planner_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inspection-planner/internal/domain"
	apperrors "github.com/inspection-planner/internal/pkg/errors"
	"github.com/inspection-planner/internal/usecase/dto"
	"github.com/inspection-planner/internal/worker/planner"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishPlanDone(ctx context.Context, event *domain.PlanDoneEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockPlanBuilder is a mock of the planning use case slice the worker
// consumes.
type MockPlanBuilder struct {
	mock.Mock
}

func (m *MockPlanBuilder) BuildPlan(ctx context.Context, req dto.PlanRequest) (*dto.PlanResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlanResponse), args.Error(1)
}

type workerHarness struct {
	streamRepo *MockStreamRepository
	builder    *MockPlanBuilder
	worker     *planner.PlanWorker
	messages   chan domain.StreamMessage
	published  chan *domain.PlanDoneEvent
	acked      chan string
	cancel     context.CancelFunc
}

func startWorker(t *testing.T) *workerHarness {
	t.Helper()

	h := &workerHarness{
		streamRepo: &MockStreamRepository{},
		builder:    &MockPlanBuilder{},
		messages:   make(chan domain.StreamMessage, 10),
		published:  make(chan *domain.PlanDoneEvent, 10),
		acked:      make(chan string, 10),
	}

	h.streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamPlanRequest, "test-group").Return(nil)
	h.streamRepo.On("ConsumeStream", mock.Anything, domain.StreamPlanRequest, "test-group", mock.AnythingOfType("string")).
		Return((<-chan domain.StreamMessage)(h.messages), nil)
	h.streamRepo.On("PublishPlanDone", mock.Anything, mock.AnythingOfType("*domain.PlanDoneEvent")).
		Run(func(args mock.Arguments) {
			h.published <- args.Get(1).(*domain.PlanDoneEvent)
		}).Return(nil)
	h.streamRepo.On("AckMessage", mock.Anything, domain.StreamPlanRequest, "test-group", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			h.acked <- args.String(3)
		}).Return(nil)

	h.worker = planner.NewPlanWorker(h.streamRepo, h.builder, "test-group", 3, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { _ = h.worker.Start(ctx) }()

	t.Cleanup(func() {
		_ = h.worker.Stop()
		cancel()
	})
	return h
}

func waitPublished(t *testing.T, h *workerHarness) *domain.PlanDoneEvent {
	t.Helper()
	select {
	case event := <-h.published:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for plan done event")
		return nil
	}
}

func waitAcked(t *testing.T, h *workerHarness) string {
	t.Helper()
	select {
	case id := <-h.acked:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ack")
		return ""
	}
}

func TestPlanWorker_HandlesRequest(t *testing.T) {
	h := startWorker(t)

	plan := &domain.MultiDayPlan{ID: uuid.New(), Algorithm: "brute_force", ScheduledSites: 3}
	h.builder.On("BuildPlan", mock.Anything, mock.AnythingOfType("dto.PlanRequest")).
		Return(&dto.PlanResponse{Plan: plan}, nil)

	event := domain.PlanRequestEvent{
		RequestID: uuid.New(),
		Provinces: []string{"Nakhon Ratchasima"},
		Days:      2,
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	h.messages <- domain.StreamMessage{ID: "1-0", Data: string(raw)}

	done := waitPublished(t, h)
	assert.Equal(t, event.RequestID, done.RequestID)
	require.NotNil(t, done.Plan)
	assert.Equal(t, plan.ID, done.Plan.ID)
	assert.Empty(t, done.Error)

	assert.Equal(t, "1-0", waitAcked(t, h))
}

func TestPlanWorker_PublishesFailure(t *testing.T) {
	h := startWorker(t)

	h.builder.On("BuildPlan", mock.Anything, mock.AnythingOfType("dto.PlanRequest")).
		Return(nil, apperrors.ErrEmptySiteSet)

	event := domain.PlanRequestEvent{RequestID: uuid.New(), Provinces: []string{"Loei"}}
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	h.messages <- domain.StreamMessage{ID: "2-0", Data: string(raw)}

	done := waitPublished(t, h)
	assert.Equal(t, event.RequestID, done.RequestID)
	assert.Nil(t, done.Plan)
	assert.Contains(t, done.Error, "EMPTY_SITE_SET")

	assert.Equal(t, "2-0", waitAcked(t, h))
}

func TestPlanWorker_AcksPoisonMessage(t *testing.T) {
	h := startWorker(t)

	h.messages <- domain.StreamMessage{ID: "3-0", Data: "not json"}

	assert.Equal(t, "3-0", waitAcked(t, h))
	h.builder.AssertNotCalled(t, "BuildPlan")

	select {
	case <-h.published:
		t.Fatal("poison message must not publish a result")
	case <-time.After(100 * time.Millisecond):
	}
}
