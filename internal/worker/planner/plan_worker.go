package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/inspection-planner/internal/domain"
	"github.com/inspection-planner/internal/domain/repository"
	"github.com/inspection-planner/internal/usecase/dto"
	"github.com/inspection-planner/internal/worker"
)

// PlanBuilder is the slice of the plan use case the worker needs.
type PlanBuilder interface {
	BuildPlan(ctx context.Context, req dto.PlanRequest) (*dto.PlanResponse, error)
}

// PlanWorker consumes asynchronous planning requests from the request
// stream, plans them, and publishes the results on the done stream.
type PlanWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	planUC       PlanBuilder
	consumerName string
	maxRetries   int
}

func NewPlanWorker(
	streamRepo repository.StreamRepository,
	planUC PlanBuilder,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *PlanWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &PlanWorker{
		BaseWorker:   worker.NewBaseWorker("route-planner", consumerGroup, logger),
		streamRepo:   streamRepo,
		planUC:       planUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

func (w *PlanWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting PlanWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPlanRequest, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamPlanRequest, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *PlanWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.PlanRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse plan request, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Ack the poison message so it does not stall the group.
		w.ack(ctx, msg.ID)
		return
	}

	logger.Info("Processing plan request",
		zap.String("request_id", event.RequestID.String()),
		zap.Strings("provinces", event.Provinces),
		zap.Int("days", event.Days))

	req := dto.PlanRequest{
		Provinces: event.Provinces,
		District:  event.District,
		SiteLimit: event.SiteLimit,
		Days:      event.Days,
	}
	if event.Start != nil {
		req.Home = &dto.Point{Lat: event.Start.Lat, Lon: event.Start.Lon}
	}

	done := &domain.PlanDoneEvent{RequestID: event.RequestID}
	resp, err := w.planUC.BuildPlan(ctx, req)
	if err != nil {
		logger.Error("Planning failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		done.Error = err.Error()
	} else {
		done.Plan = resp.Plan
	}

	w.publishWithRetry(ctx, done)
	w.ack(ctx, msg.ID)
}

// publishWithRetry retries the done event a bounded number of times; a
// lost result is still recoverable through the plan cache.
func (w *PlanWorker) publishWithRetry(ctx context.Context, event *domain.PlanDoneEvent) {
	logger := w.Logger()

	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err := w.streamRepo.PublishPlanDone(ctx, event); err != nil {
			logger.Warn("Failed to publish plan done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}
		return
	}

	logger.Error("Giving up publishing plan done event",
		zap.String("request_id", event.RequestID.String()),
		zap.Int("attempts", w.maxRetries))
}

func (w *PlanWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamPlanRequest, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Warn("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
