package repository

import (
	"context"

	"github.com/inspection-planner/internal/domain"
)

// StreamRepository reads and writes planning events on redis streams.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group for a stream,
	// ignoring the case where the group already exists.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream delivers messages for the consumer group on a channel
	// until ctx is cancelled.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishPlanDone publishes a completed (or failed) planning result.
	PublishPlanDone(ctx context.Context, event *domain.PlanDoneEvent) error
}
