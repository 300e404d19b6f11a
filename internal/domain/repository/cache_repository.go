package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/inspection-planner/internal/domain"
)

// CacheRepository stores computed plans for their TTL. Plans are cached
// twice: under the plan ID for direct lookup, and under a deterministic
// request hash so identical requests are served without re-planning.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	GetPlan(ctx context.Context, id uuid.UUID) (*domain.MultiDayPlan, error)
	SetPlan(ctx context.Context, plan *domain.MultiDayPlan, ttl time.Duration) error
	GetPlanByRequestHash(ctx context.Context, hash string) (*domain.MultiDayPlan, error)
	SetPlanByRequestHash(ctx context.Context, hash string, plan *domain.MultiDayPlan, ttl time.Duration) error
}
