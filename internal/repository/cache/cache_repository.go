package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/inspection-planner/internal/domain"
	"github.com/inspection-planner/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) GetPlan(ctx context.Context, id uuid.UUID) (*domain.MultiDayPlan, error) {
	return r.getPlan(ctx, planKey(id))
}

func (r *cacheRepository) SetPlan(ctx context.Context, plan *domain.MultiDayPlan, ttl time.Duration) error {
	return r.setPlan(ctx, planKey(plan.ID), plan, ttl)
}

func (r *cacheRepository) GetPlanByRequestHash(ctx context.Context, hash string) (*domain.MultiDayPlan, error) {
	return r.getPlan(ctx, requestKey(hash))
}

func (r *cacheRepository) SetPlanByRequestHash(ctx context.Context, hash string, plan *domain.MultiDayPlan, ttl time.Duration) error {
	return r.setPlan(ctx, requestKey(hash), plan, ttl)
}

func (r *cacheRepository) getPlan(ctx context.Context, key string) (*domain.MultiDayPlan, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var plan domain.MultiDayPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		r.logger.Error("Failed to unmarshal plan from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &plan, nil
}

func (r *cacheRepository) setPlan(ctx context.Context, key string, plan *domain.MultiDayPlan, ttl time.Duration) error {
	data, err := json.Marshal(plan)
	if err != nil {
		r.logger.Error("Failed to marshal plan", zap.Error(err))
		return fmt.Errorf("marshal plan: %w", err)
	}
	return r.Set(ctx, key, data, ttl)
}

func planKey(id uuid.UUID) string {
	return fmt.Sprintf("plan:%s", id)
}

func requestKey(hash string) string {
	return fmt.Sprintf("plan:request:%s", hash)
}
