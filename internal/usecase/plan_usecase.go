package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inspection-planner/internal/domain"
	"github.com/inspection-planner/internal/domain/repository"
	apperrors "github.com/inspection-planner/internal/pkg/errors"
	"github.com/inspection-planner/internal/routing"
	"github.com/inspection-planner/internal/usecase/dto"
)

const (
	defaultSiteLimit    = 50
	defaultNearRadiusKm = 100
)

// PlanUseCase builds, caches and evaluates multi-day inspection plans.
// The routing engine itself is pure; this layer owns site retrieval,
// caching and error translation.
type PlanUseCase struct {
	siteRepo   repository.SiteRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	home       domain.Point
	params     routing.Params
	thresholds routing.Thresholds
	cacheTTL   time.Duration
}

func NewPlanUseCase(
	siteRepo repository.SiteRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	home domain.Point,
	params routing.Params,
	thresholds routing.Thresholds,
	cacheTTL time.Duration,
) *PlanUseCase {
	return &PlanUseCase{
		siteRepo:   siteRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		home:       home,
		params:     params,
		thresholds: thresholds,
		cacheTTL:   cacheTTL,
	}
}

// BuildPlan plans a field trip for the request and caches the result,
// both by plan ID and by request hash so identical requests are served
// without re-planning.
func (uc *PlanUseCase) BuildPlan(ctx context.Context, req dto.PlanRequest) (*dto.PlanResponse, error) {
	hash := requestHash(req)

	if cached, err := uc.cacheRepo.GetPlanByRequestHash(ctx, hash); err != nil {
		uc.logger.Warn("Plan cache read failed", zap.Error(err))
	} else if cached != nil {
		uc.logger.Debug("Plan cache hit", zap.String("hash", hash))
		return &dto.PlanResponse{Plan: cached, Cached: true}, nil
	}

	plan, err := uc.plan(ctx, req)
	if err != nil {
		return nil, err
	}

	plan.ID = uuid.New()
	plan.CreatedAt = time.Now().UTC()

	if err := uc.cacheRepo.SetPlan(ctx, plan, uc.cacheTTL); err != nil {
		uc.logger.Warn("Plan cache write failed", zap.Error(err))
	}
	if err := uc.cacheRepo.SetPlanByRequestHash(ctx, hash, plan, uc.cacheTTL); err != nil {
		uc.logger.Warn("Plan cache write failed", zap.Error(err))
	}

	uc.logger.Info("Plan built",
		zap.String("plan_id", plan.ID.String()),
		zap.String("algorithm", plan.Algorithm),
		zap.Int("scheduled_sites", plan.ScheduledSites),
		zap.Int("days", len(plan.Days)),
		zap.Float64("total_km", plan.TotalDistanceKm),
		zap.Float64("score", plan.Score.Score))

	return &dto.PlanResponse{Plan: plan}, nil
}

// PreviewPlan plans without persisting or caching anything.
func (uc *PlanUseCase) PreviewPlan(ctx context.Context, req dto.PlanRequest) (*dto.PlanResponse, error) {
	plan, err := uc.plan(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.PlanResponse{Plan: plan}, nil
}

// GetPlan returns a previously built plan while it is still cached.
func (uc *PlanUseCase) GetPlan(ctx context.Context, id uuid.UUID) (*dto.PlanResponse, error) {
	plan, err := uc.cacheRepo.GetPlan(ctx, id)
	if err != nil {
		uc.logger.Error("Plan cache read failed", zap.Error(err))
		return nil, apperrors.ErrCacheError
	}
	if plan == nil {
		return nil, apperrors.ErrPlanNotFound
	}
	return &dto.PlanResponse{Plan: plan, Cached: true}, nil
}

// EvaluateRoute scores a caller-ordered route against the baseline for
// the same site set. The order is taken as submitted.
func (uc *PlanUseCase) EvaluateRoute(ctx context.Context, req dto.EvaluateRouteRequest) (*dto.EvaluateRouteResponse, error) {
	home := uc.home
	if req.Home != nil {
		home = domain.Point{Lat: req.Home.Lat, Lon: req.Home.Lon}
	}

	m, err := routing.NewMatrix(home, req.ToDomainSites())
	if err != nil {
		return nil, mapRoutingError(err)
	}

	order := make([]int, m.Len())
	for i := range order {
		order[i] = i
	}

	score, err := routing.ScoreRoute(m, order)
	if err != nil {
		return nil, mapRoutingError(err)
	}

	return &dto.EvaluateRouteResponse{
		Score:      score,
		DistanceKm: score.ActualKm,
		SiteCount:  m.Len(),
	}, nil
}

// ListNearSites returns the eligible sites within RadiusKm of the given
// point, nearest first, each with its straight-line distance.
func (uc *PlanUseCase) ListNearSites(ctx context.Context, req dto.NearSitesRequest) (*dto.NearSitesResponse, error) {
	origin := domain.Point{Lat: req.Lat, Lon: req.Lon}
	if err := routing.ValidatePoint(origin); err != nil {
		return nil, apperrors.ErrInvalidCoordinate
	}
	if req.RadiusKm == 0 {
		req.RadiusKm = defaultNearRadiusKm
	}
	if req.Limit == 0 {
		req.Limit = defaultSiteLimit
	}

	sites, err := uc.siteRepo.ListNearLocation(ctx, req.Lat, req.Lon, req.RadiusKm, req.Limit)
	if err != nil {
		uc.logger.Error("Failed to list nearby sites", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	result := make([]dto.NearSite, 0, len(sites))
	for _, s := range sites {
		result = append(result, dto.NearSite{
			Site:       s,
			DistanceKm: routing.Haversine(origin, s.Location()),
		})
	}
	return &dto.NearSitesResponse{Sites: result}, nil
}

func (uc *PlanUseCase) plan(ctx context.Context, req dto.PlanRequest) (*domain.MultiDayPlan, error) {
	if req.District != "" && len(req.Provinces) != 1 {
		return nil, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "district filter requires exactly one province",
		})
	}
	if req.SiteLimit == 0 {
		req.SiteLimit = defaultSiteLimit
	}

	var (
		sites []domain.Site
		err   error
	)
	if req.District != "" {
		sites, err = uc.siteRepo.ListByDistrict(ctx, req.Provinces[0], req.District, req.SiteLimit)
	} else {
		sites, err = uc.siteRepo.ListByProvinces(ctx, req.Provinces, req.SiteLimit)
	}
	if err != nil {
		uc.logger.Error("Failed to list eligible sites", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	if len(sites) == 0 {
		return nil, apperrors.ErrEmptySiteSet
	}

	home := uc.home
	if req.Home != nil {
		home = domain.Point{Lat: req.Home.Lat, Lon: req.Home.Lon}
	}
	params := uc.params
	if req.Days > 0 {
		params.MaxDays = req.Days
	}

	plan, err := routing.Plan(home, sites, params, uc.thresholds)
	if err != nil {
		uc.logger.Error("Planning failed", zap.Error(err))
		return nil, mapRoutingError(err)
	}
	if len(plan.Days) == 0 && len(plan.Infeasible) > 0 {
		ids := make([]int64, len(plan.Infeasible))
		for i, s := range plan.Infeasible {
			ids[i] = s.ID
		}
		return nil, apperrors.ErrInfeasibleSite.WithDetails(map[string]interface{}{
			"site_ids": ids,
		})
	}
	return plan, nil
}

// mapRoutingError translates routing sentinels into transport errors.
func mapRoutingError(err error) error {
	switch {
	case errors.Is(err, routing.ErrInvalidCoordinate):
		return apperrors.ErrInvalidCoordinate
	case errors.Is(err, routing.ErrEmptySiteSet):
		return apperrors.ErrEmptySiteSet
	case errors.Is(err, routing.ErrDuplicateSite):
		return apperrors.ErrDuplicateSite
	case errors.Is(err, routing.ErrInvalidSpeed),
		errors.Is(err, routing.ErrInvalidDayWindow),
		errors.Is(err, routing.ErrSizeLimit):
		return apperrors.ErrInvalidRequest
	default:
		return apperrors.ErrInternalServer
	}
}

// requestHash derives a deterministic cache key for a plan request.
// Province order does not matter.
func requestHash(req dto.PlanRequest) string {
	canonical := req
	canonical.Provinces = append([]string(nil), req.Provinces...)
	sort.Strings(canonical.Provinces)

	raw, _ := json.Marshal(canonical)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
