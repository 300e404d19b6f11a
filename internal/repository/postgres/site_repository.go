package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/inspection-planner/internal/domain"
	"github.com/inspection-planner/internal/domain/repository"
	"github.com/inspection-planner/internal/pkg/errors"
)

type siteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewSiteRepository returns the eligibility-filtered station reader.
// Every query restricts to stations that are on air, have a submitted
// request and have not been inspected yet.
func NewSiteRepository(db *DB) repository.SiteRepository {
	return &siteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *siteRepository) ListByProvinces(ctx context.Context, provinces []string, limit int) ([]domain.Site, error) {
	query := `
		SELECT id, name, frequency_mhz, province, district, lat, lon, TRUE AS eligible
		FROM stations
		WHERE inspected = FALSE
		  AND request_submitted = TRUE
		  AND on_air = TRUE
		  AND province = ANY($1)
		ORDER BY id
		LIMIT $2
	`

	var sites []domain.Site
	if err := r.db.SelectContext(ctx, &sites, query, pq.Array(provinces), limit); err != nil {
		r.logger.Error("Failed to list sites by provinces", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return sites, nil
}

func (r *siteRepository) ListByDistrict(ctx context.Context, province, district string, limit int) ([]domain.Site, error) {
	query := `
		SELECT id, name, frequency_mhz, province, district, lat, lon, TRUE AS eligible
		FROM stations
		WHERE inspected = FALSE
		  AND request_submitted = TRUE
		  AND on_air = TRUE
		  AND province = $1
		  AND district = $2
		ORDER BY id
		LIMIT $3
	`

	var sites []domain.Site
	if err := r.db.SelectContext(ctx, &sites, query, province, district, limit); err != nil {
		r.logger.Error("Failed to list sites by district", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return sites, nil
}

func (r *siteRepository) ListNearLocation(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]domain.Site, error) {
	// Great-circle distance in SQL; least() guards acos against rounding
	// just above 1.
	query := `
		SELECT id, name, frequency_mhz, province, district, lat, lon, eligible
		FROM (
			SELECT id, name, frequency_mhz, province, district, lat, lon, TRUE AS eligible,
				6371 * acos(least(1.0,
					cos(radians($1)) * cos(radians(lat)) * cos(radians(lon) - radians($2))
					+ sin(radians($1)) * sin(radians(lat))
				)) AS distance_km
			FROM stations
			WHERE inspected = FALSE
			  AND request_submitted = TRUE
			  AND on_air = TRUE
		) s
		WHERE s.distance_km <= $3
		ORDER BY s.distance_km
		LIMIT $4
	`

	var sites []domain.Site
	if err := r.db.SelectContext(ctx, &sites, query, lat, lon, radiusKm, limit); err != nil {
		r.logger.Error("Failed to list sites near location", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return sites, nil
}
