package repository

import (
	"context"

	"github.com/inspection-planner/internal/domain"
)

// SiteRepository is the eligibility filter: every query returns only
// sites that are on air, have a submitted request, have not been
// inspected yet, and carry valid coordinates. The planning core trusts
// this set as given.
type SiteRepository interface {
	// ListByProvinces returns eligible sites in any of the given provinces.
	ListByProvinces(ctx context.Context, provinces []string, limit int) ([]domain.Site, error)

	// ListByDistrict returns eligible sites in a single district.
	ListByDistrict(ctx context.Context, province, district string, limit int) ([]domain.Site, error)

	// ListNearLocation returns eligible sites within radiusKm of a point,
	// ordered by ascending distance.
	ListNearLocation(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]domain.Site, error)
}
