package dto

import (
	"github.com/inspection-planner/internal/domain"
)

// PlanRequest asks for a multi-day inspection plan over the eligible
// sites of one or more provinces, optionally narrowed to a district.
type PlanRequest struct {
	Provinces []string `json:"provinces" validate:"required,min=1,max=10,dive,min=1"`
	District  string   `json:"district,omitempty" validate:"omitempty,min=1"`
	SiteLimit int      `json:"site_limit" validate:"omitempty,min=1,max=200"`
	Days      int      `json:"days" validate:"omitempty,min=1,max=30"`
	Home      *Point   `json:"home,omitempty"`
}

// Point is a coordinate pair supplied by the caller.
type Point struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// SiteInput is a caller-supplied site for route evaluation.
type SiteInput struct {
	ID   int64   `json:"id" validate:"required"`
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat" validate:"min=-90,max=90"`
	Lon  float64 `json:"lon" validate:"min=-180,max=180"`
}

// EvaluateRouteRequest scores an already-ordered route against the
// baseline for the same site set. Sites are visited in the given order.
type EvaluateRouteRequest struct {
	Home  *Point      `json:"home,omitempty"`
	Sites []SiteInput `json:"sites" validate:"required,min=1,max=200,dive"`
}

// NearSitesRequest asks for the eligible sites within a radius of a
// point, nearest first.
type NearSitesRequest struct {
	Lat      float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon      float64 `json:"lon" validate:"required,min=-180,max=180"`
	RadiusKm float64 `json:"radius_km" validate:"omitempty,min=0.1,max=500"`
	Limit    int     `json:"limit" validate:"omitempty,min=1,max=200"`
}

// NearSite pairs a site with its distance from the query point.
type NearSite struct {
	Site       domain.Site `json:"site"`
	DistanceKm float64     `json:"distance_km"`
}

// NearSitesResponse lists nearby eligible sites, nearest first.
type NearSitesResponse struct {
	Sites []NearSite `json:"sites"`
}

// PlanResponse wraps a computed plan. Cached marks a cache hit for an
// identical earlier request.
type PlanResponse struct {
	Plan   *domain.MultiDayPlan `json:"plan"`
	Cached bool                 `json:"cached,omitempty"`
}

// EvaluateRouteResponse carries the efficiency verdict for a submitted
// route order.
type EvaluateRouteResponse struct {
	Score      domain.EfficiencyScore `json:"score"`
	DistanceKm float64                `json:"distance_km"`
	SiteCount  int                    `json:"site_count"`
}

// ToDomainSites converts evaluation inputs to domain sites in request
// order.
func (r EvaluateRouteRequest) ToDomainSites() []domain.Site {
	sites := make([]domain.Site, len(r.Sites))
	for i, s := range r.Sites {
		sites[i] = domain.Site{
			ID:   s.ID,
			Name: s.Name,
			Lat:  s.Lat,
			Lon:  s.Lon,
		}
	}
	return sites
}
