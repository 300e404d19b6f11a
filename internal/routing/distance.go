// Package routing is the route construction, improvement, and
// day-splitting engine. Everything in this package is a deterministic
// pure function over its inputs: no I/O, no logging, no shared state.
// Independent planning requests may run concurrently without
// coordination.
package routing

import (
	"math"
	"time"

	"github.com/inspection-planner/internal/domain"
)

// earthRadiusKm is the spherical Earth approximation radius.
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(a, b domain.Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lon - a.Lon) * math.Pi / 180.0

	latA := a.Lat * math.Pi / 180.0
	latB := b.Lat * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(latA)*math.Cos(latB)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// TravelTime converts a distance into a driving duration at the given
// average speed. Speed must be strictly positive.
func TravelTime(distanceKm, speedKmh float64) (time.Duration, error) {
	if speedKmh <= 0 {
		return 0, ErrInvalidSpeed
	}
	return time.Duration(distanceKm / speedKmh * float64(time.Hour)), nil
}

// ValidatePoint checks that a coordinate pair is within WGS84 bounds.
func ValidatePoint(p domain.Point) error {
	if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
		return ErrInvalidCoordinate
	}
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) {
		return ErrInvalidCoordinate
	}
	return nil
}
