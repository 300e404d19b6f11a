package routing_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspection-planner/internal/domain"
	"github.com/inspection-planner/internal/routing"
)

func TestHaversine(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		p := domain.Point{Lat: 14.785244, Lon: 102.042534}
		assert.Zero(t, routing.Haversine(p, p))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := domain.Point{Lat: 14.785244, Lon: 102.042534}
		b := domain.Point{Lat: 15.5, Lon: 101.2}
		assert.Equal(t, routing.Haversine(a, b), routing.Haversine(b, a))
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		a := domain.Point{Lat: 0, Lon: 0}
		b := domain.Point{Lat: 0, Lon: 1}
		assert.InDelta(t, 111.1949, routing.Haversine(a, b), 0.001)
	})

	t.Run("one degree of latitude anywhere", func(t *testing.T) {
		a := domain.Point{Lat: 14, Lon: 102}
		b := domain.Point{Lat: 15, Lon: 102}
		assert.InDelta(t, 111.1949, routing.Haversine(a, b), 0.001)
	})
}

func TestTravelTime(t *testing.T) {
	t.Run("distance over speed", func(t *testing.T) {
		d, err := routing.TravelTime(120, 60)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, d)
	})

	t.Run("rejects non-positive speed", func(t *testing.T) {
		_, err := routing.TravelTime(120, 0)
		assert.ErrorIs(t, err, routing.ErrInvalidSpeed)

		_, err = routing.TravelTime(120, -10)
		assert.ErrorIs(t, err, routing.ErrInvalidSpeed)
	})
}

func TestValidatePoint(t *testing.T) {
	tests := []struct {
		name    string
		point   domain.Point
		wantErr bool
	}{
		{"valid", domain.Point{Lat: 14.785244, Lon: 102.042534}, false},
		{"boundary lat", domain.Point{Lat: 90, Lon: 0}, false},
		{"boundary lon", domain.Point{Lat: 0, Lon: -180}, false},
		{"lat too high", domain.Point{Lat: 90.1, Lon: 0}, true},
		{"lat too low", domain.Point{Lat: -90.1, Lon: 0}, true},
		{"lon too high", domain.Point{Lat: 0, Lon: 180.5}, true},
		{"lon too low", domain.Point{Lat: 0, Lon: -180.5}, true},
		{"NaN latitude", domain.Point{Lat: math.NaN(), Lon: 0}, true},
		{"NaN longitude", domain.Point{Lat: 0, Lon: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := routing.ValidatePoint(tt.point)
			if tt.wantErr {
				assert.ErrorIs(t, err, routing.ErrInvalidCoordinate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
