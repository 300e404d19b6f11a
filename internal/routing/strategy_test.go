package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspection-planner/internal/domain"
	"github.com/inspection-planner/internal/routing"
)

// makeSites scatters n sites deterministically around the test home.
func makeSites(n int) []domain.Site {
	sites := make([]domain.Site, n)
	for i := 0; i < n; i++ {
		lat := 14.2 + 0.13*float64(i%7) + 0.011*float64(i)
		lon := 101.5 + 0.17*float64(i%5) + 0.007*float64(i)
		sites[i] = testSite(int64(i+1), lat, lon)
	}
	return sites
}

func assertVisitsEachSiteOnce(t *testing.T, n int, order []int) {
	t.Helper()
	require.Len(t, order, n)
	seen := make([]bool, n)
	for _, s := range order {
		require.GreaterOrEqual(t, s, 0)
		require.Less(t, s, n)
		require.False(t, seen[s], "site %d visited twice", s)
		seen[s] = true
	}
}

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		n    int
		want routing.Algorithm
	}{
		{1, routing.AlgorithmBruteForce},
		{5, routing.AlgorithmBruteForce},
		{8, routing.AlgorithmBruteForce},
		{9, routing.AlgorithmChristofides},
		{10, routing.AlgorithmChristofides},
		{11, routing.AlgorithmTwoOpt},
		{25, routing.AlgorithmTwoOpt},
		{26, routing.AlgorithmNearestNeighbor},
		{200, routing.AlgorithmNearestNeighbor},
	}

	for _, tt := range tests {
		_, algo := routing.SelectStrategy(tt.n, routing.DefaultThresholds())
		assert.Equal(t, tt.want, algo, "n=%d", tt.n)
	}
}

func TestStrategiesVisitEachSiteExactlyOnce(t *testing.T) {
	m, err := routing.NewMatrix(testHome, makeSites(8))
	require.NoError(t, err)

	strategies := map[string]routing.Strategy{
		"brute_force":      routing.BruteForce,
		"nearest_neighbor": routing.NearestNeighbor,
		"two_opt":          routing.TwoOpt,
		"christofides":     routing.Christofides,
	}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			order, err := strategy(m)
			require.NoError(t, err)
			assertVisitsEachSiteOnce(t, 8, order)
		})
	}
}

func TestBruteForceFindsOptimum(t *testing.T) {
	t.Run("collinear sites", func(t *testing.T) {
		// Sites strung east of home along the equator: the optimal closed
		// tour is out to the farthest and straight back.
		home := domain.Point{Lat: 0, Lon: 0}
		sites := []domain.Site{
			testSite(1, 0, 0.3),
			testSite(2, 0, 0.1),
			testSite(3, 0, 0.5),
			testSite(4, 0, 0.2),
			testSite(5, 0, 0.4),
		}
		m, err := routing.NewMatrix(home, sites)
		require.NoError(t, err)

		order, err := routing.BruteForce(m)
		require.NoError(t, err)

		want := 2 * routing.Haversine(home, sites[2].Location())
		assert.InDelta(t, want, m.TourDistance(order), 1e-6)
	})

	t.Run("never worse than the heuristics", func(t *testing.T) {
		m, err := routing.NewMatrix(testHome, makeSites(8))
		require.NoError(t, err)

		optimal, err := routing.BruteForce(m)
		require.NoError(t, err)
		optimalKm := m.TourDistance(optimal)

		for name, strategy := range map[string]routing.Strategy{
			"nearest_neighbor": routing.NearestNeighbor,
			"two_opt":          routing.TwoOpt,
			"christofides":     routing.Christofides,
		} {
			order, err := strategy(m)
			require.NoError(t, err)
			assert.LessOrEqual(t, optimalKm, m.TourDistance(order)+1e-9, name)
		}
	})

	t.Run("rejects oversized inputs", func(t *testing.T) {
		m, err := routing.NewMatrix(testHome, makeSites(11))
		require.NoError(t, err)

		_, err = routing.BruteForce(m)
		assert.ErrorIs(t, err, routing.ErrSizeLimit)
	})
}

func TestNearestNeighborTieBreak(t *testing.T) {
	// Both sites sit exactly one degree of arc from home; the lower input
	// index wins the tie.
	home := domain.Point{Lat: 0, Lon: 0}
	sites := []domain.Site{
		testSite(1, 1, 0),
		testSite(2, 0, 1),
	}
	m, err := routing.NewMatrix(home, sites)
	require.NoError(t, err)

	order, err := routing.NearestNeighbor(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, order)
}

func TestTwoOptNeverWorseThanSeed(t *testing.T) {
	m, err := routing.NewMatrix(testHome, makeSites(15))
	require.NoError(t, err)

	seed, err := routing.NearestNeighbor(m)
	require.NoError(t, err)

	improved, err := routing.TwoOpt(m)
	require.NoError(t, err)

	assertVisitsEachSiteOnce(t, 15, improved)
	assert.LessOrEqual(t, m.TourDistance(improved), m.TourDistance(seed)+1e-9)
}

func TestBuildTour(t *testing.T) {
	t.Run("selects by size band", func(t *testing.T) {
		tests := []struct {
			n    int
			want routing.Algorithm
		}{
			{6, routing.AlgorithmBruteForce},
			{10, routing.AlgorithmChristofides},
			{18, routing.AlgorithmTwoOpt},
			{30, routing.AlgorithmNearestNeighbor},
		}
		for _, tt := range tests {
			m, order, algo, err := routing.BuildTour(testHome, makeSites(tt.n), routing.DefaultThresholds())
			require.NoError(t, err)
			assert.Equal(t, tt.want, algo, "n=%d", tt.n)
			assert.Equal(t, tt.n, m.Len())
			assertVisitsEachSiteOnce(t, tt.n, order)
		}
	})

	t.Run("propagates matrix errors", func(t *testing.T) {
		_, _, _, err := routing.BuildTour(testHome, nil, routing.DefaultThresholds())
		assert.ErrorIs(t, err, routing.ErrEmptySiteSet)
	})
}
