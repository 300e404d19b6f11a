package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspection-planner/internal/routing"
)

func TestPlan(t *testing.T) {
	t.Run("two cluster field trip", func(t *testing.T) {
		sites := twoClusterSites()
		plan, err := routing.Plan(testHome, sites, routing.DefaultParams(), routing.DefaultThresholds())
		require.NoError(t, err)

		assert.Equal(t, string(routing.AlgorithmChristofides), plan.Algorithm)
		assert.Empty(t, plan.Infeasible)

		// Every input site lands in exactly one bucket.
		seen := make(map[int64]int)
		for _, day := range plan.Days {
			for _, stop := range day.Stops {
				seen[stop.Site.ID]++
			}
		}
		for _, s := range plan.Unscheduled {
			seen[s.ID]++
		}
		require.Len(t, seen, len(sites))
		for id, count := range seen {
			assert.Equal(t, 1, count, "site %d", id)
		}
		assert.Equal(t, len(sites)-len(plan.Unscheduled), plan.ScheduledSites)

		var total float64
		for _, day := range plan.Days {
			total += day.DistanceKm
			assert.True(t, day.Feasible)
			assert.Greater(t, day.Score.BaselineKm, 0.0)
			assert.Greater(t, day.Score.Score, 0.0)
			assert.LessOrEqual(t, day.Score.Score, 100.0)
		}
		assert.InDelta(t, total, plan.TotalDistanceKm, 1e-9)

		assert.Greater(t, plan.Score.Score, 0.0)
		assert.LessOrEqual(t, plan.Score.Score, 100.0)
		assert.NotEmpty(t, plan.Score.Verdict)
	})

	t.Run("empty site set", func(t *testing.T) {
		_, err := routing.Plan(testHome, nil, routing.DefaultParams(), routing.DefaultThresholds())
		assert.ErrorIs(t, err, routing.ErrEmptySiteSet)
	})

	t.Run("deterministic", func(t *testing.T) {
		sites := makeSites(12)
		first, err := routing.Plan(testHome, sites, routing.DefaultParams(), routing.DefaultThresholds())
		require.NoError(t, err)
		second, err := routing.Plan(testHome, sites, routing.DefaultParams(), routing.DefaultThresholds())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
