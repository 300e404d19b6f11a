package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspection-planner/internal/routing"
)

func TestChristofides(t *testing.T) {
	t.Run("single site", func(t *testing.T) {
		m, err := routing.NewMatrix(testHome, makeSites(1))
		require.NoError(t, err)

		order, err := routing.Christofides(m)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, order)
	})

	t.Run("two sites", func(t *testing.T) {
		m, err := routing.NewMatrix(testHome, makeSites(2))
		require.NoError(t, err)

		order, err := routing.Christofides(m)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, order)
	})

	t.Run("covers every site once", func(t *testing.T) {
		m, err := routing.NewMatrix(testHome, makeSites(10))
		require.NoError(t, err)

		order, err := routing.Christofides(m)
		require.NoError(t, err)
		assertVisitsEachSiteOnce(t, 10, order)
	})

	t.Run("within twice the optimum", func(t *testing.T) {
		// Tree doubling bounds the shortcut tour by 2x the optimal length
		// on metric instances, greedy matching included.
		m, err := routing.NewMatrix(testHome, makeSites(9))
		require.NoError(t, err)

		optimal, err := routing.BruteForce(m)
		require.NoError(t, err)

		order, err := routing.Christofides(m)
		require.NoError(t, err)

		assert.LessOrEqual(t, m.TourDistance(order), 2*m.TourDistance(optimal)+1e-9)
	})

	t.Run("deterministic", func(t *testing.T) {
		m, err := routing.NewMatrix(testHome, makeSites(10))
		require.NoError(t, err)

		first, err := routing.Christofides(m)
		require.NoError(t, err)
		second, err := routing.Christofides(m)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
