package routing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspection-planner/internal/domain"
	"github.com/inspection-planner/internal/routing"
)

// Degree offsets chosen so the clusters sit almost exactly 120 km and
// 270 km of driving from the test home (one degree of latitude is
// 111.1949 km).
const (
	latOffset120km = 1.07918
	latOffset270km = 2.42817
)

// twoClusterSites builds six sites 120 km north of home and four sites
// 120 km south, all stacked on the same two points.
func twoClusterSites() []domain.Site {
	sites := make([]domain.Site, 0, 10)
	for i := 0; i < 6; i++ {
		sites = append(sites, testSite(int64(i+1), testHome.Lat+latOffset120km, testHome.Lon))
	}
	for i := 6; i < 10; i++ {
		sites = append(sites, testSite(int64(i+1), testHome.Lat-latOffset120km, testHome.Lon))
	}
	return sites
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func TestSplitDaysTwoClusters(t *testing.T) {
	m, err := routing.NewMatrix(testHome, twoClusterSites())
	require.NoError(t, err)

	days, infeasible, unscheduled, err := routing.SplitDays(m, identityOrder(10), routing.DefaultParams())
	require.NoError(t, err)

	require.Len(t, days, 2)
	assert.Empty(t, infeasible)
	assert.Empty(t, unscheduled)

	north := days[0]
	assert.Equal(t, 1, north.Day)
	require.Len(t, north.Stops, 6)
	assert.Equal(t, 540, north.DepartAt.Minutes()) // 09:00
	assert.Equal(t, 660, north.Stops[0].ArriveAt.Minutes())
	assert.Equal(t, 670, north.Stops[0].DepartAt.Minutes())
	assert.Equal(t, 720, north.Stops[5].DepartAt.Minutes()) // 12:00 after six visits
	assert.True(t, north.BreakTaken)
	assert.True(t, north.Feasible)
	assert.Equal(t, 900, north.ReturnAt.Minutes()) // 15:00, lunch on the way home
	assert.InDelta(t, 120.0, north.ReturnLegKm, 0.05)
	assert.InDelta(t, 240.0, north.DistanceKm, 0.1)

	south := days[1]
	assert.Equal(t, 2, south.Day)
	require.Len(t, south.Stops, 4)
	assert.True(t, south.BreakTaken)
	assert.True(t, south.Feasible)
	assert.Equal(t, 880, south.ReturnAt.Minutes()) // 14:40
	assert.InDelta(t, 240.0, south.DistanceKm, 0.1)

	var ids []int64
	for _, day := range days {
		for _, stop := range day.Stops {
			ids = append(ids, stop.Site.ID)
		}
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids)
}

func TestSplitDaysIdempotent(t *testing.T) {
	m, err := routing.NewMatrix(testHome, twoClusterSites())
	require.NoError(t, err)

	days1, inf1, un1, err := routing.SplitDays(m, identityOrder(10), routing.DefaultParams())
	require.NoError(t, err)
	days2, inf2, un2, err := routing.SplitDays(m, identityOrder(10), routing.DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, days1, days2)
	assert.Equal(t, inf1, inf2)
	assert.Equal(t, un1, un2)
}

func TestSplitDaysUnscheduledRemainder(t *testing.T) {
	m, err := routing.NewMatrix(testHome, twoClusterSites())
	require.NoError(t, err)

	params := routing.DefaultParams()
	params.MaxDays = 1

	days, infeasible, unscheduled, err := routing.SplitDays(m, identityOrder(10), params)
	require.NoError(t, err)

	require.Len(t, days, 1)
	assert.Len(t, days[0].Stops, 6)
	assert.Empty(t, infeasible)
	require.Len(t, unscheduled, 4)
	assert.Equal(t, int64(7), unscheduled[0].ID)
	assert.Equal(t, int64(10), unscheduled[3].ID)
}

func TestSplitDaysInfeasibleSite(t *testing.T) {
	t.Run("nine hour round trip is flagged, not scheduled", func(t *testing.T) {
		far := testSite(99, testHome.Lat+latOffset270km, testHome.Lon)
		m, err := routing.NewMatrix(testHome, []domain.Site{far})
		require.NoError(t, err)

		days, infeasible, unscheduled, err := routing.SplitDays(m, []int{0}, routing.DefaultParams())
		require.NoError(t, err)

		assert.Empty(t, days)
		assert.Empty(t, unscheduled)
		require.Len(t, infeasible, 1)
		assert.Equal(t, int64(99), infeasible[0].ID)
	})

	t.Run("retried on a fresh day before flagging", func(t *testing.T) {
		sites := []domain.Site{
			testSite(1, testHome.Lat+latOffset120km, testHome.Lon),
			testSite(2, testHome.Lat+latOffset270km, testHome.Lon),
		}
		m, err := routing.NewMatrix(testHome, sites)
		require.NoError(t, err)

		days, infeasible, unscheduled, err := routing.SplitDays(m, []int{0, 1}, routing.DefaultParams())
		require.NoError(t, err)

		require.Len(t, days, 1)
		assert.Len(t, days[0].Stops, 1)
		assert.Empty(t, unscheduled)
		require.Len(t, infeasible, 1)
		assert.Equal(t, int64(2), infeasible[0].ID)
	})
}

func TestSplitDaysBreakWindow(t *testing.T) {
	t.Run("break added when only the return leg crosses it", func(t *testing.T) {
		site := testSite(1, testHome.Lat+latOffset120km, testHome.Lon)
		m, err := routing.NewMatrix(testHome, []domain.Site{site})
		require.NoError(t, err)

		days, _, _, err := routing.SplitDays(m, []int{0}, routing.DefaultParams())
		require.NoError(t, err)

		require.Len(t, days, 1)
		assert.True(t, days[0].BreakTaken)
		assert.Equal(t, 850, days[0].ReturnAt.Minutes()) // 14:10, not 13:10
	})

	t.Run("no break when the day ends before the window", func(t *testing.T) {
		near := testSite(1, testHome.Lat+latOffset120km/4, testHome.Lon) // 30 km out
		m, err := routing.NewMatrix(testHome, []domain.Site{near})
		require.NoError(t, err)

		params := routing.DefaultParams()
		params.Deadline = domain.TimeOfDay(12 * time.Hour)

		days, _, _, err := routing.SplitDays(m, []int{0}, params)
		require.NoError(t, err)

		require.Len(t, days, 1)
		assert.False(t, days[0].BreakTaken)
		assert.Equal(t, 610, days[0].ReturnAt.Minutes()) // 10:10
	})
}

func TestSplitDaysParamValidation(t *testing.T) {
	m, err := routing.NewMatrix(testHome, makeSites(3))
	require.NoError(t, err)

	t.Run("zero speed", func(t *testing.T) {
		params := routing.DefaultParams()
		params.SpeedKmh = 0
		_, _, _, err := routing.SplitDays(m, identityOrder(3), params)
		assert.ErrorIs(t, err, routing.ErrInvalidSpeed)
	})

	t.Run("start after deadline", func(t *testing.T) {
		params := routing.DefaultParams()
		params.Start = domain.TimeOfDay(18 * time.Hour)
		_, _, _, err := routing.SplitDays(m, identityOrder(3), params)
		assert.ErrorIs(t, err, routing.ErrInvalidDayWindow)
	})

	t.Run("inverted break window", func(t *testing.T) {
		params := routing.DefaultParams()
		params.BreakStart, params.BreakEnd = params.BreakEnd, params.BreakStart
		_, _, _, err := routing.SplitDays(m, identityOrder(3), params)
		assert.ErrorIs(t, err, routing.ErrInvalidDayWindow)
	})

	t.Run("zero days", func(t *testing.T) {
		params := routing.DefaultParams()
		params.MaxDays = 0
		_, _, _, err := routing.SplitDays(m, identityOrder(3), params)
		assert.ErrorIs(t, err, routing.ErrInvalidDayWindow)
	})
}
