package routing

import (
	"math"

	"github.com/inspection-planner/internal/domain"
)

// infeasibleDayPenalty is the flat score deduction for every day whose
// homecoming misses the deadline.
const infeasibleDayPenalty = 15

// VerdictFor maps a score to its qualitative band.
func VerdictFor(score float64) domain.Verdict {
	switch {
	case score >= 90:
		return domain.VerdictOptimal
	case score >= 70:
		return domain.VerdictGood
	default:
		return domain.VerdictPoor
	}
}

func clampScore(s float64) float64 {
	return math.Min(100, math.Max(0, s))
}

// scoreDistances derives the 0..100 efficiency score: the baseline to
// actual ratio, clamped, minus the infeasible-day penalty, clamped again.
// A zero actual distance scores 100: there was nothing to drive.
func scoreDistances(baseline, actual float64, infeasibleDays int) domain.EfficiencyScore {
	score := 100.0
	if actual > 0 {
		score = clampScore(100 * baseline / actual)
	}
	score = clampScore(score - float64(infeasibleDays*infeasibleDayPenalty))
	return domain.EfficiencyScore{
		Score:          score,
		Verdict:        VerdictFor(score),
		BaselineKm:     baseline,
		ActualKm:       actual,
		InfeasibleDays: infeasibleDays,
	}
}

// ScoreRoute scores a realized closed-tour ordering against the
// nearest-neighbor baseline for the same site set and home.
func ScoreRoute(m *Matrix, order []int) (domain.EfficiencyScore, error) {
	baseline, err := NearestNeighbor(m)
	if err != nil {
		return domain.EfficiencyScore{}, err
	}
	return scoreDistances(m.TourDistance(baseline), m.TourDistance(order), 0), nil
}

// ScoreDay scores a single day's realized route against the
// nearest-neighbor baseline for that day's own site set. Both the
// realized and baseline distances include the home legs.
func ScoreDay(home domain.Point, day domain.DayPlan) (domain.EfficiencyScore, error) {
	sites := make([]domain.Site, len(day.Stops))
	for i, stop := range day.Stops {
		sites[i] = stop.Site
	}
	sub, err := NewMatrix(home, sites)
	if err != nil {
		return domain.EfficiencyScore{}, err
	}
	baseline, err := NearestNeighbor(sub)
	if err != nil {
		return domain.EfficiencyScore{}, err
	}
	infeasible := 0
	if !day.Feasible {
		infeasible = 1
	}
	return scoreDistances(sub.TourDistance(baseline), day.DistanceKm, infeasible), nil
}

// ScorePlan aggregates already-scored days: summed per-day baselines
// against summed realized distances, minus the flat penalty for every
// infeasible day.
func ScorePlan(days []domain.DayPlan) domain.EfficiencyScore {
	var baseline, actual float64
	infeasible := 0
	for _, d := range days {
		baseline += d.Score.BaselineKm
		actual += d.DistanceKm
		if !d.Feasible {
			infeasible++
		}
	}
	return scoreDistances(baseline, actual, infeasible)
}
