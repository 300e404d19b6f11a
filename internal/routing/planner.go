package routing

import "github.com/inspection-planner/internal/domain"

// Plan runs the full pipeline: distance matrix, size-based strategy
// selection, tour construction, day splitting and scoring. The caller
// stamps identity and creation time on the result; everything here is a
// deterministic function of the inputs.
func Plan(home domain.Point, sites []domain.Site, p Params, t Thresholds) (*domain.MultiDayPlan, error) {
	m, order, algo, err := BuildTour(home, sites, t)
	if err != nil {
		return nil, err
	}
	days, infeasible, unscheduled, err := SplitDays(m, order, p)
	if err != nil {
		return nil, err
	}

	var totalKm float64
	scheduled := 0
	for i := range days {
		score, err := ScoreDay(home, days[i])
		if err != nil {
			return nil, err
		}
		days[i].Score = score
		totalKm += days[i].DistanceKm
		scheduled += days[i].SiteCount()
	}

	return &domain.MultiDayPlan{
		Algorithm:       string(algo),
		Days:            days,
		Infeasible:      infeasible,
		Unscheduled:     unscheduled,
		TotalDistanceKm: totalKm,
		ScheduledSites:  scheduled,
		Score:           ScorePlan(days),
	}, nil
}
