package domain

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the qualitative band attached to an efficiency score.
type Verdict string

const (
	VerdictOptimal Verdict = "optimal" // score >= 90
	VerdictGood    Verdict = "good"    // 70 <= score < 90
	VerdictPoor    Verdict = "poor"    // score < 70
)

// EfficiencyScore compares the cost of a realized route against a
// lower-bound baseline for the same site set and home location.
type EfficiencyScore struct {
	Score          float64 `json:"score"` // 0..100
	Verdict        Verdict `json:"verdict"`
	BaselineKm     float64 `json:"baseline_km"`
	ActualKm       float64 `json:"actual_km"`
	InfeasibleDays int     `json:"infeasible_days,omitempty"`
}

// Stop is a committed visit within a day plan. LegKm and TravelMinutes
// describe the leg from the previous location (home for the first stop).
type Stop struct {
	Site          Site      `json:"site"`
	LegKm         float64   `json:"leg_km"`
	TravelMinutes float64   `json:"travel_minutes"`
	ArriveAt      TimeOfDay `json:"arrive_at"`
	DepartAt      TimeOfDay `json:"depart_at"`
}

// DayPlan is a single day's route: home -> stops -> home. ReturnAt is
// the computed arrival-home time including the mandatory break when the
// day's span crosses the break window. A DayPlan whose ReturnAt exceeds
// the configured deadline is marked infeasible.
type DayPlan struct {
	Day         int             `json:"day"`
	Stops       []Stop          `json:"stops"`
	DepartAt    TimeOfDay       `json:"depart_at"`
	ReturnAt    TimeOfDay       `json:"return_at"`
	ReturnLegKm float64         `json:"return_leg_km"`
	DistanceKm  float64         `json:"distance_km"`
	BreakTaken  bool            `json:"break_taken"`
	Feasible    bool            `json:"feasible"`
	Score       EfficiencyScore `json:"score"`
}

// SiteCount returns the number of committed stops.
func (d DayPlan) SiteCount() int {
	return len(d.Stops)
}

// MultiDayPlan is the full planning result: one DayPlan per used day,
// plus the sites that could not be scheduled. Infeasible sites are those
// whose round trip from home alone exceeds the daily deadline; Unscheduled
// sites are those left over after the requested number of days.
type MultiDayPlan struct {
	ID              uuid.UUID       `json:"id"`
	Algorithm       string          `json:"algorithm"`
	Days            []DayPlan       `json:"days"`
	Infeasible      []Site          `json:"infeasible,omitempty"`
	Unscheduled     []Site          `json:"unscheduled,omitempty"`
	TotalDistanceKm float64         `json:"total_distance_km"`
	ScheduledSites  int             `json:"scheduled_sites"`
	Score           EfficiencyScore `json:"score"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ScheduledSiteIDs returns the IDs of every committed site in day order.
func (p MultiDayPlan) ScheduledSiteIDs() []int64 {
	ids := make([]int64, 0, p.ScheduledSites)
	for _, day := range p.Days {
		for _, stop := range day.Stops {
			ids = append(ids, stop.Site.ID)
		}
	}
	return ids
}
