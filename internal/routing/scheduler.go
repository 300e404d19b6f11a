package routing

import (
	"time"

	"github.com/inspection-planner/internal/domain"
)

// Params holds the per-day scheduling constraints. All clock values are
// wall-clock offsets within a single day; MaxDays bounds how many days
// the scheduler may open before deferring the remainder.
type Params struct {
	SpeedKmh   float64
	Service    time.Duration
	Buffer     time.Duration
	Start      domain.TimeOfDay
	Deadline   domain.TimeOfDay
	BreakStart domain.TimeOfDay
	BreakEnd   domain.TimeOfDay
	MaxDays    int
}

// DefaultParams returns the stock field-inspection constraints: 09:00
// departure, 17:00 hard deadline, 12:00-13:00 lunch window, 60 km/h
// average speed, 10 minutes on site and a 30 minute safety buffer.
func DefaultParams() Params {
	return Params{
		SpeedKmh:   60,
		Service:    10 * time.Minute,
		Buffer:     30 * time.Minute,
		Start:      domain.TimeOfDay(9 * time.Hour),
		Deadline:   domain.TimeOfDay(17 * time.Hour),
		BreakStart: domain.TimeOfDay(12 * time.Hour),
		BreakEnd:   domain.TimeOfDay(13 * time.Hour),
		MaxDays:    5,
	}
}

// Validate reports whether the parameters describe a usable day window.
func (p Params) Validate() error {
	if p.SpeedKmh <= 0 {
		return ErrInvalidSpeed
	}
	if p.Start >= p.Deadline || p.BreakStart >= p.BreakEnd || p.MaxDays < 1 {
		return ErrInvalidDayWindow
	}
	return nil
}

func (p Params) travel(km float64) time.Duration {
	return time.Duration(km / p.SpeedKmh * float64(time.Hour))
}

// breakDelay returns the time lost to the lunch window when a drive
// departing at clock crosses into it: the full window when the drive
// reaches it, the remainder when clock is already inside it.
func (p Params) breakDelay(clock time.Duration) time.Duration {
	if clock <= p.BreakStart.Duration() {
		return p.BreakEnd.Duration() - p.BreakStart.Duration()
	}
	if clock < p.BreakEnd.Duration() {
		return p.BreakEnd.Duration() - clock
	}
	return 0
}

// advance moves the clock across a travel leg, inserting the lunch break
// when the leg would cross the window start and the break has not been
// taken yet. The break is taken at most once per day.
func (p Params) advance(clock, travel time.Duration, breakTaken bool) (time.Duration, bool) {
	arrival := clock + travel
	if !breakTaken && clock < p.BreakEnd.Duration() && arrival > p.BreakStart.Duration() {
		return arrival + p.breakDelay(clock), true
	}
	return arrival, breakTaken
}

// dayState is the scheduler's fold accumulator: the current day number,
// the wall clock, the inspector's location (site index, -1 for home) and
// whether the lunch break has already been taken.
type dayState struct {
	day   int
	clock time.Duration
	at    int
	broke bool
}

func (p Params) freshDay(day int) dayState {
	return dayState{day: day, clock: p.Start.Duration(), at: -1}
}

// commit projects a visit to site from st: travel there, service, then a
// return leg home plus the safety buffer. The visit is committed only if
// the projected homecoming meets the deadline; projections insert the
// lunch break under the same rule as the realized schedule so a committed
// day never overruns on close.
func (p Params) commit(m *Matrix, st dayState, site int) (dayState, domain.Stop, bool) {
	legKm := m.HomeDist(site)
	if st.at >= 0 {
		legKm = m.SiteDist(st.at, site)
	}
	leg := p.travel(legKm)
	arrive, broke := p.advance(st.clock, leg, st.broke)
	depart := arrive + p.Service
	home, _ := p.advance(depart, p.travel(m.HomeDist(site)), broke)
	if home+p.Buffer > p.Deadline.Duration() {
		return st, domain.Stop{}, false
	}
	stop := domain.Stop{
		Site:          m.Site(site),
		LegKm:         legKm,
		TravelMinutes: leg.Minutes(),
		ArriveAt:      domain.TimeOfDay(arrive),
		DepartAt:      domain.TimeOfDay(depart),
	}
	return dayState{day: st.day, clock: depart, at: site, broke: broke}, stop, true
}

// closeDay drives home from the current location and stamps the day.
func (p Params) closeDay(m *Matrix, st dayState, stops []domain.Stop, legKm float64) domain.DayPlan {
	returnKm := m.HomeDist(st.at)
	returnAt, broke := p.advance(st.clock, p.travel(returnKm), st.broke)
	return domain.DayPlan{
		Day:         st.day,
		Stops:       stops,
		DepartAt:    p.Start,
		ReturnAt:    domain.TimeOfDay(returnAt),
		ReturnLegKm: returnKm,
		DistanceKm:  legKm + returnKm,
		BreakTaken:  broke,
		Feasible:    returnAt <= p.Deadline.Duration(),
	}
}

// SplitDays walks the ordering and greedily assigns sites to the current
// day until the next visit's projected homecoming would miss the
// deadline, then closes the day and retries the same site on a fresh
// morning. A site that does not fit even from a fresh morning at home is
// reported infeasible and skipped; sites left over once MaxDays days are
// used are returned as the unscheduled remainder. The walk never reorders
// sites across a day boundary.
func SplitDays(m *Matrix, order []int, p Params) ([]domain.DayPlan, []domain.Site, []domain.Site, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, nil, err
	}
	var (
		days        []domain.DayPlan
		infeasible  []domain.Site
		unscheduled []domain.Site
		stops       []domain.Stop
		legKm       float64
	)
	st := p.freshDay(1)

	i := 0
	for i < len(order) {
		if next, stop, ok := p.commit(m, st, order[i]); ok {
			stops = append(stops, stop)
			legKm += stop.LegKm
			st = next
			i++
			continue
		}
		if len(stops) == 0 {
			infeasible = append(infeasible, m.Site(order[i]))
			i++
			continue
		}
		days = append(days, p.closeDay(m, st, stops, legKm))
		if len(days) == p.MaxDays {
			for _, left := range order[i:] {
				unscheduled = append(unscheduled, m.Site(left))
			}
			return days, infeasible, unscheduled, nil
		}
		st = p.freshDay(st.day + 1)
		stops = nil
		legKm = 0
	}
	if len(stops) > 0 {
		days = append(days, p.closeDay(m, st, stops, legKm))
	}
	return days, infeasible, unscheduled, nil
}
