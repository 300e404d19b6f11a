package routing

import "github.com/inspection-planner/internal/domain"

// Matrix is a dense symmetric distance matrix over home plus the input
// sites. Vertex 0 is always home; site k occupies vertex k+1. Distances
// are stored linearized for cache-friendly reads in the optimization
// loops.
type Matrix struct {
	home  domain.Point
	sites []domain.Site
	n     int // vertex count including home
	w     []float64
}

// NewMatrix validates every coordinate, rejects duplicate site IDs, and
// precomputes all pairwise great-circle distances. O(n^2) time and space.
func NewMatrix(home domain.Point, sites []domain.Site) (*Matrix, error) {
	if len(sites) == 0 {
		return nil, ErrEmptySiteSet
	}
	if err := ValidatePoint(home); err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(sites))
	for _, s := range sites {
		if err := ValidatePoint(s.Location()); err != nil {
			return nil, err
		}
		if _, dup := seen[s.ID]; dup {
			return nil, ErrDuplicateSite
		}
		seen[s.ID] = struct{}{}
	}

	n := len(sites) + 1
	points := make([]domain.Point, n)
	points[0] = home
	for i, s := range sites {
		points[i+1] = s.Location()
	}

	m := &Matrix{
		home:  home,
		sites: sites,
		n:     n,
		w:     make([]float64, n*n),
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Haversine(points[i], points[j])
			m.w[i*n+j] = d
			m.w[j*n+i] = d
		}
	}
	return m, nil
}

// Home returns the anchoring home location (matrix vertex 0).
func (m *Matrix) Home() domain.Point { return m.home }

// Len returns the number of sites (home excluded).
func (m *Matrix) Len() int { return m.n - 1 }

// Site returns the site occupying matrix vertex idx+1.
func (m *Matrix) Site(idx int) domain.Site { return m.sites[idx] }

// Sites returns the input site slice in original order.
func (m *Matrix) Sites() []domain.Site { return m.sites }

// At returns the distance between two vertices (0 = home).
func (m *Matrix) At(i, j int) float64 { return m.w[i*m.n+j] }

// SiteDist returns the distance between two sites by site index.
func (m *Matrix) SiteDist(a, b int) float64 { return m.At(a+1, b+1) }

// HomeDist returns the distance between home and a site by site index.
func (m *Matrix) HomeDist(a int) float64 { return m.At(0, a+1) }

// TourDistance returns the closed-tour distance of a site ordering:
// home -> order[0] -> ... -> order[n-1] -> home. Both home legs are
// always included.
func (m *Matrix) TourDistance(order []int) float64 {
	if len(order) == 0 {
		return 0
	}
	total := m.HomeDist(order[0])
	for i := 1; i < len(order); i++ {
		total += m.SiteDist(order[i-1], order[i])
	}
	total += m.HomeDist(order[len(order)-1])
	return total
}

// PathDistance returns the open-path distance of a site ordering starting
// from home, without the closing home leg.
func (m *Matrix) PathDistance(order []int) float64 {
	if len(order) == 0 {
		return 0
	}
	total := m.HomeDist(order[0])
	for i := 1; i < len(order); i++ {
		total += m.SiteDist(order[i-1], order[i])
	}
	return total
}
