package routing

import "github.com/inspection-planner/internal/domain"

// Algorithm identifies a construction strategy in plan summaries.
type Algorithm string

const (
	AlgorithmBruteForce      Algorithm = "brute_force"
	AlgorithmChristofides    Algorithm = "christofides"
	AlgorithmTwoOpt          Algorithm = "two_opt"
	AlgorithmNearestNeighbor Algorithm = "nearest_neighbor"
)

// Strategy produces a site ordering (indices into the matrix's site
// slice) visiting every site exactly once. Home is a fixed anchor: tours
// conceptually start and end at matrix vertex 0.
type Strategy func(m *Matrix) ([]int, error)

// Thresholds are the size bands routing site sets to strategies. They
// are configuration, not constants.
type Thresholds struct {
	BruteForceMax   int // N <= this: exhaustive search
	ChristofidesMax int // above brute force up to this: MST + matching
	TwoOptMax       int // above christofides up to this: 2-opt local search
	// above TwoOptMax: nearest neighbor
}

// DefaultThresholds returns the stock size bands.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BruteForceMax:   8,
		ChristofidesMax: 10,
		TwoOptMax:       25,
	}
}

// band maps a size ceiling to a strategy; the table replaces ad-hoc
// branching so bands can be retuned or extended without touching the
// scheduler.
type band struct {
	max      int
	algo     Algorithm
	strategy Strategy
}

// SelectStrategy maps a site count onto a strategy through the threshold
// table. The mapping is total: any positive n resolves to exactly one
// strategy, deterministically.
func SelectStrategy(n int, t Thresholds) (Strategy, Algorithm) {
	bands := []band{
		{t.BruteForceMax, AlgorithmBruteForce, BruteForce},
		{t.ChristofidesMax, AlgorithmChristofides, Christofides},
		{t.TwoOptMax, AlgorithmTwoOpt, TwoOpt},
	}
	for _, b := range bands {
		if n <= b.max {
			return b.strategy, b.algo
		}
	}
	return NearestNeighbor, AlgorithmNearestNeighbor
}

// BuildTour validates the inputs, builds the distance matrix, selects a
// strategy by size, and returns the resulting ordering together with the
// matrix for downstream scheduling and scoring.
func BuildTour(home domain.Point, sites []domain.Site, t Thresholds) (*Matrix, []int, Algorithm, error) {
	m, err := NewMatrix(home, sites)
	if err != nil {
		return nil, nil, "", err
	}
	strategy, algo := SelectStrategy(m.Len(), t)
	order, err := strategy(m)
	if err != nil {
		return nil, nil, "", err
	}
	return m, order, algo, nil
}
