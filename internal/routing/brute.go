package routing

import "math"

// bruteForceHardCap bounds exhaustive search regardless of configured
// thresholds; above it the factorial cost is never acceptable.
const bruteForceHardCap = 10

// BruteForce enumerates every permutation of the site set and returns
// the ordering with minimum closed-tour distance (home legs included).
// The result is the global optimum for the given set. O(n!) time, so the
// selector only routes here for small instances; inputs above the hard
// cap are rejected outright.
func BruteForce(m *Matrix) ([]int, error) {
	n := m.Len()
	if n == 0 {
		return nil, ErrEmptySiteSet
	}
	if n > bruteForceHardCap {
		return nil, ErrSizeLimit
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := make([]int, n)
	copy(best, perm)
	bestD := m.TourDistance(perm)

	// Heap's algorithm, iterative form. Strict improvement keeps the
	// first-found (input-order) permutation on exact ties.
	c := make([]int, n)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			if d := m.TourDistance(perm); d < bestD {
				bestD = d
				copy(best, perm)
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	if math.IsNaN(bestD) {
		return nil, ErrInvalidCoordinate
	}
	return best, nil
}
