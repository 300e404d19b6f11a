package routing

import "math"

// NearestNeighbor builds a tour by repeatedly appending the unvisited
// site closest to the current location, starting from home. Ties are
// broken by lowest input index, so the result is deterministic for a
// given input ordering. O(n^2) time, O(n) space.
//
// Besides serving large instances directly, this tour seeds the 2-opt
// local search and the efficiency-score baseline.
func NearestNeighbor(m *Matrix) ([]int, error) {
	n := m.Len()
	if n == 0 {
		return nil, ErrEmptySiteSet
	}

	visited := make([]bool, n)
	order := make([]int, 0, n)
	cur := -1 // -1 means home

	for len(order) < n {
		best := -1
		bestD := math.Inf(1)
		for s := 0; s < n; s++ {
			if visited[s] {
				continue
			}
			var d float64
			if cur < 0 {
				d = m.HomeDist(s)
			} else {
				d = m.SiteDist(cur, s)
			}
			// Strict less keeps the lowest index on ties.
			if d < bestD {
				bestD = d
				best = s
			}
		}
		visited[best] = true
		order = append(order, best)
		cur = best
	}
	return order, nil
}
