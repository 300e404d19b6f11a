package routing

// twoOptCapFactor scales the iteration cap: at most capFactor*n^2
// accepted moves before the search stops. First-improvement 2-opt
// converges long before this on realistic instances; the cap exists to
// guarantee termination.
const twoOptCapFactor = 10

// TwoOpt builds a nearest-neighbor tour and improves it with
// deterministic first-improvement 2-opt: reverse a contiguous segment
// whenever doing so strictly reduces the closed-tour distance, restart
// the scan after each accepted move, and stop at a local optimum or the
// iteration cap. The output distance is never worse than the seed's.
func TwoOpt(m *Matrix) ([]int, error) {
	seed, err := NearestNeighbor(m)
	if err != nil {
		return nil, err
	}
	return improveTwoOpt(m, seed), nil
}

// improveTwoOpt runs the 2-opt loop on an existing ordering. The input
// slice is not modified.
func improveTwoOpt(m *Matrix, seed []int) []int {
	n := len(seed)
	if n < 3 {
		out := make([]int, n)
		copy(out, seed)
		return out
	}

	cur := make([]int, n)
	copy(cur, seed)

	maxMoves := twoOptCapFactor * n * n
	moves := 0

	// endpoint returns the vertex before/after a tour position, with home
	// anchoring both ends of the closed tour.
	prev := func(i int) int {
		if i == 0 {
			return 0 // home vertex
		}
		return cur[i-1] + 1
	}
	next := func(i int) int {
		if i == n-1 {
			return 0
		}
		return cur[i+1] + 1
	}

	improved := true
	for improved && moves < maxMoves {
		improved = false

		for i := 0; i < n-1 && !improved; i++ {
			for k := i + 1; k < n; k++ {
				// Reversing cur[i..k] replaces edges (prev(i),cur[i]) and
				// (cur[k],next(k)) with (prev(i),cur[k]) and (cur[i],next(k)).
				a := prev(i)
				b := cur[i] + 1
				c := cur[k] + 1
				d := next(k)

				delta := m.At(a, c) + m.At(b, d) - m.At(a, b) - m.At(c, d)
				if delta < -1e-12 {
					for lo, hi := i, k; lo < hi; lo, hi = lo+1, hi-1 {
						cur[lo], cur[hi] = cur[hi], cur[lo]
					}
					moves++
					improved = true
					break
				}
			}
		}
	}
	return cur
}
