package routing

import (
	"math"
	"sort"
)

// Christofides builds a tour via the classic pipeline: minimum spanning
// tree over home plus all sites, minimum-weight matching on odd-degree
// vertices, Eulerian circuit on the merged multigraph, and shortcutting
// repeated vertices down to a Hamiltonian tour anchored at home.
//
// The matching step is a deterministic greedy pairing rather than a true
// blossom solver, so the formal 1.5x bound is not guaranteed; in practice
// the tours land well within it on metric instances of the size this band
// serves. O(n^2) overall for dense instances.
func Christofides(m *Matrix) ([]int, error) {
	n := m.Len()
	if n == 0 {
		return nil, ErrEmptySiteSet
	}
	if n <= 2 {
		// Degenerate tours; every ordering is equivalent up to direction.
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		return order, nil
	}

	v := n + 1 // vertex count including home (vertex 0)

	adj, err := minimumSpanningTree(m, v)
	if err != nil {
		return nil, err
	}

	// Odd-degree vertices of the MST (always an even count).
	odd := make([]int, 0, v/2+1)
	for u := 0; u < v; u++ {
		if len(adj[u])%2 == 1 {
			odd = append(odd, u)
		}
	}

	greedyMatch(m, odd, adj)

	circuit := eulerianCircuit(adj, 0)

	// Shortcut repeated vertices, keeping the first occurrence.
	visited := make([]bool, v)
	order := make([]int, 0, n)
	for _, u := range circuit {
		if u == 0 || visited[u] {
			continue
		}
		visited[u] = true
		order = append(order, u-1)
	}
	return order, nil
}

// minimumSpanningTree runs dense Prim over the matrix vertices and
// returns the tree as adjacency lists. O(v^2) time.
func minimumSpanningTree(m *Matrix, v int) ([][]int, error) {
	inTree := make([]bool, v)
	bestCost := make([]float64, v)
	parent := make([]int, v)
	adj := make([][]int, v)

	for u := range bestCost {
		bestCost[u] = math.Inf(1)
		parent[u] = -1
	}
	bestCost[0] = 0

	for it := 0; it < v; it++ {
		u, minW := -1, math.Inf(1)
		for w := 0; w < v; w++ {
			if !inTree[w] && bestCost[w] < minW {
				minW, u = bestCost[w], w
			}
		}
		if u < 0 {
			return nil, ErrInvalidCoordinate
		}
		inTree[u] = true
		if p := parent[u]; p >= 0 {
			adj[u] = append(adj[u], p)
			adj[p] = append(adj[p], u)
		}
		for w := 0; w < v; w++ {
			if !inTree[w] && m.At(u, w) < bestCost[w] {
				bestCost[w] = m.At(u, w)
				parent[w] = u
			}
		}
	}
	return adj, nil
}

// greedyMatch pairs odd-degree vertices by ascending edge weight and adds
// the matching edges to the multigraph adjacency. Deterministic: edges
// sort by (weight, u, v). O(k^2 log k) for k odd vertices.
func greedyMatch(m *Matrix, odd []int, adj [][]int) {
	type edge struct {
		w    float64
		u, v int
	}
	edges := make([]edge, 0, len(odd)*(len(odd)-1)/2)
	for i := 0; i < len(odd); i++ {
		for j := i + 1; j < len(odd); j++ {
			edges = append(edges, edge{m.At(odd[i], odd[j]), odd[i], odd[j]})
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].w != edges[b].w {
			return edges[a].w < edges[b].w
		}
		if edges[a].u != edges[b].u {
			return edges[a].u < edges[b].u
		}
		return edges[a].v < edges[b].v
	})

	matched := make(map[int]bool, len(odd))
	for _, e := range edges {
		if matched[e.u] || matched[e.v] {
			continue
		}
		adj[e.u] = append(adj[e.u], e.v)
		adj[e.v] = append(adj[e.v], e.u)
		matched[e.u] = true
		matched[e.v] = true
		if len(matched) == len(odd) {
			break
		}
	}
}

// eulerianCircuit walks the multigraph with Hierholzer's algorithm,
// consuming edges as it goes. O(E) time.
func eulerianCircuit(adj [][]int, start int) []int {
	local := make([][]int, len(adj))
	for u := range adj {
		local[u] = append([]int(nil), adj[u]...)
	}

	var circuit []int
	stack := []int{start}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(local[u]) == 0 {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		w := local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		for i, x := range local[w] {
			if x == u {
				local[w] = append(local[w][:i], local[w][i+1:]...)
				break
			}
		}
		stack = append(stack, w)
	}
	return circuit
}
