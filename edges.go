package disjointset

import (
	"fmt"
	"math"
	"sort"
)

// validateEdges checks that every edge [from, to, weight] has integral
// endpoints in [0, n) and a weight that is not NaN.
func validateEdges(edges [][3]float64, n int) error {
	if n < 0 {
		return fmt.Errorf("disjointset: size must be >= 0, got %d: %w", n, ErrInvalidArgument)
	}
	for i, e := range edges {
		for _, v := range e[:2] {
			if v != math.Trunc(v) || v < 0 || v >= float64(n) {
				return fmt.Errorf("disjointset: edge %d endpoint %v not in [0, %d): %w", i, v, n, ErrOutOfRange)
			}
		}
		if math.IsNaN(e[2]) {
			return fmt.Errorf("disjointset: edge %d has NaN weight: %w", i, ErrInvalidArgument)
		}
	}
	return nil
}

// sortedByWeight returns a copy of edges stably sorted by ascending weight.
func sortedByWeight(edges [][3]float64) [][3]float64 {
	sorted := make([][3]float64, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][2] < sorted[j][2]
	})
	return sorted
}

// forestFromEdges builds a Forest of size n and unions the endpoints of every
// edge accepted by keep. Edges must already be validated.
func forestFromEdges(edges [][3]float64, n int, keep func(weight float64) bool) *Forest {
	f, _ := New(n)
	for _, e := range edges {
		if keep == nil || keep(e[2]) {
			f.union(int(e[0]), int(e[1]))
		}
	}
	return f
}

// ConnectedComponents groups the points 0..n-1 by the edges [from, to, weight]
// connecting them. Weights are ignored. Each group is in ascending order and
// groups are ordered by their smallest member.
func ConnectedComponents(edges [][3]float64, n int) ([][]int, error) {
	if err := validateEdges(edges, n); err != nil {
		return nil, err
	}
	return forestFromEdges(edges, n, nil).Components(), nil
}
