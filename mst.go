package disjointset

import "log"

// Kruskal computes a minimum spanning forest of the graph with n vertices
// and the given edges, each [from, to, weight]. Edges are considered in
// ascending weight order (ties keep their input order) and accepted when
// they join two different components. Returns the accepted edges in the
// order they were accepted.
//
// If the graph is disconnected the result has fewer than n-1 edges and a
// warning is logged.
func Kruskal(edges [][3]float64, n int) ([][3]float64, error) {
	if err := validateEdges(edges, n); err != nil {
		return nil, err
	}
	if n <= 1 {
		return nil, nil
	}

	f, _ := New(n)
	result := make([][3]float64, 0, n-1)
	for _, edge := range sortedByWeight(edges) {
		a, b := int(edge[0]), int(edge[1])
		if f.find(a) == f.find(b) {
			continue
		}
		f.union(a, b)
		result = append(result, edge)
		if len(result) == n-1 {
			break
		}
	}

	if len(result) < n-1 {
		log.Printf("disjointset: graph is disconnected, spanning forest has %d trees", f.Count())
	}

	return result, nil
}
