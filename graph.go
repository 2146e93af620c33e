package disjointset

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// graphIndex maps the nodes of a gonum graph onto dense indices 0..n-1 in
// ascending node ID order.
type graphIndex struct {
	nodes []graph.Node
	index map[int64]int
}

func newGraphIndex(g graph.Graph) graphIndex {
	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID() < nodes[j].ID()
	})
	index := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		index[n.ID()] = i
	}
	return graphIndex{nodes: nodes, index: index}
}

// edges visits every undirected edge once, as the index pair (a, b) with
// a < b. Self loops are skipped.
func (gi graphIndex) edges(g graph.Graph, fn func(a, b int)) {
	for a, u := range gi.nodes {
		it := g.From(u.ID())
		for it.Next() {
			b := gi.index[it.Node().ID()]
			if b > a {
				fn(a, b)
			}
		}
	}
}

// GraphComponents returns the connected components of g as groups of node
// IDs. Each group is in ascending ID order and groups are ordered by their
// smallest ID.
func GraphComponents(g graph.Undirected) [][]int64 {
	gi := newGraphIndex(g)
	f, _ := New(len(gi.nodes))
	gi.edges(g, func(a, b int) {
		f.union(a, b)
	})

	components := f.Components()
	result := make([][]int64, len(components))
	for i, members := range components {
		ids := make([]int64, len(members))
		for j, m := range members {
			ids[j] = gi.nodes[m].ID()
		}
		result[i] = ids
	}
	return result
}

// SpanningForest computes a minimum spanning forest of g with Kruskal.
// Returns the forest edges in acceptance order and their total weight.
func SpanningForest(g graph.WeightedUndirected) ([]graph.WeightedEdge, float64, error) {
	gi := newGraphIndex(g)
	var edges [][3]float64
	gi.edges(g, func(a, b int) {
		w := g.WeightedEdgeBetween(gi.nodes[a].ID(), gi.nodes[b].ID()).Weight()
		edges = append(edges, [3]float64{float64(a), float64(b), w})
	})

	mst, err := Kruskal(edges, len(gi.nodes))
	if err != nil {
		return nil, 0, err
	}

	result := make([]graph.WeightedEdge, len(mst))
	total := 0.0
	for i, e := range mst {
		result[i] = simple.WeightedEdge{
			F: gi.nodes[int(e[0])],
			T: gi.nodes[int(e[1])],
			W: e[2],
		}
		total += e[2]
	}
	return result, total, nil
}
