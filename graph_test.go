package disjointset

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// randomWeightedGraph builds a sparse weighted graph whose node IDs are not
// dense, so the index mapping is exercised.
func randomWeightedGraph(seed int64, nodes, edges int) *simple.WeightedUndirectedGraph {
	rng := rand.New(rand.NewSource(seed))
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	id := func(i int) int64 { return int64(100 + 3*i) }
	for i := 0; i < nodes; i++ {
		g.AddNode(simple.Node(id(i)))
	}
	for k := 0; k < edges; k++ {
		a, b := rng.Intn(nodes), rng.Intn(nodes)
		if a == b {
			continue
		}
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(id(a)),
			T: simple.Node(id(b)),
			W: rng.Float64() * 10,
		})
	}
	return g
}

// gonumComponents returns topo.ConnectedComponents as sorted ID groups.
func gonumComponents(g graph.Undirected) [][]int64 {
	var groups [][]int64
	for _, cc := range topo.ConnectedComponents(g) {
		ids := make([]int64, len(cc))
		for i, n := range cc {
			ids[i] = n.ID()
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		groups = append(groups, ids)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}

func TestGraphComponents_Small(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for _, id := range []int64{7, 2, 9, 4, 11} {
		g.AddNode(simple.Node(id))
	}
	g.SetEdge(simple.Edge{F: simple.Node(7), T: simple.Node(11)})
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(4)})

	want := [][]int64{{2, 4}, {7, 11}, {9}}
	if diff := cmp.Diff(want, GraphComponents(g)); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
}

func TestGraphComponents_Empty(t *testing.T) {
	g := simple.NewUndirectedGraph()
	if got := GraphComponents(g); len(got) != 0 {
		t.Errorf("expected no components, got %v", got)
	}
}

func TestGraphComponents_MatchesTopo(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g := randomWeightedGraph(seed, 60, 45)
		if diff := cmp.Diff(gonumComponents(g), GraphComponents(g)); diff != "" {
			t.Errorf("seed %d: components differ from topo (-topo +got):\n%s", seed, diff)
		}
	}
}

func TestSpanningForest_MatchesPathKruskal(t *testing.T) {
	for _, seed := range []int64{4, 5, 6} {
		g := randomWeightedGraph(seed, 40, 120)

		edges, total, err := SpanningForest(g)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		want := path.Kruskal(dst, g)
		if math.Abs(total-want) > 1e-9 {
			t.Errorf("seed %d: total weight = %f, gonum Kruskal = %f", seed, total, want)
		}

		components := len(gonumComponents(g))
		if len(edges) != g.Nodes().Len()-components {
			t.Errorf("seed %d: %d forest edges, want %d", seed, len(edges), g.Nodes().Len()-components)
		}

		sum := 0.0
		for _, e := range edges {
			w, ok := g.Weight(e.From().ID(), e.To().ID())
			if !ok || w != e.Weight() {
				t.Errorf("seed %d: edge %d-%d weight %f not in graph", seed, e.From().ID(), e.To().ID(), e.Weight())
			}
			sum += e.Weight()
		}
		if math.Abs(sum-total) > 1e-9 {
			t.Errorf("seed %d: edges sum to %f, reported total %f", seed, sum, total)
		}
	}
}

func TestSpanningForest_Triangle(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(3), W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(3), W: 5})

	edges, total, err := SpanningForest(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %f, want 3", total)
	}
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
	if edges[0].From().ID() != 1 || edges[0].To().ID() != 2 {
		t.Errorf("first edge = %d-%d, want 1-2", edges[0].From().ID(), edges[0].To().ID())
	}
}
