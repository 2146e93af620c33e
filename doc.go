// Package disjointset implements a disjoint-set (Union-Find) forest over a
// fixed universe of dense integer indices 0..n-1, together with the classic
// algorithms built on top of it.
//
// The forest uses union by size and two-pass path compression, so a long
// sequence of operations runs in near-constant amortized time per operation.
//
// Basic usage:
//
//	f, err := disjointset.New(10)
//	if err != nil {
//		return err
//	}
//	_ = f.Union(1, 2)
//	ok, _ := f.Connected(1, 2) // true
//	size, _ := f.SizeOf(2)     // 2
//
// Every index argument is checked before the forest is touched; errors wrap
// [ErrOutOfRange] or [ErrInvalidArgument] and can be tested with errors.Is.
// A Forest is not safe for concurrent use; callers that share one must
// serialize access themselves.
//
// # Algorithms
//
// Edge lists use the [from, to, weight] format:
//
//	mst, err := disjointset.Kruskal(edges, n)           // minimum spanning forest
//	dendro, err := disjointset.Label(mst, n)            // single-linkage dendrogram
//	groups, err := disjointset.ConnectedComponents(edges, n)
//	result, err := disjointset.Cluster(edges, n, disjointset.DefaultConfig())
//
// [GraphComponents] and [SpanningForest] accept gonum graphs directly.
package disjointset
