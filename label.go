package disjointset

// Label converts spanning tree edges into a single-linkage dendrogram in
// scipy format. mstEdges is [][3]float64 where each edge is [from, to, weight].
// Returns [][4]float64 dendrogram rows: [left, right, distance, mergedSize].
// Points keep their IDs 0..n-1 and each merge creates the next cluster ID,
// starting at n. Edges whose endpoints are already merged are skipped.
func Label(mstEdges [][3]float64, n int) ([][4]float64, error) {
	if err := validateEdges(mstEdges, n); err != nil {
		return nil, err
	}
	if len(mstEdges) == 0 {
		return nil, nil
	}

	f, _ := New(n)

	// clusterID maps a forest root to the dendrogram ID of its set. Roots
	// change as sets merge, so the ID is moved to the surviving root.
	clusterID := make([]int, n)
	for i := range clusterID {
		clusterID[i] = i
	}
	nextLabel := n

	result := make([][4]float64, 0, len(mstEdges))

	for _, edge := range sortedByWeight(mstEdges) {
		aa := f.find(int(edge[0]))
		bb := f.find(int(edge[1]))
		if aa == bb {
			continue
		}
		newSize := -f.slots[aa] - f.slots[bb]

		result = append(result, [4]float64{
			float64(clusterID[aa]),
			float64(clusterID[bb]),
			edge[2],
			float64(newSize),
		})

		root := f.union(aa, bb)
		clusterID[root] = nextLabel
		nextLabel++
	}

	return result, nil
}
