package disjointset

import "fmt"

// Forest is a disjoint-set forest over the indices 0..n-1 with path
// compression and union by size.
//
// Each index owns a single slot. A negative slot marks a root and holds the
// negated size of its set; a non-negative slot is the index of the parent.
// Forest is not safe for concurrent use.
type Forest struct {
	slots []int
}

// New creates a Forest of n singleton sets. It returns an error wrapping
// ErrInvalidArgument if n is negative.
func New(n int) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("disjointset: size must be >= 0, got %d: %w", n, ErrInvalidArgument)
	}
	slots := make([]int, n)
	for i := range slots {
		slots[i] = -1 // singleton root of size 1
	}
	return &Forest{slots: slots}, nil
}

// Len returns the number of elements in the universe.
func (f *Forest) Len() int {
	return len(f.slots)
}

func (f *Forest) validate(i int) error {
	if i < 0 || i >= len(f.slots) {
		return fmt.Errorf("disjointset: index %d not in [0, %d): %w", i, len(f.slots), ErrOutOfRange)
	}
	return nil
}

// Find returns the root of the set containing i. Every index on the path
// from i to the root is reattached directly to the root.
func (f *Forest) Find(i int) (int, error) {
	if err := f.validate(i); err != nil {
		return 0, err
	}
	return f.find(i), nil
}

// find assumes i is valid.
func (f *Forest) find(i int) int {
	if f.slots[i] < 0 {
		return i
	}

	// Walk to the root, counting links.
	root := i
	links := 0
	for f.slots[root] >= 0 {
		root = f.slots[root]
		links++
	}

	// Walk the same links again, pointing each one at the root.
	for ; links > 0; links-- {
		i, f.slots[i] = f.slots[i], root
	}
	return root
}

// root walks to the root of i without modifying the forest.
func (f *Forest) root(i int) int {
	for f.slots[i] >= 0 {
		i = f.slots[i]
	}
	return i
}

// SizeOf returns the number of elements in the set containing i. Unlike
// Find it never changes the shape of the forest.
func (f *Forest) SizeOf(i int) (int, error) {
	if err := f.validate(i); err != nil {
		return 0, err
	}
	return -f.slots[f.root(i)], nil
}

// Parent returns the raw slot of i: the parent index for a non-root, or the
// negated set size for a root.
func (f *Forest) Parent(i int) (int, error) {
	if err := f.validate(i); err != nil {
		return 0, err
	}
	return f.slots[i], nil
}

// Connected reports whether a and b belong to the same set.
func (f *Forest) Connected(a, b int) (bool, error) {
	if err := f.validate(a); err != nil {
		return false, err
	}
	if err := f.validate(b); err != nil {
		return false, err
	}
	return f.find(a) == f.find(b), nil
}

// Union merges the sets containing a and b. The root of the smaller set is
// attached under the root of the larger one; when the sizes are equal, a's
// root goes under b's root. Union of two connected elements leaves every
// set size unchanged, although the connectivity check may compress paths.
func (f *Forest) Union(a, b int) error {
	if err := f.validate(a); err != nil {
		return err
	}
	if err := f.validate(b); err != nil {
		return err
	}
	f.union(a, b)
	return nil
}

// union assumes a and b are valid. It returns the root of the merged set.
func (f *Forest) union(a, b int) int {
	rootA := f.find(a)
	rootB := f.find(b)
	if rootA == rootB {
		return rootA
	}

	sizeA := -f.slots[rootA]
	sizeB := -f.slots[rootB]
	if sizeA <= sizeB {
		f.slots[rootA] = rootB
		f.slots[rootB] = -(sizeA + sizeB)
		return rootB
	}
	f.slots[rootB] = rootA
	f.slots[rootA] = -(sizeA + sizeB)
	return rootA
}

// Count returns the number of disjoint sets.
func (f *Forest) Count() int {
	count := 0
	for _, v := range f.slots {
		if v < 0 {
			count++
		}
	}
	return count
}

// Roots returns the root of every set in ascending order.
func (f *Forest) Roots() []int {
	roots := make([]int, 0, f.Count())
	for i, v := range f.slots {
		if v < 0 {
			roots = append(roots, i)
		}
	}
	return roots
}

// Labels assigns each index a dense component label. Labels are numbered
// 0, 1, ... in order of the smallest member of each set.
func (f *Forest) Labels() []int {
	labels := make([]int, len(f.slots))
	byRoot := make(map[int]int)
	for i := range f.slots {
		r := f.root(i)
		label, ok := byRoot[r]
		if !ok {
			label = len(byRoot)
			byRoot[r] = label
		}
		labels[i] = label
	}
	return labels
}

// Components returns the members of every set. Each group is in ascending
// order and groups are ordered by their smallest member.
func (f *Forest) Components() [][]int {
	labels := f.Labels()
	groups := make([][]int, f.Count())
	for i, label := range labels {
		groups[label] = append(groups[label], i)
	}
	return groups
}
