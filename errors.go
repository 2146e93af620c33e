package disjointset

import "errors"

var (
	// ErrInvalidArgument is returned for a negative universe size and for
	// invalid Config values or edge weights.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when an index (or an edge endpoint) is not in
	// [0, n-1].
	ErrOutOfRange = errors.New("index out of range")
)
