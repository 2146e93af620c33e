package disjointset

import (
	"fmt"
	"math"
)

// Config controls threshold clustering.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// MinClusterSize is the smallest group of points reported as a cluster.
	// Points in smaller groups are labelled as noise.
	// Must be >= 1. Default: 1 (every group is a cluster).
	MinClusterSize int

	// MaxDistance is the largest edge weight that still merges two points.
	// Heavier edges are ignored. Must be >= 0 and not NaN; 0 is treated as
	// unset. Default: +Inf (every edge merges).
	MaxDistance float64
}

// Result contains the output of threshold clustering.
type Result struct {
	// Labels assigns each point to a cluster (0-indexed cluster ID) or -1 for
	// noise. Cluster IDs follow the order of each cluster's smallest point.
	Labels []int

	// Sizes holds the number of points in each cluster, indexed by cluster ID.
	Sizes []int

	// NumClusters is the number of clusters, excluding noise.
	NumClusters int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		MinClusterSize: 1,
		MaxDistance:    math.Inf(1),
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MinClusterSize == 0 {
		cfg.MinClusterSize = 1
	}
	if cfg.MaxDistance == 0 {
		cfg.MaxDistance = math.Inf(1)
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.MinClusterSize < 1 {
		return fmt.Errorf("disjointset: MinClusterSize must be >= 1, got %d: %w", cfg.MinClusterSize, ErrInvalidArgument)
	}
	if math.IsNaN(cfg.MaxDistance) || cfg.MaxDistance < 0 {
		return fmt.Errorf("disjointset: MaxDistance must be >= 0, got %f: %w", cfg.MaxDistance, ErrInvalidArgument)
	}
	return nil
}

// Cluster groups the points 0..n-1 by merging the endpoints of every edge
// [from, to, weight] whose weight is at most cfg.MaxDistance. Groups with
// fewer than cfg.MinClusterSize points are reported as noise.
func Cluster(edges [][3]float64, n int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validateEdges(edges, n); err != nil {
		return nil, err
	}

	f := forestFromEdges(edges, n, func(w float64) bool {
		return w <= cfg.MaxDistance
	})

	result := &Result{
		Labels: make([]int, n),
		Sizes:  []int{},
	}
	byRoot := make(map[int]int)
	for i := 0; i < n; i++ {
		r := f.root(i)
		size := -f.slots[r]
		if size < cfg.MinClusterSize {
			result.Labels[i] = -1
			continue
		}
		label, ok := byRoot[r]
		if !ok {
			label = result.NumClusters
			byRoot[r] = label
			result.Sizes = append(result.Sizes, size)
			result.NumClusters++
		}
		result.Labels[i] = label
	}

	return result, nil
}
