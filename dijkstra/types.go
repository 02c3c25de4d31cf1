// Package dijkstra defines error sentinels and configuration options
// for Dijkstra's shortest-path algorithm on router graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this stay unreachable.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//	– NegativeCheck:    pre-scan all edges and refuse negative costs.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNegativeWeight  if NegativeCheck is on and a negative cost is found.
//	– ErrOptionViolation if an option received an invalid value.
//
// An unknown source fails with an error matching core.ErrNodeNotFound.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge cost was detected while
	// the negative check was enabled.
	ErrNegativeWeight = errors.New("dijkstra: negative edge cost encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – cap on distances to explore. Must be ≥ 0. Default math.MaxInt64 (no cap).
// InfEdgeThreshold – edges with cost ≥ this threshold are skipped. Must be > 0.
//
//	Default math.MaxInt64 (no obstacles).
//
// NegativeCheck    – fail with ErrNegativeWeight instead of running on negative costs.
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Cost threshold above which edges are non-traversable
	NegativeCheck    bool  // Reject graphs with negative costs up front

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when Dijkstra is invoked.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Negative values cause ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which edges are
// considered non-traversable. Zero or negative values cause ErrOptionViolation.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithNegativeCheck makes Dijkstra scan all edges first and fail with
// ErrNegativeWeight if any cost is negative. Without it, negative costs
// violate the precondition and the result is unspecified.
func WithNegativeCheck() Option {
	return func(o *Options) {
		o.NegativeCheck = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance:      math.MaxInt64 (explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
//   - NegativeCheck:    false.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
