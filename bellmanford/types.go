// Package bellmanford provides error definitions and options for the
// relaxation shortest-path algorithm with negative-cycle detection.
package bellmanford

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors for Bellman-Ford execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNegativeCycle is returned when a cycle of negative total cost is
	// reachable from the source. No distances are reported in that case.
	ErrNegativeCycle = errors.New("bellmanford: graph contains a negative cost cycle")
)

// NegativeCycleError describes the negative cycle that stopped a run.
// It matches ErrNegativeCycle under errors.Is.
type NegativeCycleError struct {
	// Edge is the first edge that still relaxed after N-1 passes.
	Edge core.Edge

	// Cycle lists the cycle's nodes in edge order, closed on its first node
	// (e.g. [2 3 2]). Nil if the predecessor walk did not close a loop.
	Cycle []core.NodeID
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: edge %d→%d cost=%d still relaxes", ErrNegativeCycle, e.Edge.From, e.Edge.To, e.Edge.Cost)
	if len(e.Cycle) > 0 {
		b.WriteString(" (cycle ")
		for i, id := range e.Cycle {
			if i > 0 {
				b.WriteString("→")
			}
			b.WriteString(id.String())
		}
		b.WriteString(")")
	}

	return b.String()
}

// Unwrap lets errors.Is(err, ErrNegativeCycle) succeed.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// Option configures Bellman-Ford via functional arguments.
type Option func(*Options)

// Options holds parameters that customize a run.
type Options struct {
	// EarlyExit stops the relaxation passes as soon as one pass changes
	// nothing. Distances are identical either way; only the work differs.
	EarlyExit bool
}

// DefaultOptions returns Options performing exactly N-1 relaxation passes.
func DefaultOptions() Options {
	return Options{EarlyExit: false}
}

// WithEarlyExit ends the relaxation phase after the first pass without updates.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}
