// Package routing selects and runs a shortest-path algorithm over a router
// graph and turns its result into a routing table.
//
// Both algorithms satisfy Algorithm, so a caller picks one by Selector and
// handles the outcome uniformly:
//
//	res, err := routing.ComputeShortestPaths(g, 1, routing.Relaxation)
//	switch {
//	case errors.Is(err, core.ErrNodeNotFound):       // unknown source
//	case errors.Is(err, routing.ErrInvalidSelector):  // bad menu choice
//	case errors.Is(err, bellmanford.ErrNegativeCycle):
//	}
package routing

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/bellmanford"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/paths"
)

// ErrInvalidSelector is returned when the algorithm choice is not recognized.
var ErrInvalidSelector = errors.New("routing: invalid algorithm selector")

// Algorithm computes single-source shortest paths over the graph it was
// created for. Implementations borrow the graph and never mutate it.
type Algorithm interface {
	// Name identifies the algorithm in logs and reports.
	Name() string

	// Compute runs from source and returns per-node distances and predecessors.
	Compute(source core.NodeID) (*paths.Result, error)
}

// Option configures New.
type Option func(*config)

type config struct {
	logger *zap.Logger
	dOpts  []dijkstra.Option
	bfOpts []bellmanford.Option
}

// WithLogger routes debug-level run logs to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDijkstraOptions passes options through to the priority-queue algorithm.
func WithDijkstraOptions(opts ...dijkstra.Option) Option {
	return func(c *config) { c.dOpts = append(c.dOpts, opts...) }
}

// WithBellmanFordOptions passes options through to the relaxation algorithm.
func WithBellmanFordOptions(opts ...bellmanford.Option) Option {
	return func(c *config) { c.bfOpts = append(c.bfOpts, opts...) }
}

// New returns the algorithm named by sel, bound to g.
// An unrecognized selector fails with ErrInvalidSelector before anything runs.
func New(sel Selector, g *core.Graph, opts ...Option) (Algorithm, error) {
	if !sel.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSelector, int(sel))
	}
	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	var run func(core.NodeID) (*paths.Result, error)
	switch sel {
	case PriorityQueue:
		run = func(src core.NodeID) (*paths.Result, error) { return dijkstra.Dijkstra(g, src, c.dOpts...) }
	case Relaxation:
		run = func(src core.NodeID) (*paths.Result, error) { return bellmanford.BellmanFord(g, src, c.bfOpts...) }
	}

	return &algorithm{
		name:   sel.String(),
		run:    run,
		logger: c.logger.With(zap.String("algorithm", sel.String())),
	}, nil
}

// ComputeShortestPaths runs the algorithm named by sel from source over g.
func ComputeShortestPaths(g *core.Graph, source core.NodeID, sel Selector, opts ...Option) (*paths.Result, error) {
	alg, err := New(sel, g, opts...)
	if err != nil {
		return nil, err
	}

	return alg.Compute(source)
}

// ReconstructPath returns the source→target route recorded in r, or nil when
// target is unreachable.
func ReconstructPath(r *paths.Result, target core.NodeID) []core.NodeID {
	return paths.Reconstruct(r, target)
}

// algorithm adapts a package-level algorithm function to Algorithm.
type algorithm struct {
	name   string
	run    func(core.NodeID) (*paths.Result, error)
	logger *zap.Logger
}

func (a *algorithm) Name() string { return a.name }

func (a *algorithm) Compute(source core.NodeID) (*paths.Result, error) {
	start := time.Now()
	res, err := a.run(source)
	if err != nil {
		a.logger.Debug("shortest path computation failed",
			zap.Int64("source", int64(source)),
			zap.Error(err),
		)
		return nil, err
	}
	a.logger.Debug("shortest path computation finished",
		zap.Int64("source", int64(source)),
		zap.Int("nodes", res.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}
