// Package bellmanford implements the relaxation shortest-path algorithm for
// router graphs, tolerating negative link costs and detecting negative cycles
// reachable from the source.
//
// Complexity:
//
//   - Time:   O(N·E)
//   - Memory: O(N)
package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/paths"
)

// BellmanFord computes shortest distances from source to every node of g.
//
// It performs N-1 passes over all edges (N = node count), relaxing (u,v,w)
// whenever u is reached and dist[u]+w < dist[v]. One more pass follows: if any
// edge still relaxes, a negative cycle is reachable from source and the run
// fails with a *NegativeCycleError (errors.Is ErrNegativeCycle) and no result.
//
// Edges are visited in ascending source order and, per source, in insertion
// order, so results are deterministic. Edges to keys that are not nodes are
// ignored.
//
// Returns ErrNilGraph for a nil graph and an error matching
// core.ErrNodeNotFound when source is not a node.
func BellmanFord(g *core.Graph, source core.NodeID, opts ...Option) (*paths.Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var res *paths.Result
	err := g.Read(func(v core.View) error {
		if !v.HasNode(source) {
			return fmt.Errorf("bellmanford: source %d: %w", source, core.ErrNodeNotFound)
		}

		r := &relaxer{view: v, res: paths.NewResult(source, v.Nodes())}

		// 1) N-1 relaxation passes.
		for i := 1; i < v.NodeCount(); i++ {
			if !r.pass() && o.EarlyExit {
				break
			}
		}

		// 2) Detection pass.
		if err := r.detect(); err != nil {
			return err
		}
		res = r.res

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// relaxer encapsulates mutable Bellman-Ford state.
type relaxer struct {
	view core.View
	res  *paths.Result
}

// try relaxes a single edge and reports whether dist[e.To] improved.
func (r *relaxer) try(e core.Edge) bool {
	du, _ := r.res.Distance(e.From)
	nd, ok := paths.AddCost(du, e.Cost)
	if !ok {
		return false
	}

	return r.res.Relax(e.From, e.To, nd)
}

// pass relaxes every edge once and reports whether anything changed.
func (r *relaxer) pass() bool {
	changed := false
	for e := range r.view.AllEdges() {
		if r.try(e) {
			changed = true
		}
	}

	return changed
}

// detect runs the extra pass. The first edge that still relaxes is reported;
// the pass is completed so the last relaxed node can be traced back onto the cycle.
func (r *relaxer) detect() error {
	var (
		first *core.Edge
		last  core.NodeID
	)
	for e := range r.view.AllEdges() {
		if !r.try(e) {
			continue
		}
		if first == nil {
			first = &e
		}
		last = e.To
	}
	if first == nil {
		return nil
	}

	return &NegativeCycleError{
		Edge:  *first,
		Cycle: paths.FindCycle(r.res, last, r.view.NodeCount()),
	}
}
