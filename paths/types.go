// Package paths defines the per-run result shared by the shortest-path
// algorithms and the helpers that turn predecessor links into paths.
package paths

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Unreachable is the distance reported for nodes with no path from the source.
const Unreachable int64 = math.MaxInt64

// ErrUnreachable is returned by PathTo when the target has no path from the source.
var ErrUnreachable = errors.New("paths: target unreachable from source")

// Tree is the read-only view of a shortest-path tree that Reconstruct walks.
// Predecessor reports the node preceding id on its best path, or false when
// id is the source or unreachable.
type Tree interface {
	Predecessor(id core.NodeID) (core.NodeID, bool)
	Reachable(id core.NodeID) bool
}

// Result holds the outcome of one shortest-path computation:
//   - Source: the node the run started from.
//   - dist: distance per known node, Unreachable when no path exists.
//   - prev: predecessor per reached node except the source.
//
// A Result is built by the algorithm that owns it and is read-only afterwards.
type Result struct {
	Source core.NodeID
	dist   map[core.NodeID]int64
	prev   map[core.NodeID]core.NodeID
}

// NewResult allocates a Result for the given nodes, with every distance set to
// Unreachable except the source, which is 0.
func NewResult(source core.NodeID, nodes []core.NodeID) *Result {
	r := &Result{
		Source: source,
		dist:   make(map[core.NodeID]int64, len(nodes)),
		prev:   make(map[core.NodeID]core.NodeID, len(nodes)),
	}
	for _, id := range nodes {
		r.dist[id] = Unreachable
	}
	r.dist[source] = 0

	return r
}

// Known reports whether id has an entry in the result.
func (r *Result) Known(id core.NodeID) bool {
	_, ok := r.dist[id]

	return ok
}

// Distance returns the distance to id; ok is false when id is not a node of the graph.
func (r *Result) Distance(id core.NodeID) (d int64, ok bool) {
	d, ok = r.dist[id]

	return d, ok
}

// Reachable reports whether id has a finite distance.
func (r *Result) Reachable(id core.NodeID) bool {
	d, ok := r.dist[id]

	return ok && d != Unreachable
}

// Predecessor implements Tree.
func (r *Result) Predecessor(id core.NodeID) (core.NodeID, bool) {
	p, ok := r.prev[id]

	return p, ok
}

// Relax records d as the distance to v reached via u, if d is strictly better.
// Unknown v is ignored. It reports whether the distance was updated.
func (r *Result) Relax(u, v core.NodeID, d int64) bool {
	cur, ok := r.dist[v]
	if !ok || d >= cur {
		return false
	}
	r.dist[v] = d
	r.prev[v] = u

	return true
}

// Distances returns a copy of the distance map.
func (r *Result) Distances() map[core.NodeID]int64 {
	out := make(map[core.NodeID]int64, len(r.dist))
	for id, d := range r.dist {
		out[id] = d
	}

	return out
}

// Predecessors returns a copy of the predecessor map. The source and
// unreachable nodes have no entry.
func (r *Result) Predecessors() map[core.NodeID]core.NodeID {
	out := make(map[core.NodeID]core.NodeID, len(r.prev))
	for id, p := range r.prev {
		out[id] = p
	}

	return out
}

// Len returns the number of nodes covered by the result.
func (r *Result) Len() int { return len(r.dist) }

// PathTo reconstructs the path from the source to dest.
// Returns an error if dest is not a node of the graph or was not reached.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Known(dest) {
		return nil, fmt.Errorf("paths: %w: %d", core.ErrNodeNotFound, dest)
	}
	path := Reconstruct(r, dest)
	if path == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}

	return path, nil
}

// AddCost returns d+w, or ok=false when d is Unreachable or the sum would
// overflow int64.
func AddCost(d, w int64) (sum int64, ok bool) {
	if d == Unreachable {
		return 0, false
	}
	if w > 0 && d > math.MaxInt64-w {
		return 0, false
	}
	if w < 0 && d < math.MinInt64-w {
		return 0, false
	}

	return d + w, true
}
