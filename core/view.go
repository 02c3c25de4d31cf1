// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Borrowed, read-only access to the graph for algorithms.
// Determinism:
//   - Nodes() is sorted ascending; AllEdges() walks sources in ascending key
//     order and each adjacency sequence in insertion order.
// Concurrency:
//   - A View is valid only inside the Graph.Read callback, which holds the read lock.

package core

import (
	"iter"
	"slices"
)

// View exposes the node and adjacency catalogs of a Graph without copying them.
//
// A View must not be retained after the Read callback returns, and the
// sequences it yields must not be used to mutate the graph.
type View struct {
	g     *Graph
	order []NodeID
}

// Read runs fn with a View of g while holding the read lock, so the graph
// cannot be mutated for the duration of fn. Concurrent Read calls proceed in
// parallel. fn must not call mutating methods on g.
//
// Errors:
//   - ErrNilGraph if g is nil; otherwise whatever fn returns.
//
// Complexity: O(N log N) to order the node keys, plus fn.
func (g *Graph) Read(fn func(v View) error) error {
	if g == nil {
		return ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(View{g: g, order: sortedKeys(g.nodes)})
}

// Nodes returns the node keys in ascending order. The slice is shared by all
// calls on this View; callers must not modify it.
func (v View) Nodes() []NodeID { return v.order }

// NodeCount returns the number of nodes.
func (v View) NodeCount() int { return len(v.order) }

// HasNode reports whether id is a known node.
func (v View) HasNode(id NodeID) bool {
	_, ok := v.g.nodes[id]

	return ok
}

// OutEdges yields the outgoing edges of id in insertion order.
func (v View) OutEdges(id NodeID) iter.Seq[Edge] {
	return slices.Values(v.g.adjacency[id])
}

// AllEdges yields every edge whose source is a known node, grouped by source
// in ascending key order.
func (v View) AllEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, id := range v.order {
			for _, e := range v.g.adjacency[id] {
				if !yield(e) {
					return
				}
			}
		}
	}
}
