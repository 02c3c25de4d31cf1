// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/Edges/EdgeCount.
// Determinism:
//   - Edges(id) returns edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"slices"
)

// AddEdge appends a directed edge from→to with the given cost to the
// adjacency sequence of from.
//
// Steps:
//  1. Lock mu.
//  2. In strict mode, verify both endpoints are known nodes.
//  3. Append Edge{from,to,cost}; no deduplication, no cost validation.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, cost int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.strictEdges {
		if _, ok := g.nodes[from]; !ok {
			return fmt.Errorf("%w: edge source %d", ErrNodeNotFound, from)
		}
		if _, ok := g.nodes[to]; !ok {
			return fmt.Errorf("%w: edge destination %d", ErrNodeNotFound, to)
		}
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Cost: cost})
	g.edgeCount++

	return nil
}

// Edges returns a copy of the outgoing edges of id in insertion order.
// An unknown id yields an empty slice.
//
// Complexity: O(deg(id)).
// Concurrency: read lock on mu; the returned slice is owned by the caller.
func (g *Graph) Edges(id NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.adjacency[id])
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
