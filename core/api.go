// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of graph sizes and flags.
type GraphStats struct {
	NodeCount     int  // number of nodes
	EdgeCount     int  // number of stored edges, including dangling ones
	DanglingEdges int  // edges whose source or destination is not a node
	NegativeEdges int  // edges with Cost < 0
	StrictEdges   bool // AddEdge validates endpoints
}

// StrictEdges reports whether AddEdge validates endpoints against the node catalog.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) StrictEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strictEdges
}

// Stats produces a deterministic snapshot of catalog sizes, including a
// classification of edges that reference unknown nodes or carry negative costs.
//
// Implementation:
//   - Stage 1: Acquire the read lock and snapshot flags and counts.
//   - Stage 2: Scan every adjacency sequence once.
//
// Behavior highlights:
//   - NegativeEdges > 0 means the priority-queue algorithm's precondition does not hold.
//
// Complexity:
//   - Time O(N+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount:   len(g.nodes),
		EdgeCount:   g.edgeCount,
		StrictEdges: g.strictEdges,
	}
	for from, edges := range g.adjacency {
		_, srcKnown := g.nodes[from]
		for _, e := range edges {
			if _, dstKnown := g.nodes[e.To]; !srcKnown || !dstKnown {
				stats.DanglingEdges++
			}
			if e.Cost < 0 {
				stats.NegativeEdges++
			}
		}
	}

	return &stats
}
