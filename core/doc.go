// Package core provides the thread-safe in-memory router graph used by the
// shortest-path packages.
//
// The Graph G = (N,E) is a directed multigraph:
//
//   - Nodes are keyed by NodeID (an int64) and carry an optional Name.
//   - Edges are values {From, To, Cost} appended to the adjacency sequence of
//     From in insertion order. Parallel edges are kept; costs may be negative.
//   - Edges may reference destination keys that are not nodes unless the graph
//     was built WithStrictEdges().
//   - AddNode rejects a key that already exists with ErrDuplicateNode.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph
//	AddNode(id NodeID, opts ...NodeOption) error      // O(1)
//	AddEdge(from, to NodeID, cost int64) error        // O(1)†
//
//	// Queries
//	HasNode(id) bool, Node(id) (Node, error)          // O(1)
//	Nodes() []NodeID                                  // O(N log N), sorted
//	Edges(id) []Edge                                  // O(deg), copy
//	NodeCount(), EdgeCount(), Stats()
//
//	// Borrowed access for algorithms
//	Read(fn func(View) error) error
//
// Algorithms never copy the catalogs. They call Read, which holds the read
// lock for the whole computation and hands out a View whose OutEdges and
// AllEdges are iterators over the stored slices. Any number of computations
// may run concurrently; AddNode/AddEdge wait until they finish.
//
// Errors:
//
//	ErrNodeNotFound  — lookup of an absent key (wrapped with the key).
//	ErrDuplicateNode — AddNode on an existing key.
//	ErrNilGraph      — Read on a nil *Graph.
//
// Example:
//
//	g := core.NewGraph()
//	for id := core.NodeID(1); id <= 4; id++ {
//	    _ = g.AddNode(id)
//	}
//	_ = g.AddEdge(1, 2, 4)
//	_ = g.AddEdge(1, 3, 1)
package core
