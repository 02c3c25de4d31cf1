// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge and Graph declarations, sentinel errors, options and NewGraph.
// Policy:
//   - Nodes are identified by NodeID; edges are plain values owned by the source node's adjacency sequence.
//   - Graph state is guarded by a single sync.RWMutex (mu).
//
// Errors:
//
//	ErrNodeNotFound   - requested node does not exist.
//	ErrDuplicateNode  - AddNode called with a key that is already present.
//	ErrNilGraph       - a nil *Graph was passed where a graph is required.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode was called with an existing key.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNilGraph indicates a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")
)

// NodeID is the unique integer key of a router in the Graph.
type NodeID int64

// String renders the key in decimal form.
func (id NodeID) String() string { return strconv.FormatInt(int64(id), 10) }

// Node represents a router in the graph.
//
// Node carries no algorithm state: distances and predecessors live in the
// per-run result so concurrent computations never share mutable data.
type Node struct {
	// ID is the unique key of this Node within its Graph.
	ID NodeID

	// Name is an optional human-readable label (e.g. "core-rtr-1").
	Name string
}

// Edge is a directed, weighted link From→To.
//
// Edges are values: the Graph stores them in the adjacency sequence of From,
// in insertion order. Parallel edges between the same pair are permitted.
type Edge struct {
	// From is the source node key.
	From NodeID

	// To is the destination node key. It is not required to name an existing node.
	To NodeID

	// Cost is the link cost. Negative costs are stored as-is.
	Cost int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictEdges makes AddEdge reject endpoints that are not known nodes.
// By default edges may reference any key.
func WithStrictEdges() GraphOption {
	return func(g *Graph) { g.strictEdges = true }
}

// WithCapacity pre-sizes the node and adjacency catalogs.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// NodeOption configures a Node when added.
type NodeOption func(*Node)

// WithName attaches a human-readable label to the node.
func WithName(name string) NodeOption {
	return func(n *Node) { n.Name = name }
}

// Graph is the in-memory router graph.
//
// nodes maps every key to its Node; adjacency maps a key to its outgoing
// edges. Every key added via AddNode has an adjacency entry, so edge lookups
// for known nodes never miss. AddEdge from an unknown source creates the
// adjacency entry without creating a node.
type Graph struct {
	mu sync.RWMutex // guards nodes, adjacency and edgeCount

	// Configuration flags
	strictEdges bool // reject edges with unknown endpoints
	capacity    int  // initial catalog size hint

	// Storage
	nodes     map[NodeID]*Node  // key → Node
	adjacency map[NodeID][]Edge // key → outgoing edges, insertion order
	edgeCount int               // total number of stored edges
}

// NewGraph creates an empty Graph with the given options.
// By default edges are not validated against the node catalog.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make(map[NodeID]*Node, g.capacity)
	g.adjacency = make(map[NodeID][]Edge, g.capacity)

	return g
}
