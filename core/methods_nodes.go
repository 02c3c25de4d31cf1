// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns keys sorted ascending.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
package core

import (
	"fmt"
	"slices"
)

// AddNode inserts a new node with the given key.
//
// Implementation:
//   - Stage 1: Build the Node and apply options.
//   - Stage 2: Under the write lock, reject an existing key with ErrDuplicateNode.
//   - Stage 3: Register the node and bootstrap its adjacency entry.
//
// Behavior highlights:
//   - An adjacency entry created earlier by AddEdge from this key is preserved,
//     so edges added before their source node remain attached to it.
//
// Errors:
//   - ErrDuplicateNode: the key already names a node.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id NodeID, opts ...NodeOption) error {
	n := &Node{ID: id}
	for _, opt := range opts {
		opt(n)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = n
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}

	return nil
}

// HasNode reports whether a node with the given key exists.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node stored under id.
//
// Errors:
//   - ErrNodeNotFound (wrapped with the key): id is absent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return *n, nil
}

// Nodes returns all node keys sorted ascending.
//
// Complexity:
//   - Time O(N log N), Space O(N).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.nodes)
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// sortedKeys collects the keys of m in ascending order.
// Callers must hold mu.
func sortedKeys[V any](m map[NodeID]V) []NodeID {
	out := make([]NodeID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}
