// SPDX-License-Identifier: MIT
// Package core_test contains test fixtures for lvroute/core.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/stretchr/testify/require"
)

// Common node keys used across core tests.
const (
	Node1 core.NodeID = 1
	Node2 core.NodeID = 2
	Node3 core.NodeID = 3
	Node4 core.NodeID = 4

	NodeMissing core.NodeID = 99
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// newFourRouterGraph builds the four-router reference topology:
// 1→2(4), 1→3(1), 3→2(2), 2→4(1), 3→4(5).
func newFourRouterGraph(t testing.TB, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g := core.NewGraph(opts...)
	for _, id := range []core.NodeID{Node1, Node2, Node3, Node4} {
		require.NoError(t, g.AddNode(id), "AddNode(%d)", id)
	}
	for _, e := range []core.Edge{
		{From: Node1, To: Node2, Cost: 4},
		{From: Node1, To: Node3, Cost: 1},
		{From: Node3, To: Node2, Cost: 2},
		{From: Node2, To: Node4, Cost: 1},
		{From: Node3, To: Node4, Cost: 5},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Cost), "AddEdge(%d,%d)", e.From, e.To)
	}

	return g
}
