package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ExampleGraph demonstrates basic construction and queries.
func ExampleGraph() {
	// 1) Create a graph and register four routers.
	g := core.NewGraph()
	for id := core.NodeID(1); id <= 4; id++ {
		_ = g.AddNode(id)
	}

	// 2) Add directed links.
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(3, 2, 2)

	// 3) Inspect.
	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Edges from 1:", g.Edges(1))

	// 4) Duplicate keys are rejected.
	err := g.AddNode(2)
	fmt.Println("duplicate rejected:", errors.Is(err, core.ErrDuplicateNode))

	// Output:
	// Nodes: [1 2 3 4]
	// Edges from 1: [{1 2 4} {1 3 1}]
	// duplicate rejected: true
}

// ExampleGraph_Read shows borrowed iteration over the adjacency catalog.
func ExampleGraph_Read() {
	g := core.NewGraph()
	_ = g.AddNode(1)
	_ = g.AddNode(2)
	_ = g.AddEdge(1, 2, 3)
	_ = g.AddEdge(2, 1, -1)

	_ = g.Read(func(v core.View) error {
		for e := range v.AllEdges() {
			fmt.Printf("%d→%d cost=%d\n", e.From, e.To, e.Cost)
		}
		return nil
	})

	// Output:
	// 1→2 cost=3
	// 2→1 cost=-1
}
