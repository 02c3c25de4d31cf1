package report_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/bellmanford"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/report"
	"github.com/katalvlaran/lvroute/routing"
	"github.com/katalvlaran/lvroute/topology"
)

func TestWrite_DefaultTopology(t *testing.T) {
	g, err := topology.Default().Build()
	require.NoError(t, err)
	require.NoError(t, g.AddNode(5))

	res, err := routing.ComputeShortestPaths(g, 1, routing.PriorityQueue)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, routing.BuildTable(g, routing.PriorityQueue.String(), res)))
	assert.Equal(t, `Dijkstra's Algorithm (Source: 1)
To 1 - Cost: 0 | Path: 1
To 2 - Cost: 3 | Path: 1 3 2
To 3 - Cost: 1 | Path: 1 3
To 4 - Cost: 4 | Path: 1 3 2 4
To 5 - Cost: unreachable | Path: -
`, buf.String())
}

func TestWrite_CustomTitle(t *testing.T) {
	var buf bytes.Buffer
	tbl := &routing.Table{Source: 7, Algorithm: "custom", Routes: []routing.Route{
		{Destination: 7, Reachable: true, Path: []core.NodeID{7}},
	}}
	require.NoError(t, report.Write(&buf, tbl))
	assert.Equal(t, "custom (Source: 7)\nTo 7 - Cost: 0 | Path: 7\n", buf.String())
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	err := fmt.Errorf("%w: 99", core.ErrNodeNotFound)
	require.NoError(t, report.Error(&buf, err))
	assert.Equal(t, "Error: core: node not found: 99\n", buf.String())

	buf.Reset()
	cycle := &bellmanford.NegativeCycleError{Edge: core.Edge{From: 4, To: 3, Cost: -10}}
	require.True(t, errors.Is(cycle, bellmanford.ErrNegativeCycle))
	require.NoError(t, report.Error(&buf, cycle))
	assert.Equal(t, "Error: bellmanford: graph contains a negative cost cycle: edge 4→3 cost=-10 still relaxes\n", buf.String())
}
