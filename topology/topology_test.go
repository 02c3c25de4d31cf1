package topology_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/topology"
)

func TestDefault(t *testing.T) {
	top := topology.Default()
	require.Len(t, top.Routers, 4)
	require.Len(t, top.Links, 5)
	assert.False(t, top.Strict)

	g, err := top.Build()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, g.Nodes())
	assert.Equal(t, 5, g.EdgeCount())

	n, err := g.Node(3)
	require.NoError(t, err)
	assert.Equal(t, "r3", n.Name)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Cost: 4}, {From: 1, To: 3, Cost: 1}}, g.Edges(1))
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"no routers":     "routers: []\n",
		"missing id":     "routers:\n  - name: a\n",
		"missing to":     "routers:\n  - id: 1\nlinks:\n  - {from: 1, cost: 2}\n",
		"duplicate id":   "routers:\n  - id: 1\n  - id: 1\n",
		"unknown field":  "routers:\n  - id: 1\n    weight: 3\n",
		"malformed yaml": "routers: [\n",
		"bad cost":       "routers:\n  - id: 1\nlinks:\n  - {from: 1, to: 1, cost: cheap}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			top, err := topology.Parse([]byte(doc))
			require.ErrorIs(t, err, topology.ErrInvalidTopology)
			assert.Nil(t, top)
		})
	}
}

func TestParse_ZeroIDAllowed(t *testing.T) {
	top, err := topology.Parse([]byte("routers:\n  - id: 0\n  - id: -5\n"))
	require.NoError(t, err)
	g, err := top.Build()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{-5, 0}, g.Nodes())
}

func TestLoad(t *testing.T) {
	top, err := topology.Load(filepath.Join("testdata", "negative_cycle.yaml"))
	require.NoError(t, err)

	g, err := top.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, &core.GraphStats{NodeCount: 3, EdgeCount: 3, NegativeEdges: 1}, g.Stats())
}

func TestLoad_Missing(t *testing.T) {
	_, err := topology.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild_Strict(t *testing.T) {
	top, err := topology.Load(filepath.Join("testdata", "strict.yaml"))
	require.NoError(t, err)
	require.True(t, top.Strict)

	_, err = top.Build()
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	// Lenient documents keep dangling links.
	top.Strict = false
	g, err := top.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, g.Stats().DanglingEdges)
}
