package paths_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapTree is a Tree backed by plain maps, used to check Reconstruct does not
// depend on *paths.Result.
type mapTree struct {
	prev      map[core.NodeID]core.NodeID
	reachable map[core.NodeID]bool
}

func (m mapTree) Predecessor(id core.NodeID) (core.NodeID, bool) {
	p, ok := m.prev[id]
	return p, ok
}

func (m mapTree) Reachable(id core.NodeID) bool { return m.reachable[id] }

func TestNewResult_Initialization(t *testing.T) {
	r := paths.NewResult(1, []core.NodeID{1, 2, 3})

	d, ok := r.Distance(1)
	require.True(t, ok)
	assert.Equal(t, int64(0), d)

	d, ok = r.Distance(2)
	require.True(t, ok)
	assert.Equal(t, paths.Unreachable, d)

	_, ok = r.Distance(42)
	assert.False(t, ok)

	assert.Equal(t, 3, r.Len())
	assert.Empty(t, r.Predecessors())
	assert.True(t, r.Reachable(1))
	assert.False(t, r.Reachable(2))
}

func TestResult_Relax(t *testing.T) {
	r := paths.NewResult(1, []core.NodeID{1, 2})

	assert.True(t, r.Relax(1, 2, 5))
	assert.False(t, r.Relax(1, 2, 5), "equal distance must not relax")
	assert.True(t, r.Relax(1, 2, 3))
	assert.False(t, r.Relax(1, 77, 1), "unknown node must be ignored")
	assert.False(t, r.Known(77))

	p, ok := r.Predecessor(2)
	require.True(t, ok)
	assert.Equal(t, core.NodeID(1), p)
	assert.Equal(t, map[core.NodeID]int64{1: 0, 2: 3}, r.Distances())
}

func TestReconstruct_Chain(t *testing.T) {
	r := paths.NewResult(1, []core.NodeID{1, 2, 3, 4, 5})
	require.True(t, r.Relax(1, 3, 1))
	require.True(t, r.Relax(3, 2, 3))
	require.True(t, r.Relax(2, 4, 4))

	assert.Equal(t, []core.NodeID{1, 3, 2, 4}, paths.Reconstruct(r, 4))
	assert.Equal(t, []core.NodeID{1}, paths.Reconstruct(r, 1))
	assert.Nil(t, paths.Reconstruct(r, 5), "unreachable target has no path")
}

func TestReconstruct_AbstractTree(t *testing.T) {
	tree := mapTree{
		prev:      map[core.NodeID]core.NodeID{20: 10, 30: 20},
		reachable: map[core.NodeID]bool{10: true, 20: true, 30: true},
	}
	assert.Equal(t, []core.NodeID{10, 20, 30}, paths.Reconstruct(tree, 30))
}

func TestReconstruct_LoopGuard(t *testing.T) {
	tree := mapTree{
		prev:      map[core.NodeID]core.NodeID{1: 2, 2: 1},
		reachable: map[core.NodeID]bool{1: true, 2: true},
	}
	assert.Nil(t, paths.Reconstruct(tree, 1))
}

func TestResult_PathTo(t *testing.T) {
	r := paths.NewResult(1, []core.NodeID{1, 2, 3})
	require.True(t, r.Relax(1, 2, 7))

	p, err := r.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2}, p)

	_, err = r.PathTo(3)
	require.ErrorIs(t, err, paths.ErrUnreachable)

	_, err = r.PathTo(99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestFindCycle(t *testing.T) {
	// 5 hangs off the cycle 1→2→3→1.
	tree := mapTree{
		prev: map[core.NodeID]core.NodeID{2: 1, 3: 2, 1: 3, 5: 3},
	}

	cycle := paths.FindCycle(tree, 5, 4)
	require.NotNil(t, cycle)
	assert.Len(t, cycle, 4)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
	assert.ElementsMatch(t, []core.NodeID{1, 2, 3}, cycle[:3])

	// The cycle is reported in edge order: every consecutive pair is a predecessor link.
	for i := 1; i < len(cycle); i++ {
		p, ok := tree.Predecessor(cycle[i])
		require.True(t, ok)
		assert.Equal(t, cycle[i-1], p)
	}
}

func TestFindCycle_NoCycle(t *testing.T) {
	tree := mapTree{prev: map[core.NodeID]core.NodeID{2: 1, 3: 2}}
	assert.Nil(t, paths.FindCycle(tree, 3, 3))
}

func TestAddCost(t *testing.T) {
	cases := []struct {
		d, w int64
		sum  int64
		ok   bool
	}{
		{0, 5, 5, true},
		{3, -7, -4, true},
		{paths.Unreachable, 0, 0, false},
		{math.MaxInt64 - 2, 3, 0, false},
		{math.MinInt64 + 1, -2, 0, false},
		{math.MaxInt64 - 3, 2, math.MaxInt64 - 1, true},
	}
	for _, c := range cases {
		sum, ok := paths.AddCost(c.d, c.w)
		assert.Equal(t, c.ok, ok, "%d+%d", c.d, c.w)
		assert.Equal(t, c.sum, sum, "%d+%d", c.d, c.w)
	}
}
