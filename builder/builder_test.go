package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

func TestConstructors_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		opts  []builder.Option
		wantN int
		wantE int
	}{
		{"Line(4)", builder.Line(4), nil, 4, 3},
		{"Line(4) bidirectional", builder.Line(4), []builder.Option{builder.WithBidirectional()}, 4, 6},
		{"Ring(5)", builder.Ring(5), nil, 5, 5},
		{"Star(6)", builder.Star(6), nil, 6, 5},
		{"Complete(4)", builder.Complete(4), []builder.Option{builder.WithBidirectional()}, 4, 12},
		{"Complete(1)", builder.Complete(1), nil, 1, 0},
		{"Grid(3,4)", builder.Grid(3, 4), nil, 12, 17},
		{"RandomSparse(p=1)", builder.RandomSparse(5, 1), nil, 5, 20},
		{"RandomSparse(p=0)", builder.RandomSparse(5, 0), nil, 5, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestLine_IDsAndCosts(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.Option{builder.WithFirstID(10), builder.WithCostFn(builder.ConstantCost(7))},
		builder.Line(3))
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{10, 11, 12}, g.Nodes())
	assert.Equal(t, []core.Edge{{From: 10, To: 11, Cost: 7}}, g.Edges(10))
	assert.Equal(t, []core.Edge{{From: 11, To: 12, Cost: 7}}, g.Edges(11))
	assert.Empty(t, g.Edges(12))
}

func TestGrid_Order(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 2))
	require.NoError(t, err)

	// 1 2
	// 3 4
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Cost: 1}, {From: 1, To: 3, Cost: 1}}, g.Edges(1))
	assert.Equal(t, []core.Edge{{From: 2, To: 4, Cost: 1}}, g.Edges(2))
	assert.Equal(t, []core.Edge{{From: 3, To: 4, Cost: 1}}, g.Edges(3))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed uint64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.Option{builder.WithSeed(seed), builder.WithCostFn(builder.UniformCost(-3, 9))},
			builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		return g
	}

	a, b := build(42), build(42)
	for _, id := range a.Nodes() {
		assert.Equal(t, a.Edges(id), b.Edges(id), "router %d", id)
		for _, e := range a.Edges(id) {
			assert.NotEqual(t, e.From, e.To)
			assert.GreaterOrEqual(t, e.Cost, int64(-3))
			assert.LessOrEqual(t, e.Cost, int64(9))
		}
	}
}

func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.Option
		want error
	}{
		{"Line(1)", builder.Line(1), nil, builder.ErrTooFewRouters},
		{"Ring(2)", builder.Ring(2), nil, builder.ErrTooFewRouters},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewRouters},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewRouters},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewRouters},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewRouters},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestBuildGraph_Collision(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Line(3), builder.Star(3))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.UniformCost(5, 1) })
}
