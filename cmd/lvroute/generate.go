package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

// generateUsage lists the shapes accepted by -generate.
const generateUsage = "line:N, ring:N, star:N, complete:N, grid:RxC or random:N:P"

// generateGraph builds a synthetic topology from a shape like "grid:4x4".
// Links are bidirectional except for complete and random shapes, and costs
// are drawn from [1, maxCost] with the given seed.
func generateGraph(shape string, seed uint64, maxCost int64) (*core.Graph, error) {
	ctor, err := parseShape(shape)
	if err != nil {
		return nil, err
	}
	if maxCost < 1 {
		return nil, fmt.Errorf("generate: max cost must be positive, got %d", maxCost)
	}

	return builder.BuildGraph(nil, []builder.Option{
		builder.WithSeed(seed),
		builder.WithBidirectional(),
		builder.WithCostFn(builder.UniformCost(1, maxCost)),
	}, ctor)
}

func parseShape(shape string) (builder.Constructor, error) {
	kind, args, _ := strings.Cut(strings.ToLower(strings.TrimSpace(shape)), ":")
	bad := func() (builder.Constructor, error) {
		return nil, fmt.Errorf("generate: bad shape %q, want %s", shape, generateUsage)
	}

	switch kind {
	case "line", "ring", "star", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return bad()
		}
		switch kind {
		case "line":
			return builder.Line(n), nil
		case "ring":
			return builder.Ring(n), nil
		case "star":
			return builder.Star(n), nil
		default:
			return builder.Complete(n), nil
		}
	case "grid":
		rs, cs, ok := strings.Cut(args, "x")
		if !ok {
			return bad()
		}
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return builder.Grid(rows, cols), nil
	case "random":
		ns, ps, ok := strings.Cut(args, ":")
		if !ok {
			return bad()
		}
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(ps, 64)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return builder.RandomSparse(n, p), nil
	}

	return bad()
}
