// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - public entry point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs.
//   - Constructors return sentinel errors and never panic; option
//     constructors panic on meaningless values.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Constructor adds routers and links to g using the resolved config.
// Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned at once.
//
// Composing constructors places them on the same id space, so callers that
// want disjoint pieces move the base with WithFirstID between builds.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
