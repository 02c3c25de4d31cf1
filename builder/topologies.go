// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// topologies.go - router topology constructors.
//
// Every constructor adds routers firstID..firstID+n-1 in ascending order,
// then emits links in a stable, documented order. Link costs come from
// cfg.costFn; with WithBidirectional each link u→v is followed by v→u.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodLine         = "Line"
	methodRing         = "Ring"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minLineRouters   = 2
	minRingRouters   = 3
	minStarRouters   = 2
	minCompleteRouters = 1
	minGridDim       = 1
	minRandomRouters = 1
)

// Line chains n routers: 0→1→…→n-1.
// Complexity: O(n).
func Line(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minLineRouters {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineRouters, ErrTooFewRouters)
		}
		if err := addRouters(g, cfg, methodLine, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodLine, cfg.id(i), cfg.id(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Ring closes a line of n routers: 0→1→…→n-1→0.
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRingRouters {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingRouters, ErrTooFewRouters)
		}
		if err := addRouters(g, cfg, methodRing, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodRing, cfg.id(i), cfg.id((i+1)%n)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star links hub router 0 to each of the other n-1 routers.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarRouters {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarRouters, ErrTooFewRouters)
		}
		if err := addRouters(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, cfg.id(0), cfg.id(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete links every ordered pair of distinct routers (i asc, then j asc).
// WithBidirectional is ignored since both directions already exist.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteRouters {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteRouters, ErrTooFewRouters)
		}
		if err := addRouters(g, cfg, methodComplete, n); err != nil {
			return err
		}
		cfg.bidirectional = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := link(g, cfg, methodComplete, cfg.id(i), cfg.id(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid builds a rows×cols mesh in row-major order, linking each router to
// its right and bottom neighbors.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d below %dx%d: %w", methodGrid, rows, cols, minGridDim, minGridDim, ErrTooFewRouters)
		}
		if err := addRouters(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.id(r*cols + c)
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, u, cfg.id(r*cols+c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, u, cfg.id((r+1)*cols+c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// RandomSparse samples each ordered pair (i, j), i ≠ j, independently with
// probability p. An RNG is required unless p is 0 or 1.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRandomRouters {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomRouters, ErrTooFewRouters)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addRouters(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		cfg.bidirectional = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				hit := p == 1 || (p > 0 && cfg.rng.Float64() < p)
				if !hit {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, cfg.id(i), cfg.id(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

func addRouters(g *core.Graph, cfg config, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.id(i)
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: router %d: %w: %w", method, id, ErrConstructFailed, err)
		}
	}
	return nil
}

func link(g *core.Graph, cfg config, method string, u, v core.NodeID) error {
	if err := g.AddEdge(u, v, cfg.cost()); err != nil {
		return fmt.Errorf("%s: link %d→%d: %w", method, u, v, err)
	}
	if cfg.bidirectional {
		if err := g.AddEdge(v, u, cfg.cost()); err != nil {
			return fmt.Errorf("%s: link %d→%d: %w", method, v, u, err)
		}
	}
	return nil
}
