// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go - configuration, deterministic defaults and functional options.
//
// Defaults:
//   - firstID       = 1           (routers are numbered 1, 2, 3, ...)
//   - rng           = nil         (stochastic constructors require a seed)
//   - costFn        = constant 1
//   - bidirectional = false       (one directed link per pair)

package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lvroute/core"
)

const (
	defaultFirstID = core.NodeID(1)
	defaultCost    = int64(1)
)

// CostFn draws a link cost. rng is nil when no seed was configured.
type CostFn func(rng *rand.Rand) int64

// config aggregates all knobs used by constructors.
// It is passed by value to constructors.
type config struct {
	firstID       core.NodeID // id of router index 0
	rng           *rand.Rand  // nil means "no randomness"
	costFn        CostFn      // per-link cost
	bidirectional bool        // emit v→u next to every u→v
}

// Option customizes a config before construction begins.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		firstID: defaultFirstID,
		costFn:  ConstantCost(defaultCost),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a router index to its key.
func (c config) id(i int) core.NodeID { return c.firstID + core.NodeID(i) }

// cost draws the next link cost.
func (c config) cost() int64 { return c.costFn(c.rng) }

// WithFirstID sets the key of router index 0.
func WithFirstID(id core.NodeID) Option {
	return func(c *config) { c.firstID = id }
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a PCG-seeded RNG; the same seed reproduces the same graph.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithCostFn overrides the per-link cost generator. Panics on nil.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *config) { c.costFn = fn }
}

// WithBidirectional emits a reverse link for every link a constructor adds.
// Both directions draw their own cost.
func WithBidirectional() Option {
	return func(c *config) { c.bidirectional = true }
}

// ConstantCost returns a CostFn that always yields cost.
func ConstantCost(cost int64) CostFn {
	return func(*rand.Rand) int64 { return cost }
}

// UniformCost returns a CostFn drawing uniformly from [lo, hi]. Negative
// bounds are allowed. Without an RNG it yields lo. Panics if hi < lo.
func UniformCost(lo, hi int64) CostFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformCost requires lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Int64N(hi-lo+1)
	}
}
