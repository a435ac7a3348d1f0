// SPDX-License-Identifier: MIT

// options.go - functional options for Generate.
//
// Option constructors VALIDATE nil arguments and PANIC; Generate itself
// reports range problems as sentinel errors.

package gen

import "math/rand"

// Option customizes a generation run.
type Option func(*genConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG (deterministic).
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxWeight sets R, the largest weight drawn.
func WithMaxWeight(w int64) Option {
	return func(c *genConfig) { c.maxWeight = w }
}

// WithMaxProfit sets the largest profit drawn by Uncorrelated.
func WithMaxProfit(p int64) Option {
	return func(c *genConfig) { c.maxProfit = p }
}

// WithCapacityRatio sets the capacity as a fraction of the total weight.
func WithCapacityRatio(r float64) Option {
	return func(c *genConfig) { c.capacityRatio = r }
}
