// SPDX-License-Identifier: MIT

package partialsort

import "math/rand"

// Options configures New.
type Options struct {
	// Rand drives pivot selection. Nil means rngFromSeed(Seed).
	Rand *rand.Rand

	// Seed is used when Rand is nil. Zero selects the default seed.
	Seed int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the deterministic defaults (default seed).
func DefaultOptions() Options { return Options{} }

// WithSeed fixes the pivot RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand provides an explicit pivot RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("partialsort: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}
