// SPDX-License-Identifier: MIT

package gen

import "math/rand"

// genConfig aggregates the knobs of one Generate call.
type genConfig struct {
	rng           *rand.Rand
	maxWeight     int64
	maxProfit     int64
	capacityRatio float64
}

// Deterministic defaults.
const (
	defaultMaxWeight     = int64(1000)
	defaultMaxProfit     = int64(1000)
	defaultCapacityRatio = 0.5
	defaultSeed          = int64(1)
)

// newGenConfig applies options over the defaults; last option wins.
// The default RNG is seeded so that Generate without options is reproducible.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:           rand.New(rand.NewSource(defaultSeed)),
		maxWeight:     defaultMaxWeight,
		maxProfit:     defaultMaxProfit,
		capacityRatio: defaultCapacityRatio,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
