// SPDX-License-Identifier: MIT

// generate.go - Generate(family, n, opts...).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewItems).
//   - max weight and max profit ≥ 1 (else ErrInvalidRange).
//   - capacity ratio > 0 (else ErrInvalidRatio).
//   - Items are drawn in id order; the instance is built and validated by
//     knapsack.InstanceBuilder, so every weight is ≤ capacity.
//
// Complexity: O(n) time and space.

package gen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/knapsolver/knapsack"
)

// Family selects the joint distribution of weights and profits.
type Family string

const (
	Uncorrelated              Family = "uncorrelated"
	WeaklyCorrelated          Family = "weakly_correlated"
	StronglyCorrelated        Family = "strongly_correlated"
	InverseStronglyCorrelated Family = "inverse_strongly_correlated"
	SubsetSum                 Family = "subset_sum"
	Ties                      Family = "ties"
)

// tie ratio p/w shared by every item of the Ties family.
const (
	tieWeightUnit = int64(3)
	tieProfitUnit = int64(5)
)

// Families lists every supported family in a stable order.
func Families() []Family {
	return []Family{Uncorrelated, WeaklyCorrelated, StronglyCorrelated,
		InverseStronglyCorrelated, SubsetSum, Ties}
}

// ParseFamily maps a name to a Family. The short names u, wc, sc, isc, ss
// and ties are accepted too.
//
// Errors: ErrUnknownFamily.
func ParseFamily(name string) (Family, error) {
	switch name {
	case "u":
		return Uncorrelated, nil
	case "wc":
		return WeaklyCorrelated, nil
	case "sc":
		return StronglyCorrelated, nil
	case "isc":
		return InverseStronglyCorrelated, nil
	case "ss":
		return SubsetSum, nil
	}
	for _, f := range Families() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Generate draws an instance of the given family with n items.
func Generate(family Family, n int, opts ...Option) (*knapsack.Instance, error) {
	cfg := newGenConfig(opts...)
	if n < 1 {
		return nil, fmt.Errorf("Generate: n=%d: %w", n, ErrTooFewItems)
	}
	if cfg.maxWeight < 1 || cfg.maxProfit < 1 {
		return nil, fmt.Errorf("Generate: max weight %d, max profit %d: %w",
			cfg.maxWeight, cfg.maxProfit, ErrInvalidRange)
	}
	if !(cfg.capacityRatio > 0) {
		return nil, fmt.Errorf("Generate: ratio=%g: %w", cfg.capacityRatio, ErrInvalidRatio)
	}

	draw, err := drawer(family, cfg)
	if err != nil {
		return nil, err
	}

	var (
		b         = knapsack.NewInstanceBuilder()
		weightMax int64
		weightSum int64
		p, w      int64
	)
	for i := 0; i < n; i++ {
		p, w = draw(cfg.rng)
		b.AddItem(p, w)
		if w > weightMax {
			weightMax = w
		}
		weightSum += w
	}

	capacity := int64(cfg.capacityRatio * float64(weightSum))
	if capacity < weightMax {
		capacity = weightMax
	}
	b.SetCapacity(capacity)
	return b.Build()
}

// drawer returns the per-item sampler of a family.
func drawer(family Family, cfg genConfig) (func(*rand.Rand) (int64, int64), error) {
	r := cfg.maxWeight
	spread := r / 10
	uniform := func(rng *rand.Rand, hi int64) int64 { return 1 + rng.Int63n(hi) }

	switch family {
	case Uncorrelated:
		return func(rng *rand.Rand) (int64, int64) {
			w := uniform(rng, r)
			return uniform(rng, cfg.maxProfit), w
		}, nil
	case WeaklyCorrelated:
		return func(rng *rand.Rand) (int64, int64) {
			w := uniform(rng, r)
			p := w + rng.Int63n(2*spread+1) - spread
			if p < 1 {
				p = 1
			}
			return p, w
		}, nil
	case StronglyCorrelated:
		return func(rng *rand.Rand) (int64, int64) {
			w := uniform(rng, r)
			return w + spread, w
		}, nil
	case InverseStronglyCorrelated:
		return func(rng *rand.Rand) (int64, int64) {
			p := uniform(rng, r)
			return p, p + spread
		}, nil
	case SubsetSum:
		return func(rng *rand.Rand) (int64, int64) {
			w := uniform(rng, r)
			return w, w
		}, nil
	case Ties:
		kMax := r / tieWeightUnit
		if kMax < 1 {
			kMax = 1
		}
		return func(rng *rand.Rand) (int64, int64) {
			k := uniform(rng, kMax)
			return k * tieProfitUnit, k * tieWeightUnit
		}, nil
	}
	return nil, fmt.Errorf("Generate: %q: %w", family, ErrUnknownFamily)
}
