// SPDX-License-Identifier: MIT

// Package gen produces deterministic random knapsack instances for tests,
// benchmarks and the command line.
//
// Families (R = maximum weight, see WithMaxWeight):
//
//	Uncorrelated               w ∈ [1,R], p ∈ [1,Pmax] independently
//	WeaklyCorrelated           w ∈ [1,R], p = max(1, w + U[−R/10, R/10])
//	StronglyCorrelated         w ∈ [1,R], p = w + R/10
//	InverseStronglyCorrelated  p ∈ [1,R], w = p + R/10
//	SubsetSum                  w ∈ [1,R], p = w
//	Ties                       k ∈ [1,R/base], w = k·bw, p = k·bp (one efficiency)
//
// Capacity is max(max_j w_j, ⌊ratio · Σ w_j⌋), so every item fits alone
// and ratio < 1 normally leaves a break item.
//
// Determinism: every call draws from the configured *rand.Rand in a fixed
// order (item by item, weight before profit). WithSeed(s) always yields the
// same instance.
package gen
