// SPDX-License-Identifier: MIT

// rng.go - deterministic pivot randomness.
//
// math/rand.Rand is NOT goroutine-safe; each PartialSort owns its stream.
package partialsort

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 or no seed at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// pivotPos draws a pivot position uniformly in [f, l].
func pivotPos(r *rand.Rand, f, l int) int {
	return f + r.Intn(l-f+1)
}
