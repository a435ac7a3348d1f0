// Package solver_test holds helpers shared by the solver tests.
package solver_test

import (
	"testing"

	"github.com/katalvlaran/knapsolver/gen"
	"github.com/katalvlaran/knapsolver/knapsack"
	"github.com/stretchr/testify/require"
)

const (
	// bruteForceMaxItems bounds the exhaustive oracle.
	bruteForceMaxItems = 16

	// smallMaxWeight keeps Bellman tables small for generated instances.
	smallMaxWeight = 300
)

// buildInstance builds an instance from (profit, weight) pairs.
func buildInstance(t testing.TB, capacity knapsack.Weight, pw ...int64) *knapsack.Instance {
	t.Helper()
	b := knapsack.NewInstanceBuilder()
	b.SetCapacity(capacity)
	for i := 0; i < len(pw); i += 2 {
		b.AddItem(pw[i], pw[i+1])
	}
	inst, err := b.Build()
	require.NoError(t, err)
	return inst
}

// scenario is the 3-item reference instance: optimum {0, 1}, profit 16.
func scenario(t testing.TB) *knapsack.Instance {
	return buildInstance(t, 10, 10, 5, 6, 4, 8, 6)
}

// generate draws a reproducible instance with small weights.
func generate(t testing.TB, fam gen.Family, n int, seed int64) *knapsack.Instance {
	t.Helper()
	inst, err := gen.Generate(fam, n, gen.WithSeed(seed), gen.WithMaxWeight(smallMaxWeight))
	require.NoError(t, err)
	return inst
}

// bruteForce enumerates every subset and returns the best profit.
func bruteForce(inst *knapsack.Instance) knapsack.Profit {
	n := inst.NumberOfItems()
	var best knapsack.Profit
	for mask := 0; mask < 1<<n; mask++ {
		var (
			w knapsack.Weight
			p knapsack.Profit
		)
		for id := 0; id < n; id++ {
			if mask&(1<<id) != 0 {
				w += inst.Item(id).Weight
				p += inst.Item(id).Profit
			}
		}
		if w <= inst.Capacity() && p > best {
			best = p
		}
	}
	return best
}
