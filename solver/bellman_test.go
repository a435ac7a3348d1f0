package solver_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/knapsolver/gen"
	"github.com/katalvlaran/knapsolver/knapsack"
	"github.com/katalvlaran/knapsolver/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBellman_Scenario solves the reference instance.
func TestBellman_Scenario(t *testing.T) {
	res, err := solver.Bellman(scenario(t))
	require.NoError(t, err)
	assert.Equal(t, knapsack.Profit(16), res.Value)
	assert.True(t, res.Optimal())
	assert.Equal(t, []knapsack.ItemID{0, 1}, res.Solution.Items())
}

// TestBellman_MatchesBruteForce checks the table oracle itself.
func TestBellman_MatchesBruteForce(t *testing.T) {
	for _, fam := range gen.Families() {
		for n := 1; n <= 12; n++ {
			inst := generate(t, fam, n, int64(n))
			res, err := solver.Bellman(inst)
			require.NoError(t, err)
			require.Equal(t, bruteForce(inst), res.Value, "%s n=%d", fam, n)
			require.True(t, res.HasSolution())
		}
	}
}

// TestBellman_TooLarge refuses tables beyond MaxBellmanCells.
func TestBellman_TooLarge(t *testing.T) {
	inst := buildInstance(t, 1<<30, 1, 1<<29+1, 1, 1<<29+1)
	_, err := solver.Bellman(inst)
	assert.ErrorIs(t, err, solver.ErrInstanceTooLarge)
}

// TestBellman_Cancelled returns without a solution.
func TestBellman_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := solver.Bellman(generate(t, gen.Uncorrelated, 100, 1), solver.WithContext(ctx))
	require.NoError(t, err)
	assert.Zero(t, res.Value)
	assert.False(t, res.Optimal())
}
