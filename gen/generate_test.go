package gen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsolver/gen"
	"github.com/katalvlaran/knapsolver/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_Families checks the per-family shape of generated items.
func TestGenerate_Families(t *testing.T) {
	for _, fam := range gen.Families() {
		t.Run(string(fam), func(t *testing.T) {
			inst, err := gen.Generate(fam, 200, gen.WithSeed(7), gen.WithMaxWeight(100))
			require.NoError(t, err)
			require.Equal(t, 200, inst.NumberOfItems())

			var wmax knapsack.Weight
			for id := 0; id < inst.NumberOfItems(); id++ {
				it := inst.Item(id)
				assert.Positive(t, it.Weight)
				assert.Positive(t, it.Profit)
				if it.Weight > wmax {
					wmax = it.Weight
				}
				switch fam {
				case gen.SubsetSum:
					assert.Equal(t, it.Weight, it.Profit)
				case gen.StronglyCorrelated:
					assert.Equal(t, it.Weight+10, it.Profit)
				case gen.InverseStronglyCorrelated:
					assert.Equal(t, it.Profit+10, it.Weight)
				case gen.Ties:
					assert.Equal(t, it.Profit*3, it.Weight*5, "single efficiency 5/3")
				case gen.WeaklyCorrelated:
					assert.LessOrEqual(t, it.Profit, it.Weight+10)
				}
			}
			assert.GreaterOrEqual(t, inst.Capacity(), wmax)
			assert.False(t, inst.AllItemsFit(), "ratio 0.5 leaves a break item")
		})
	}
}

// TestGenerate_Deterministic ensures equal seeds give equal instances.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := gen.Generate(gen.Uncorrelated, 50, gen.WithSeed(42))
	require.NoError(t, err)
	b, err := gen.Generate(gen.Uncorrelated, 50, gen.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a.Items(), b.Items())
	assert.Equal(t, a.Capacity(), b.Capacity())

	c, err := gen.Generate(gen.Uncorrelated, 50)
	require.NoError(t, err)
	d, err := gen.Generate(gen.Uncorrelated, 50)
	require.NoError(t, err)
	assert.Equal(t, c.Items(), d.Items(), "default seed is fixed")
}

// TestGenerate_Capacity follows max(w_max, ratio · Σw).
func TestGenerate_Capacity(t *testing.T) {
	inst, err := gen.Generate(gen.Uncorrelated, 30, gen.WithSeed(3), gen.WithCapacityRatio(2))
	require.NoError(t, err)
	assert.True(t, inst.AllItemsFit())
	assert.Equal(t, 2*inst.TotalItemWeight(), inst.Capacity())

	one, err := gen.Generate(gen.Uncorrelated, 1, gen.WithSeed(3), gen.WithCapacityRatio(0.01))
	require.NoError(t, err)
	assert.Equal(t, one.Item(0).Weight, one.Capacity(), "single item forces capacity to its weight")
}

// TestGenerate_Errors covers parameter validation.
func TestGenerate_Errors(t *testing.T) {
	_, err := gen.Generate(gen.Uncorrelated, 0)
	assert.ErrorIs(t, err, gen.ErrTooFewItems)
	_, err = gen.Generate(gen.Uncorrelated, 5, gen.WithCapacityRatio(0))
	assert.ErrorIs(t, err, gen.ErrInvalidRatio)
	_, err = gen.Generate(gen.Uncorrelated, 5, gen.WithMaxWeight(0))
	assert.ErrorIs(t, err, gen.ErrInvalidRange)
	_, err = gen.Generate(gen.Family("zipf"), 5)
	assert.ErrorIs(t, err, gen.ErrUnknownFamily)
	_, err = gen.ParseFamily("zipf")
	assert.ErrorIs(t, err, gen.ErrUnknownFamily)

	f, err := gen.ParseFamily("sc")
	require.NoError(t, err)
	assert.Equal(t, gen.StronglyCorrelated, f)

	assert.Panics(t, func() { gen.WithRand(nil) })
}
