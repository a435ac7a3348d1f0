package knapsack_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/knapsolver/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadInstance_Formats parses the same 3-item instance in every layout.
func TestReadInstance_Formats(t *testing.T) {
	cases := []struct {
		format knapsack.Format
		text   string
	}{
		{knapsack.FormatStandard, "3 10\n10 5\n6 4\n8 6\n"},
		{knapsack.FormatJooken, "3\n0 10 5\n1 6 4\n2 8 6\n10\n"},
		{knapsack.FormatPisinger, "knapPI_1_3_10_1\nn 3\nc 10\nz 16\ntime 0.00\n1,10,5,1\n2,6,4,1\n3,8,6,0\n-----\n"},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			inst, err := knapsack.ReadInstance(strings.NewReader(tc.text), tc.format)
			require.NoError(t, err)
			assert.Equal(t, 3, inst.NumberOfItems())
			assert.Equal(t, knapsack.Weight(10), inst.Capacity())
			assert.Equal(t, knapsack.Item{Profit: 6, Weight: 4, Efficiency: 1.5}, inst.Item(1))
			assert.Equal(t, knapsack.Profit(24), inst.TotalItemProfit())
		})
	}
}

// TestReadInstance_SubsetSum sets profit equal to weight.
func TestReadInstance_SubsetSum(t *testing.T) {
	inst, err := knapsack.ReadInstance(strings.NewReader("4 9\n3 5 7 2"), knapsack.FormatSubsetSumStandard)
	require.NoError(t, err)
	for id := 0; id < inst.NumberOfItems(); id++ {
		assert.Equal(t, inst.Item(id).Weight, inst.Item(id).Profit)
	}
}

// TestReadInstance_Errors covers the failure classes of the readers.
func TestReadInstance_Errors(t *testing.T) {
	_, err := knapsack.ReadInstance(strings.NewReader("1 10\n5"), knapsack.FormatStandard)
	assert.ErrorIs(t, err, knapsack.ErrMalformedInstance, "truncated input")

	_, err = knapsack.ReadInstance(strings.NewReader("1 10\nx 5"), knapsack.FormatStandard)
	assert.ErrorIs(t, err, knapsack.ErrMalformedInstance, "non-numeric token")

	_, err = knapsack.ReadInstance(strings.NewReader("1 10\n5 50"), knapsack.FormatStandard)
	assert.ErrorIs(t, err, knapsack.ErrInvalidInstance, "builder validation surfaces")

	_, err = knapsack.ReadInstance(strings.NewReader(""), knapsack.Format("csv"))
	assert.ErrorIs(t, err, knapsack.ErrUnknownFormat)

	_, err = knapsack.ParseFormat("nope")
	assert.ErrorIs(t, err, knapsack.ErrUnknownFormat)
}

// TestReadInstance_NegativeCount rejects a negative item count in every
// layout instead of building an empty instance.
func TestReadInstance_NegativeCount(t *testing.T) {
	cases := []struct {
		format knapsack.Format
		text   string
	}{
		{knapsack.FormatStandard, "-2 10\n"},
		{knapsack.FormatSubsetSumStandard, "-1 10\n"},
		{knapsack.FormatJooken, "-3\n10\n"},
		{knapsack.FormatPisinger, "knapPI\nn -1\nc 10\nz 0\ntime 0.00\n"},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			_, err := knapsack.ReadInstance(strings.NewReader(tc.text), tc.format)
			assert.ErrorIs(t, err, knapsack.ErrMalformedInstance)
		})
	}
}

// TestWriteInstance_RoundTrip writes standard text and reads it back.
func TestWriteInstance_RoundTrip(t *testing.T) {
	inst := buildInstance(t, 10, 10, 5, 6, 4, 8, 6)
	var buf bytes.Buffer
	require.NoError(t, knapsack.WriteInstance(&buf, inst))
	assert.Equal(t, "3 10\n10 5\n6 4\n8 6\n", buf.String())

	back, err := knapsack.ReadInstance(&buf, knapsack.FormatStandard)
	require.NoError(t, err)
	assert.Equal(t, inst.Items(), back.Items())
	assert.Equal(t, inst.Capacity(), back.Capacity())
}
