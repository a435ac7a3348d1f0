package partialset_test

import (
	"testing"

	"github.com/katalvlaran/knapsolver/partialset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewFactory_Bounds rejects sizes outside [1, 64].
func TestNewFactory_Bounds(t *testing.T) {
	for _, size := range []int{0, -1, 65} {
		_, err := partialset.NewFactory(10, size)
		assert.ErrorIs(t, err, partialset.ErrWindowSize, "size=%d", size)
	}
	_, err := partialset.NewFactory(-1, 4)
	assert.ErrorIs(t, err, partialset.ErrWindowSize)

	for _, size := range []int{1, 2, 3, 64} {
		f, err := partialset.NewFactory(10, size)
		require.NoError(t, err)
		assert.Equal(t, size, f.Size())
	}
}

// TestFactory_AddRemoveContains exercises membership inside the window.
func TestFactory_AddRemoveContains(t *testing.T) {
	f, err := partialset.NewFactory(8, 4)
	require.NoError(t, err)

	f.AddElement(3)
	f.AddElement(5)
	var s partialset.Set
	s = f.Add(s, 3)
	assert.True(t, f.Contains(s, 3))
	assert.False(t, f.Contains(s, 5))
	s = f.Add(s, 5)
	s = f.Remove(s, 3)
	assert.False(t, f.Contains(s, 3))
	assert.True(t, f.Contains(s, 5))

	// Outside the window: no effect.
	assert.Equal(t, s, f.Add(s, 7))
	assert.False(t, f.Contains(^partialset.Set(0), 7))
}

// TestFactory_EvictsOldest checks FIFO eviction and bit reuse.
func TestFactory_EvictsOldest(t *testing.T) {
	f, err := partialset.NewFactory(10, 2)
	require.NoError(t, err)

	assert.Equal(t, -1, f.AddElement(0))
	assert.Equal(t, -1, f.AddElement(1))
	assert.Equal(t, -1, f.AddElement(1), "re-registering is a no-op")
	assert.Equal(t, 2, f.Len())

	var s partialset.Set
	s = f.Add(s, 0)

	assert.Equal(t, 0, f.AddElement(2), "oldest element evicted")
	assert.False(t, f.InWindow(0))
	assert.True(t, f.InWindow(2))
	// The bit of 0 now belongs to 2 and is stale until overwritten.
	assert.True(t, f.Contains(s, 2))
	s = f.Remove(s, 2)
	assert.False(t, f.Contains(s, 2))
	assert.Equal(t, []int{1, 2}, f.Elements())
}

// TestFactory_FullWidth uses all 64 bits.
func TestFactory_FullWidth(t *testing.T) {
	f, err := partialset.NewFactory(64, 64)
	require.NoError(t, err)
	var s partialset.Set
	for e := 0; e < 64; e++ {
		f.AddElement(e)
		s = f.Add(s, e)
	}
	assert.Equal(t, ^partialset.Set(0), s)
	for e := 0; e < 64; e++ {
		assert.True(t, f.Contains(s, e))
	}
}
