package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tableslim/pkg/dataset"
)

func TestSnapshot(t *testing.T) {
	t.Run("empty dataset measures zero", func(t *testing.T) {
		snap := Snapshot(dataset.New())
		assert.Equal(t, int64(0), snap.Bytes)
		assert.Equal(t, 0.0, snap.MB)
	})

	t.Run("bytes and MB agree", func(t *testing.T) {
		ds := dataset.New()
		values := make([]int64, 131072) // 1 MiB of int64s
		require.NoError(t, ds.AddColumn("v", dataset.NewInt64Column(values)))

		snap := Snapshot(ds)
		assert.Equal(t, ds.MemoryUsage(), snap.Bytes)
		assert.InDelta(t, 1.0, snap.MB, 0.001)
	})

	t.Run("two calls are independent and equal", func(t *testing.T) {
		ds := dataset.New()
		require.NoError(t, ds.AddColumn("s", dataset.NewStringColumn([]string{"a", "bb", "ccc"})))
		first := Snapshot(ds)
		second := Snapshot(ds)
		assert.Equal(t, first, second)
	})
}

func TestSavings(t *testing.T) {
	before := MemorySnapshot{Bytes: 2 << 20, MB: 2}
	after := MemorySnapshot{Bytes: 1 << 20, MB: 1}
	assert.Equal(t, 1.0, Savings(before, after))

	// Narrowing can grow the footprint; savings is then negative
	assert.Equal(t, -1.0, Savings(after, before))
}

func TestProcessMemory(t *testing.T) {
	rss, _, err := ProcessMemory()
	require.NoError(t, err)
	assert.Greater(t, rss, uint64(0))
}
