package xcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_HitRate(t *testing.T) {
	c := newLRUCache(t, 10)

	require.NoError(t, c.Set("a", "1"))
	require.NoError(t, c.Set("b", "2"))

	c.Get("a")       // hit
	c.Get("b")       // hit
	c.Get("missing") // miss

	stats := c.Stats()
	assert.Equal(t, uint64(2), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.InDelta(t, 2.0/3.0, stats.HitRate, 1e-9)
}

func TestStats_Utilization(t *testing.T) {
	c := newLRUCache(t, 5)

	require.NoError(t, c.Set("a", "1"))
	require.NoError(t, c.Set("b", "2"))

	stats := c.Stats()
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, 5, stats.MaxEntries)
	assert.InDelta(t, 40.0, stats.Utilization, 1e-9)
}

func TestStats_EmptyCache(t *testing.T) {
	c := newLRUCache(t, 10)

	stats := c.Stats()
	assert.Zero(t, stats.HitRate, "no lookups means zero hit rate")
	assert.Zero(t, stats.Utilization)
	assert.Zero(t, stats.MemoryBytes)
}

func TestStats_Evictions(t *testing.T) {
	c, err := New[int](Config{MaxEntries: 2})
	require.NoError(t, err)
	defer c.Destroy()

	require.NoError(t, c.Set("a", 1))
	require.NoError(t, c.Set("b", 2))
	require.NoError(t, c.Set("c", 3))
	require.NoError(t, c.Set("d", 4))

	assert.Equal(t, uint64(2), c.Stats().Evictions)
}

func TestStats_MemoryBytes(t *testing.T) {
	// 大小估计函数直接取值本身，便于断言记账
	c, err := New[int](Config{MaxEntries: 10},
		WithSizer[int](func(v any) int64 { return int64(v.(int)) }),
	)
	require.NoError(t, err)
	defer c.Destroy()

	require.NoError(t, c.Set("a", 100))
	require.NoError(t, c.Set("b", 50))
	assert.Equal(t, int64(150), c.Stats().MemoryBytes)

	// 覆盖写调整差额
	require.NoError(t, c.Set("a", 30))
	assert.Equal(t, int64(80), c.Stats().MemoryBytes)

	// 删除扣减
	c.Delete("b")
	assert.Equal(t, int64(30), c.Stats().MemoryBytes)
}
