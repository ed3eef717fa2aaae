package xcache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collectMetric 在采集结果中按名称查找指标。
func collectMetric(t *testing.T, reader *sdkmetric.ManualReader, name string) (metricdata.Metrics, bool) {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestRegisterMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	c, err := New[string](Config{MaxEntries: 4}, WithName[string]("conversions"))
	require.NoError(t, err)
	defer c.Destroy()

	unregister, err := c.RegisterMetrics(provider)
	require.NoError(t, err)
	defer func() { assert.NoError(t, unregister()) }()

	require.NoError(t, c.Set("a", "1"))
	require.NoError(t, c.Set("b", "2"))
	c.Get("a")       // hit
	c.Get("missing") // miss

	t.Run("size gauge", func(t *testing.T) {
		m, ok := collectMetric(t, reader, metricNameSize)
		require.True(t, ok)

		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		assert.Equal(t, int64(2), sum.DataPoints[0].Value)
	})

	t.Run("hit rate gauge", func(t *testing.T) {
		m, ok := collectMetric(t, reader, metricNameHitRate)
		require.True(t, ok)

		gauge, ok := m.Data.(metricdata.Gauge[float64])
		require.True(t, ok)
		require.Len(t, gauge.DataPoints, 1)
		assert.InDelta(t, 0.5, gauge.DataPoints[0].Value, 1e-9)
	})

	t.Run("hits and misses counters", func(t *testing.T) {
		hits, ok := collectMetric(t, reader, metricNameHits)
		require.True(t, ok)
		assert.Equal(t, int64(1), hits.Data.(metricdata.Sum[int64]).DataPoints[0].Value)

		misses, ok := collectMetric(t, reader, metricNameMisses)
		require.True(t, ok)
		assert.Equal(t, int64(1), misses.Data.(metricdata.Sum[int64]).DataPoints[0].Value)
	})
}

func TestRegisterMetrics_Unregister(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	c, err := New[string](Config{MaxEntries: 4})
	require.NoError(t, err)
	defer c.Destroy()

	unregister, err := c.RegisterMetrics(provider)
	require.NoError(t, err)
	require.NoError(t, unregister())

	_, found := collectMetric(t, reader, metricNameSize)
	assert.False(t, found, "unregistered instruments should stop reporting")
}
