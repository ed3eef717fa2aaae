package xcache

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// 指标名称常量
const (
	instrumentationName = "github.com/omeyang/tintkit/xcache"

	metricNameSize        = "tintkit.cache.size"
	metricNameMemoryBytes = "tintkit.cache.memory.bytes"
	metricNameHits        = "tintkit.cache.hits"
	metricNameMisses      = "tintkit.cache.misses"
	metricNameEvictions   = "tintkit.cache.evictions"
	metricNameHitRate     = "tintkit.cache.hit_rate"
)

// RegisterMetrics 把缓存统计注册为 OpenTelemetry 可观测指标。
// 指标通过异步回调读取 Stats() 快照，不在缓存操作的热路径上。
// provider 为 nil 时使用全局 MeterProvider。
// 返回的 unregister 函数用于停止采集，应在 Destroy 前调用。
func (c *Cache[V]) RegisterMetrics(provider metric.MeterProvider) (unregister func() error, err error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(instrumentationName)

	size, err := meter.Int64ObservableUpDownCounter(
		metricNameSize,
		metric.WithDescription("当前缓存条目数"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, fmt.Errorf("xcache: create size instrument: %w", err)
	}

	memoryBytes, err := meter.Int64ObservableUpDownCounter(
		metricNameMemoryBytes,
		metric.WithDescription("当前估计内存占用"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("xcache: create memory instrument: %w", err)
	}

	hits, err := meter.Int64ObservableCounter(
		metricNameHits,
		metric.WithDescription("缓存命中次数"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("xcache: create hits instrument: %w", err)
	}

	misses, err := meter.Int64ObservableCounter(
		metricNameMisses,
		metric.WithDescription("缓存未命中次数"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("xcache: create misses instrument: %w", err)
	}

	evictions, err := meter.Int64ObservableCounter(
		metricNameEvictions,
		metric.WithDescription("被策略或内存预算淘汰的条目数"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, fmt.Errorf("xcache: create evictions instrument: %w", err)
	}

	hitRate, err := meter.Float64ObservableGauge(
		metricNameHitRate,
		metric.WithDescription("命中率 (0.0 - 1.0)"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xcache: create hit rate instrument: %w", err)
	}

	attrs := metric.WithAttributes(attribute.String("cache", c.name))

	reg, err := meter.RegisterCallback(
		func(_ context.Context, obs metric.Observer) error {
			stats := c.Stats()
			obs.ObserveInt64(size, int64(stats.Size), attrs)
			obs.ObserveInt64(memoryBytes, stats.MemoryBytes, attrs)
			obs.ObserveInt64(hits, int64(stats.Hits), attrs)
			obs.ObserveInt64(misses, int64(stats.Misses), attrs)
			obs.ObserveInt64(evictions, int64(stats.Evictions), attrs)
			obs.ObserveFloat64(hitRate, stats.HitRate, attrs)
			return nil
		},
		size, memoryBytes, hits, misses, evictions, hitRate,
	)
	if err != nil {
		return nil, fmt.Errorf("xcache: register metrics callback: %w", err)
	}

	return reg.Unregister, nil
}
