package xcache

import (
	"log/slog"
	"time"
)

// Option 定义 Cache 可选配置函数类型。
type Option[V any] func(*options[V])

type options[V any] struct {
	clock         func() time.Time
	sizer         Sizer
	onEvicted     func(key string, value V)
	sweepInterval time.Duration
	logger        *slog.Logger
	name          string
}

func defaultOptions[V any]() *options[V] {
	return &options[V]{
		clock:  time.Now,
		sizer:  EstimateSize,
		logger: slog.Default(),
	}
}

// WithClock 注入时钟函数，用于测试中控制 TTL 过期。
// 默认 time.Now。传入 nil 将被忽略，保持使用默认值。
func WithClock[V any](clock func() time.Time) Option[V] {
	return func(o *options[V]) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithSizer 设置大小估计函数。
// 估计不要求字节精确，但必须单调：结构上更大的值不得估计得比更简单的值小，
// 否则内存触发的淘汰行为不可预测。默认使用 EstimateSize。
func WithSizer[V any](sizer Sizer) Option[V] {
	return func(o *options[V]) {
		if sizer != nil {
			o.sizer = sizer
		}
	}
}

// WithOnEvicted 设置条目因策略或内存预算被淘汰时的回调。
// 显式 Delete/Clear/过期清理不触发该回调。
// 回调在缓存互斥锁内同步执行，严禁在回调中调用 Cache 自身的任何方法（会死锁），
// 也应避免耗时操作。
func WithOnEvicted[V any](fn func(key string, value V)) Option[V] {
	return func(o *options[V]) {
		o.onEvicted = fn
	}
}

// WithSweepInterval 启用后台定时清理并设置间隔。
// 默认不启用（仅惰性过期 + 显式 Cleanup）。间隔必须为正，
// 否则 New 返回 ErrInvalidSweepInterval。
func WithSweepInterval[V any](d time.Duration) Option[V] {
	return func(o *options[V]) {
		o.sweepInterval = d
	}
}

// WithLogger 设置自定义日志记录器。
// 默认使用 slog.Default()。传入 nil 将被忽略，保持使用默认值。
func WithLogger[V any](logger *slog.Logger) Option[V] {
	return func(o *options[V]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置缓存名称，用于在多实例场景下区分日志和指标来源。
func WithName[V any](name string) Option[V] {
	return func(o *options[V]) {
		o.name = name
	}
}
