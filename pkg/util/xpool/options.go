package xpool

import "log/slog"

// Option 定义 Pool 可选配置函数类型。
type Option[T any] func(*options[T])

type options[T any] struct {
	newFn  func() *T
	reset  func(*T)
	logger *slog.Logger
	name   string
}

func defaultOptions[T any]() *options[T] {
	return &options[T]{
		newFn:  func() *T { return new(T) },
		logger: slog.Default(),
	}
}

// WithNew 设置槽位构造函数。
// 默认使用 new(T)。传入 nil 将被忽略，保持使用默认值。
func WithNew[T any](fn func() *T) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.newFn = fn
		}
	}
}

// WithReset 设置槽位归还时的重置函数。
// 用于在槽位重新进入空闲列表前清除上一次使用留下的字段值，
// 避免敏感或陈旧数据在下一次 Acquire 时泄露给调用方。
// 默认不做重置（调用方约定覆盖全部字段）。
func WithReset[T any](fn func(*T)) Option[T] {
	return func(o *options[T]) {
		o.reset = fn
	}
}

// WithLogger 设置自定义日志记录器。
// 默认使用 slog.Default()。传入 nil 将被忽略，保持使用默认值。
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *options[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置 pool 名称，用于在多实例场景下区分日志来源。
// 默认为空字符串（日志中不包含名称）。
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) {
		o.name = name
	}
}
