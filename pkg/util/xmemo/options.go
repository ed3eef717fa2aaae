package xmemo

import (
	"github.com/omeyang/tintkit/pkg/util/xkey"
)

// defaultMaxSize 默认缓存容量
const defaultMaxSize = 128

// Option Memo 配置选项
type Option[A any] func(*options[A])

type options[A any] struct {
	maxSize int
	keyFn   func(A) string
}

func defaultOptions[A any]() *options[A] {
	return &options[A]{
		maxSize: defaultMaxSize,
		keyFn: func(a A) string {
			return xkey.Compose(a)
		},
	}
}

// WithMaxSize 设置记忆化缓存的最大条目数，超出后按 LRU 淘汰。
// 默认 128。
func WithMaxSize[A any](n int) Option[A] {
	return func(o *options[A]) {
		o.maxSize = n
	}
}

// WithKeyFunc 设置从参数派生缓存键的函数。
// 默认使用 xkey.Compose，对自定义参数类型建议提供更廉价的键函数。
func WithKeyFunc[A any](fn func(A) string) Option[A] {
	return func(o *options[A]) {
		if fn != nil {
			o.keyFn = fn
		}
	}
}
