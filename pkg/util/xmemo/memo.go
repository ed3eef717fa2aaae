package xmemo

import (
	"github.com/omeyang/tintkit/pkg/storage/xcache"
)

// Memo 对纯函数 func(A) V 做记忆化。
// 并发安全，结果按 LRU 策略有界缓存。
type Memo[A any, V any] struct {
	fn    func(A) V
	keyFn func(A) string
	cache *xcache.Cache[V]
}

// New 创建纯函数记忆化包装。
// fn 不允许为 nil；容量等配置通过 Option 调整。
func New[A any, V any](fn func(A) V, opts ...Option[A]) (*Memo[A, V], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	o := defaultOptions[A]()
	for _, opt := range opts {
		opt(o)
	}
	cache, err := newBackingCache[V](o.maxSize)
	if err != nil {
		return nil, err
	}
	return &Memo[A, V]{
		fn:    fn,
		keyFn: o.keyFn,
		cache: cache,
	}, nil
}

// Do 返回 fn(arg)，相同参数的重复调用命中缓存。
func (m *Memo[A, V]) Do(arg A) V {
	key := m.keyFn(arg)
	if got, ok := m.cache.Get(key); ok {
		return got
	}
	v := m.fn(arg)
	// 键非法（空白）时不缓存，直接透传结果。
	_ = m.cache.Set(key, v)
	return v
}

// Clear 清空已缓存的结果，之后的调用重新执行底层函数。
func (m *Memo[A, V]) Clear() {
	m.cache.Clear()
}

// Len 返回当前缓存的结果数量。
func (m *Memo[A, V]) Len() int {
	return m.cache.Len()
}

// Stats 返回底层缓存的统计快照。
func (m *Memo[A, V]) Stats() xcache.Stats {
	return m.cache.Stats()
}

// ErrMemo 对可失败函数 func(A) (V, error) 做记忆化。
// 只缓存成功结果，失败的调用下次会重新执行。
type ErrMemo[A any, V any] struct {
	fn    func(A) (V, error)
	keyFn func(A) string
	cache *xcache.Cache[V]
}

// NewErr 创建可失败函数的记忆化包装。
func NewErr[A any, V any](fn func(A) (V, error), opts ...Option[A]) (*ErrMemo[A, V], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	o := defaultOptions[A]()
	for _, opt := range opts {
		opt(o)
	}
	cache, err := newBackingCache[V](o.maxSize)
	if err != nil {
		return nil, err
	}
	return &ErrMemo[A, V]{
		fn:    fn,
		keyFn: o.keyFn,
		cache: cache,
	}, nil
}

// Do 返回 fn(arg)，成功结果按参数缓存，错误不缓存。
func (m *ErrMemo[A, V]) Do(arg A) (V, error) {
	key := m.keyFn(arg)
	if got, ok := m.cache.Get(key); ok {
		return got, nil
	}
	v, err := m.fn(arg)
	if err != nil {
		var zero V
		return zero, err
	}
	_ = m.cache.Set(key, v)
	return v, nil
}

// Clear 清空已缓存的结果。
func (m *ErrMemo[A, V]) Clear() {
	m.cache.Clear()
}

// Len 返回当前缓存的结果数量。
func (m *ErrMemo[A, V]) Len() int {
	return m.cache.Len()
}

// Stats 返回底层缓存的统计快照。
func (m *ErrMemo[A, V]) Stats() xcache.Stats {
	return m.cache.Stats()
}

// newBackingCache 构造记忆化使用的 LRU 缓存：无 TTL、无内存预算、无后台清理。
func newBackingCache[V any](maxSize int) (*xcache.Cache[V], error) {
	if maxSize <= 0 {
		return nil, ErrInvalidMaxSize
	}
	cache, err := xcache.New[V](xcache.Config{
		MaxEntries: maxSize,
		Strategy:   xcache.StrategyLRU,
	})
	if err != nil {
		return nil, err
	}
	return cache, nil
}
