package xcache

import (
	"context"
	"fmt"
	"strings"
)

// GetOrLoad 读取条目，未命中时调用 loadFn 回源并写回缓存。
//
// 并发回源通过 singleflight 合并：同一键的多个并发调用只执行一次 loadFn，
// 其余调用共享结果。进入回源前会在 flight 内再次检查缓存（double-check），
// 避免排队期间已被其他调用写入的键重复回源。
//
// loadFn 在缓存互斥锁之外执行，可以安全地调用 Cache 的其他方法。
// loadFn 的 panic 被捕获并转为 ErrLoadPanic 返回，保护进程和其他等待者。
// 回源成功后的写回失败（例如实例恰在此间被 Destroy）不影响返回值。
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, loadFn func(context.Context) (V, error)) (V, error) {
	var zero V

	if strings.TrimSpace(key) == "" {
		return zero, ErrInvalidKey
	}
	if loadFn == nil {
		return zero, ErrNilLoader
	}

	if v, ok := c.Get(key); ok {
		return v, nil
	}

	result, err, _ := c.sf.Do(key, func() (out any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrLoadPanic, r)
			}
		}()

		// double-check：排队期间可能已有调用写入
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		v, err := loadFn(ctx)
		if err != nil {
			return zero, err
		}

		// 写回失败不影响返回（值已成功回源）
		_ = c.Set(key, v) //nolint:errcheck // 缓存失败不影响返回
		return v, nil
	})
	if err != nil {
		return zero, err
	}

	v, ok := result.(V)
	if !ok {
		// singleflight 的结果类型由上面的闭包保证，此分支不可达
		return zero, fmt.Errorf("%w: unexpected result type %T", ErrLoadPanic, result)
	}
	return v, nil
}
