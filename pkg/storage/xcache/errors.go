package xcache

import "errors"

// =============================================================================
// 配置错误（构造期 fail-fast）
// =============================================================================

var (
	// ErrInvalidCapacity 表示条目数上限无效。
	ErrInvalidCapacity = errors.New("xcache: max entries must be greater than 0")

	// ErrCapacityExceedsMax 表示条目数上限超过 16,777,216。
	ErrCapacityExceedsMax = errors.New("xcache: max entries must not exceed 16777216")

	// ErrInvalidMemoryBudget 表示内存预算为负。
	ErrInvalidMemoryBudget = errors.New("xcache: memory budget must not be negative")

	// ErrInvalidStrategy 表示淘汰策略不在已知集合内。
	ErrInvalidStrategy = errors.New("xcache: unknown eviction strategy")

	// ErrInvalidTTL 表示默认 TTL 为负。
	ErrInvalidTTL = errors.New("xcache: TTL must not be negative")

	// ErrInvalidSweepInterval 表示后台清理间隔无效。
	ErrInvalidSweepInterval = errors.New("xcache: sweep interval must be positive")
)

// =============================================================================
// 运行期错误
// =============================================================================

var (
	// ErrInvalidKey 表示键去除空白后为空。
	// 空键几乎总是调用方 bug，应在入口处 fail-fast。
	ErrInvalidKey = errors.New("xcache: key must not be empty")

	// ErrDestroyed 表示实例已被 Destroy，写操作被拒绝。
	ErrDestroyed = errors.New("xcache: cache is destroyed")
)

// =============================================================================
// Loader 相关错误
// =============================================================================

var (
	// ErrNilLoader 表示 loader 函数为 nil。
	ErrNilLoader = errors.New("xcache: nil loader function")

	// ErrLoadPanic 表示 loadFn（调用方提供的回源函数）发生了 panic。
	// singleflight 场景下 panic 会波及所有等待者，这里统一转为错误返回。
	ErrLoadPanic = errors.New("xcache: load function panicked")
)
