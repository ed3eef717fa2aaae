package xcache

import "time"

// maxCapacity 条目数上限的上限。
const maxCapacity = 1 << 24 // 16,777,216

// Strategy 是封闭的淘汰策略枚举。
// 策略在构造时绑定一次，运行期不做字符串比较分发。
type Strategy int

const (
	// StrategyLRU 淘汰最久未访问的条目（默认）。
	StrategyLRU Strategy = iota

	// StrategyLFU 淘汰访问次数最少的条目，平手取最早插入者。
	StrategyLFU

	// StrategyFIFO 淘汰最早插入的条目，不受访问活动影响。
	StrategyFIFO
)

// String 返回策略名称。
func (s Strategy) String() string {
	switch s {
	case StrategyLRU:
		return "lru"
	case StrategyLFU:
		return "lfu"
	case StrategyFIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// valid 报告策略是否在已知集合内。
func (s Strategy) valid() bool {
	switch s {
	case StrategyLRU, StrategyLFU, StrategyFIFO:
		return true
	default:
		return false
	}
}

// Config 定义缓存配置，每实例不可变。
type Config struct {
	// MaxEntries 条目数上限。
	// 必须大于 0 且不超过 16,777,216。
	MaxEntries int

	// MaxMemoryBytes 内存预算（字节），独立于条目数上限生效。
	// 0 表示不设预算，不允许负值。
	MaxMemoryBytes int64

	// Strategy 淘汰策略。零值为 StrategyLRU。
	Strategy Strategy

	// DefaultTTL 条目默认存活时间。
	// 0 表示永不过期，不允许负值。SetWithTTL 可逐条覆盖。
	DefaultTTL time.Duration
}

// validate 校验配置，返回首个违规项对应的哨兵错误。
func (c Config) validate() error {
	if c.MaxEntries <= 0 {
		return ErrInvalidCapacity
	}
	if c.MaxEntries > maxCapacity {
		return ErrCapacityExceedsMax
	}
	if c.MaxMemoryBytes < 0 {
		return ErrInvalidMemoryBudget
	}
	if !c.Strategy.valid() {
		return ErrInvalidStrategy
	}
	if c.DefaultTTL < 0 {
		return ErrInvalidTTL
	}
	return nil
}
