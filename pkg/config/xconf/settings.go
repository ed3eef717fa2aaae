package xconf

import (
	"fmt"
	"strings"
	"time"

	"github.com/omeyang/tintkit/pkg/storage/xcache"
)

// Settings 是 tintkit 组件的完整配置。
type Settings struct {
	// Cache 缓存配置。
	Cache CacheSettings `koanf:"cache"`

	// Pool 对象池配置。
	Pool PoolSettings `koanf:"pool"`
}

// CacheSettings 对应 xcache.Config 加后台清理间隔。
// 时间字段接受 Go duration 字符串（如 "5m"、"30s"）。
type CacheSettings struct {
	// MaxEntries 条目数上限。
	MaxEntries int `koanf:"max_entries"`

	// MaxMemoryBytes 内存预算（字节），0 表示不设预算。
	MaxMemoryBytes int64 `koanf:"max_memory_bytes"`

	// Strategy 淘汰策略名：lru、lfu 或 fifo。
	// 不区分大小写，空字符串等同 lru。
	Strategy string `koanf:"strategy"`

	// DefaultTTL 条目默认存活时间，0 表示永不过期。
	DefaultTTL time.Duration `koanf:"default_ttl"`

	// SweepInterval 后台清理间隔，0 表示不启用后台清理。
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

// PoolSettings 对应 xpool 的构造参数。
type PoolSettings struct {
	// MaxIdle 空闲列表容量。
	MaxIdle int `koanf:"max_idle"`
}

// DefaultSettings 返回所有字段的默认值。
// Load/LoadBytes 在这些默认值之上合并文件内容。
func DefaultSettings() Settings {
	return Settings{
		Cache: CacheSettings{
			MaxEntries: 1024,
			Strategy:   "lru",
		},
		Pool: PoolSettings{
			MaxIdle: 64,
		},
	}
}

// CacheConfig 把配置值转换为 xcache.Config。
// 策略名到枚举的映射在这里一次性完成，未知策略名返回 ErrUnknownStrategy。
// SweepInterval 不属于 xcache.Config，由调用方通过 xcache.WithSweepInterval 传入。
func (s CacheSettings) CacheConfig() (xcache.Config, error) {
	strategy, err := parseStrategy(s.Strategy)
	if err != nil {
		return xcache.Config{}, err
	}
	return xcache.Config{
		MaxEntries:     s.MaxEntries,
		MaxMemoryBytes: s.MaxMemoryBytes,
		Strategy:       strategy,
		DefaultTTL:     s.DefaultTTL,
	}, nil
}

// validate 校验配置值，加载期调用。
func (s Settings) validate() error {
	if _, err := s.Cache.CacheConfig(); err != nil {
		return err
	}
	if s.Cache.MaxEntries <= 0 {
		return fmt.Errorf("%w: cache.max_entries must be positive", ErrInvalidSettings)
	}
	if s.Cache.MaxMemoryBytes < 0 {
		return fmt.Errorf("%w: cache.max_memory_bytes must not be negative", ErrInvalidSettings)
	}
	if s.Cache.DefaultTTL < 0 {
		return fmt.Errorf("%w: cache.default_ttl must not be negative", ErrInvalidSettings)
	}
	if s.Cache.SweepInterval < 0 {
		return fmt.Errorf("%w: cache.sweep_interval must not be negative", ErrInvalidSettings)
	}
	if s.Pool.MaxIdle <= 0 {
		return fmt.Errorf("%w: pool.max_idle must be positive", ErrInvalidSettings)
	}
	return nil
}

// parseStrategy 把策略名映射为枚举。
func parseStrategy(name string) (xcache.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lru":
		return xcache.StrategyLRU, nil
	case "lfu":
		return xcache.StrategyLFU, nil
	case "fifo":
		return xcache.StrategyFIFO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
