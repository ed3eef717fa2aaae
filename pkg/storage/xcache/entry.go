package xcache

import "time"

// entry 是单个缓存条目及其簿记，归创建它的 Cache 实例独占。
type entry[V any] struct {
	key   string
	value V

	// seq 单调递增的插入序号，是所有策略平手时的决胜键。
	// 覆盖写不改变 seq。
	seq uint64

	createdAt      time.Time
	lastAccessedAt time.Time

	// accessCount 成功 Get 的次数，LFU 策略的排序键。
	accessCount uint64

	// expiresAt 零值表示永不过期。
	expiresAt time.Time

	// size 插入时计算的字节估计，内存记账使用。
	size int64
}

// expired 报告条目在 now 时刻是否已过期。
func (e *entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}
