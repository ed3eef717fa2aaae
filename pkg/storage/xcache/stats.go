package xcache

// Stats 是缓存统计的一致性快照，在互斥锁内整体读出。
type Stats struct {
	// Hits 命中次数。
	Hits uint64

	// Misses 未命中次数（含命中已过期条目的情况）。
	Misses uint64

	// Evictions 因条目数上限或内存预算被淘汰的条目数。
	Evictions uint64

	// Expirations 因 TTL 到期被移除的条目数（惰性删除与清扫都计入）。
	Expirations uint64

	// Size 当前条目数。
	Size int

	// MaxEntries 配置的条目数上限。
	MaxEntries int

	// Utilization 条目利用率百分比：Size / MaxEntries * 100。
	Utilization float64

	// HitRate 命中率：Hits / (Hits + Misses)，无查询时为 0。
	HitRate float64

	// MemoryBytes 当前估计内存占用。
	MemoryBytes int64

	// MaxMemoryBytes 配置的内存预算，0 表示未设预算。
	MaxMemoryBytes int64
}

// statsLocked 在持锁状态下组装快照。
func (c *Cache[V]) statsLocked() Stats {
	s := Stats{
		Hits:           c.hits,
		Misses:         c.misses,
		Evictions:      c.evictions,
		Expirations:    c.expirations,
		Size:           len(c.entries),
		MaxEntries:     c.cfg.MaxEntries,
		MemoryBytes:    c.memBytes,
		MaxMemoryBytes: c.cfg.MaxMemoryBytes,
	}

	if c.cfg.MaxEntries > 0 {
		s.Utilization = float64(len(c.entries)) / float64(c.cfg.MaxEntries) * 100
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}
