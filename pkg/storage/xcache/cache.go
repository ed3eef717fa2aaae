package xcache

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache 是键为字符串、值为 V 的多策略有界缓存。
// 必须通过 [New] 创建，零值不可用。所有方法都是并发安全的。
type Cache[V any] struct {
	mu      sync.Mutex
	cfg     Config
	entries map[string]*entry[V]
	pol     policy[V]

	// seq 单调递增的插入序号发生器
	seq uint64

	// memBytes 运行中的内存估计总量
	memBytes int64

	hits        uint64
	misses      uint64
	evictions   uint64
	expirations uint64

	clock     func() time.Time
	sizer     Sizer
	onEvicted func(key string, value V)
	logger    *slog.Logger
	name      string

	destroyed bool

	// sf 合并 GetOrLoad 的并发回源
	sf singleflight.Group

	// 后台清理
	sweepInterval time.Duration
	done          chan struct{}
	wg            sync.WaitGroup
}

// KV 是 SetMany 的批量条目。
type KV[V any] struct {
	Key   string
	Value V

	// TTL 为 0 时使用 Config.DefaultTTL。
	TTL time.Duration
}

// Lookup 是 GetMany 的单项结果。
type Lookup[V any] struct {
	Value V
	OK    bool
}

// New 创建缓存实例。
// 配置违规时返回对应的哨兵错误（见 errors.go），实例不会被部分构造。
// 启用 WithSweepInterval 时会启动后台清理 goroutine，
// 使用完毕必须调用 Destroy 释放，否则 goroutine 泄漏。
func New[V any](cfg Config, opts ...Option[V]) (*Cache[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := defaultOptions[V]()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.sweepInterval < 0 {
		return nil, ErrInvalidSweepInterval
	}

	c := &Cache[V]{
		cfg:           cfg,
		entries:       make(map[string]*entry[V]),
		pol:           newPolicy[V](cfg.Strategy),
		clock:         o.clock,
		sizer:         o.sizer,
		onEvicted:     o.onEvicted,
		logger:        o.logger,
		name:          o.name,
		sweepInterval: o.sweepInterval,
		done:          make(chan struct{}),
	}

	if c.sweepInterval > 0 {
		c.startSweeper()
	}
	return c, nil
}

// Set 写入条目，TTL 取 Config.DefaultTTL。
// 键去除空白后为空时返回 ErrInvalidKey，存储不受影响。
func (c *Cache[V]) Set(key string, value V) error {
	return c.SetWithTTL(key, value, c.cfg.DefaultTTL)
}

// SetWithTTL 写入条目并逐条指定 TTL，0 表示永不过期。
//
// 覆盖已有条目时更新值、访问时间、TTL 和大小估计，
// 但保留插入序号、创建时间和访问计数——覆盖写不会被当作"新插入"
// 重新参与淘汰排序（LRU 例外：覆盖写视为一次触达）。
// 写入后同步收敛条目数与内存双上限；单个值独自超出内存预算时，
// 刚写入的条目自身也可能立即被淘汰。
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if ttl < 0 {
		return ErrInvalidTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return ErrDestroyed
	}

	now := c.clock()
	size := c.sizer(value)

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}

	if e, ok := c.entries[key]; ok {
		c.memBytes += size - e.size
		e.value = value
		e.size = size
		e.lastAccessedAt = now
		e.expiresAt = expiresAt
		c.pol.onUpdate(e)
	} else {
		c.seq++
		e := &entry[V]{
			key:            key,
			value:          value,
			seq:            c.seq,
			createdAt:      now,
			lastAccessedAt: now,
			expiresAt:      expiresAt,
			size:           size,
		}
		c.entries[key] = e
		c.memBytes += size
		c.pol.onInsert(e)
	}

	c.enforceBoundsLocked()
	return nil
}

// Get 读取条目。
// 命中已过期条目视为 miss：条目被即时删除并计入 misses。
// 命中时刷新访问簿记并计入 hits。实例已 Destroy 时返回零值且不计统计。
func (c *Cache[V]) Get(key string) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return value, false
	}

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return value, false
	}

	now := c.clock()
	if e.expired(now) {
		c.removeEntryLocked(e)
		c.expirations++
		c.misses++
		var zero V
		return zero, false
	}

	e.accessCount++
	e.lastAccessedAt = now
	c.pol.onAccess(e)
	c.hits++
	return e.value, true
}

// Has 报告键是否存在且未过期。
// 与 Get 做相同的过期判断，但不更新簿记、不计统计、不删除过期条目。
func (c *Cache[V]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return false
	}
	e, ok := c.entries[key]
	return ok && !e.expired(c.clock())
}

// Delete 删除条目，返回是否确有条目被移除。
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return false
	}
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.removeEntryLocked(e)
	return true
}

// Clear 清空存储并把全部统计计数归零。
// 计数归零是确定性要求：Clear 之后的统计与新建实例一致。
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}
	c.clearLocked()
}

// clearLocked 重置存储、策略簿记和统计。
func (c *Cache[V]) clearLocked() {
	clear(c.entries)
	c.pol.reset()
	c.memBytes = 0
	c.hits = 0
	c.misses = 0
	c.evictions = 0
	c.expirations = 0
}

// Cleanup 同步扫除全部已过期条目，返回移除数量。
// 不依赖后台清理是否启用。
func (c *Cache[V]) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return 0
	}
	return c.cleanupLocked(c.clock())
}

// cleanupLocked 执行一次过期扫除。
func (c *Cache[V]) cleanupLocked(now time.Time) int {
	var expired []*entry[V]
	for _, e := range c.entries {
		if e.expired(now) {
			expired = append(expired, e)
		}
	}
	for _, e := range expired {
		c.removeEntryLocked(e)
	}
	c.expirations += uint64(len(expired))
	return len(expired)
}

// SetMany 按给定顺序逐条写入，单条语义与 Set 一致。
// 条目的 TTL 为 0 时使用 Config.DefaultTTL。
// 遇到首个无效键立即返回错误，之前已写入的条目保持生效。
func (c *Cache[V]) SetMany(items []KV[V]) error {
	for _, item := range items {
		ttl := item.TTL
		if ttl == 0 {
			ttl = c.cfg.DefaultTTL
		}
		if err := c.SetWithTTL(item.Key, item.Value, ttl); err != nil {
			return err
		}
	}
	return nil
}

// GetMany 按给定顺序逐条读取，单条语义与 Get 一致。
// 返回切片与 keys 等长且一一对应。
func (c *Cache[V]) GetMany(keys []string) []Lookup[V] {
	results := make([]Lookup[V], len(keys))
	for i, key := range keys {
		v, ok := c.Get(key)
		results[i] = Lookup[V]{Value: v, OK: ok}
	}
	return results
}

// DeleteMany 按给定顺序逐条删除，返回确有移除的条目数。
func (c *Cache[V]) DeleteMany(keys []string) int {
	n := 0
	for _, key := range keys {
		if c.Delete(key) {
			n++
		}
	}
	return n
}

// Keys 返回全部键，按插入先后排序（确定性输出）。
// 可能包含已过期但尚未被清理的条目的键。
func (c *Cache[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return nil
	}

	es := make([]*entry[V], 0, len(c.entries))
	for _, e := range c.entries {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })

	keys := make([]string, len(es))
	for i, e := range es {
		keys[i] = e.key
	}
	return keys
}

// Len 返回当前条目数。
// 可能包含已过期但尚未被清理的条目。
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return 0
	}
	return len(c.entries)
}

// Stats 返回统计快照。实例已 Destroy 时返回零快照。
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return Stats{}
	}
	return c.statsLocked()
}

// Destroy 停止后台清理并清空存储，保证返回后不再有任何清扫发生。
// 该方法是幂等的。此后读操作返回零值/false，写操作返回 ErrDestroyed。
func (c *Cache[V]) Destroy() error {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return nil
	}
	c.destroyed = true
	c.clearLocked()
	c.mu.Unlock()

	// 在锁外停止并等待清理 goroutine：它的 Cleanup 需要拿同一把锁
	close(c.done)
	c.wg.Wait()
	return nil
}

// enforceBoundsLocked 收敛条目数与内存双上限。
// 每个超限单位淘汰一个受害者，循环直到两个不变式同时满足或存储为空。
func (c *Cache[V]) enforceBoundsLocked() {
	for len(c.entries) > c.cfg.MaxEntries {
		if !c.evictOneLocked() {
			break
		}
	}
	if c.cfg.MaxMemoryBytes > 0 {
		for c.memBytes > c.cfg.MaxMemoryBytes && len(c.entries) > 0 {
			if !c.evictOneLocked() {
				break
			}
		}
	}
}

// evictOneLocked 按当前策略淘汰一个受害者。
func (c *Cache[V]) evictOneLocked() bool {
	victim := c.pol.victim()
	if victim == nil {
		return false
	}

	c.removeEntryLocked(victim)
	c.evictions++

	if c.onEvicted != nil {
		c.onEvicted(victim.key, victim.value)
	}
	c.logger.Debug("xcache: entry evicted",
		"cache", c.name,
		"key", victim.key,
		"strategy", c.cfg.Strategy.String(),
	)
	return true
}

// removeEntryLocked 把条目从存储、策略簿记和内存总量中摘除。
func (c *Cache[V]) removeEntryLocked(e *entry[V]) {
	c.pol.onRemove(e)
	delete(c.entries, e.key)
	c.memBytes -= e.size
	if c.memBytes < 0 {
		// 记账为负说明簿记被破坏，属于编程错误
		panic("xcache: memory accounting went negative")
	}
}
