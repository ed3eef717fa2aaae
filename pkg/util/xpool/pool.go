package xpool

import (
	"log/slog"
	"sync"
)

// maxIdleLimit 空闲列表容量上限。
const maxIdleLimit = 1 << 24 // 16,777,216

// Pool 是固定形状值记录的对象池。
// 必须通过 [New] 创建，零值不可用。所有方法都是并发安全的。
type Pool[T any] struct {
	mu      sync.Mutex
	idle    []*T
	maxIdle int

	created uint64
	reused  uint64

	newFn  func() *T
	reset  func(*T)
	logger *slog.Logger
	name   string
}

// Stats 是对象池的统计快照。
type Stats struct {
	// Created 构造的槽位总数。
	Created uint64

	// Reused 从空闲列表复用的次数。
	Reused uint64

	// Idle 当前空闲槽位数。
	Idle int

	// ReuseRate 复用率：Reused / (Created + Reused)。
	// 没有任何 Acquire 发生时为 0。
	ReuseRate float64
}

// New 创建对象池。
// maxIdle 是空闲列表容量：必须大于 0 且不超过 16,777,216。
func New[T any](maxIdle int, opts ...Option[T]) (*Pool[T], error) {
	if maxIdle <= 0 {
		return nil, ErrInvalidMaxIdle
	}
	if maxIdle > maxIdleLimit {
		return nil, ErrMaxIdleExceedsMax
	}

	o := defaultOptions[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return &Pool[T]{
		idle:    make([]*T, 0, maxIdle),
		maxIdle: maxIdle,
		newFn:   o.newFn,
		reset:   o.reset,
		logger:  o.logger,
		name:    o.name,
	}, nil
}

// Acquire 取出一个槽位，所有权转移给调用方。
// 优先复用空闲槽位，空闲列表为空时懒创建新槽位。
// 槽位的字段内容未定义，调用方必须覆盖后再使用。
func (p *Pool[T]) Acquire() *T {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.idle); n > 0 {
		slot := p.idle[n-1]
		p.idle[n-1] = nil // 解除列表对槽位的引用
		p.idle = p.idle[:n-1]
		p.reused++
		return slot
	}

	p.created++
	return p.newFn()
}

// Release 归还槽位。
// 空闲列表未满时槽位重新入池；已满时直接丢弃交给 GC。
// Release(nil) 是安全的 no-op。
func (p *Pool[T]) Release(slot *T) {
	if slot == nil {
		return
	}
	if p.reset != nil {
		p.reset(slot)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.idle) >= p.maxIdle {
		// 超过容量的槽位不保留
		return
	}
	p.idle = append(p.idle, slot)
}

// Stats 返回统计快照。
func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := p.created + p.reused
	var rate float64
	if total > 0 {
		rate = float64(p.reused) / float64(total)
	}

	return Stats{
		Created:   p.created,
		Reused:    p.reused,
		Idle:      len(p.idle),
		ReuseRate: rate,
	}
}

// Clear 丢弃所有空闲槽位。
// 已借出的槽位保持有效，归还时按正常路径处理。
// 创建/复用计数不受影响。
func (p *Pool[T]) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	dropped := len(p.idle)
	for i := range p.idle {
		p.idle[i] = nil
	}
	p.idle = p.idle[:0]

	if dropped > 0 {
		p.logger.Debug("xpool: idle slots dropped",
			"pool", p.name,
			"count", dropped,
		)
	}
}

// MaxIdle 返回空闲列表容量。
func (p *Pool[T]) MaxIdle() int {
	return p.maxIdle
}
