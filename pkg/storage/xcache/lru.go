package xcache

import "container/list"

// lru 按访问新旧排序：链表头部最新，尾部最旧。
// Get 与覆盖写都会把条目移到头部，平手规则由链表顺序天然保证。
type lru[V any] struct {
	order *list.List
	elems map[string]*list.Element
}

func newLRU[V any]() *lru[V] {
	return &lru[V]{
		order: list.New(),
		elems: make(map[string]*list.Element),
	}
}

func (p *lru[V]) onInsert(e *entry[V]) {
	p.elems[e.key] = p.order.PushFront(e)
}

func (p *lru[V]) onAccess(e *entry[V]) {
	if el, ok := p.elems[e.key]; ok {
		p.order.MoveToFront(el)
	}
}

func (p *lru[V]) onUpdate(e *entry[V]) {
	// 覆盖写视为一次触达
	p.onAccess(e)
}

func (p *lru[V]) onRemove(e *entry[V]) {
	if el, ok := p.elems[e.key]; ok {
		p.order.Remove(el)
		delete(p.elems, e.key)
	}
}

func (p *lru[V]) victim() *entry[V] {
	back := p.order.Back()
	if back == nil {
		return nil
	}
	return back.Value.(*entry[V])
}

func (p *lru[V]) reset() {
	p.order.Init()
	clear(p.elems)
}
