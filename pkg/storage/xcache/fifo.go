package xcache

import "container/list"

// fifo 只跟踪插入顺序：链表头部最旧。
// 访问活动和覆盖写都不改变顺序。
type fifo[V any] struct {
	order *list.List
	elems map[string]*list.Element
}

func newFIFO[V any]() *fifo[V] {
	return &fifo[V]{
		order: list.New(),
		elems: make(map[string]*list.Element),
	}
}

func (p *fifo[V]) onInsert(e *entry[V]) {
	p.elems[e.key] = p.order.PushBack(e)
}

func (p *fifo[V]) onAccess(*entry[V]) {}

func (p *fifo[V]) onUpdate(*entry[V]) {}

func (p *fifo[V]) onRemove(e *entry[V]) {
	if el, ok := p.elems[e.key]; ok {
		p.order.Remove(el)
		delete(p.elems, e.key)
	}
}

func (p *fifo[V]) victim() *entry[V] {
	front := p.order.Front()
	if front == nil {
		return nil
	}
	return front.Value.(*entry[V])
}

func (p *fifo[V]) reset() {
	p.order.Init()
	clear(p.elems)
}
