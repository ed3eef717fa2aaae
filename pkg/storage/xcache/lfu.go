package xcache

// lfu 按访问频次分桶：buckets[f] 存放 accessCount == f 的全部条目。
// minFreq 避免淘汰时扫描整个频次空间；桶内平手按 seq（最早插入）决出。
type lfu[V any] struct {
	buckets map[uint64]map[string]*entry[V]
	minFreq uint64
}

func newLFU[V any]() *lfu[V] {
	return &lfu[V]{
		buckets: make(map[uint64]map[string]*entry[V]),
	}
}

func (p *lfu[V]) onInsert(e *entry[V]) {
	// 空桶在 take 中即时删除，len == 0 等价于没有任何条目
	wasEmpty := len(p.buckets) == 0
	p.put(e.accessCount, e)
	if wasEmpty || e.accessCount < p.minFreq {
		p.minFreq = e.accessCount
	}
}

func (p *lfu[V]) onAccess(e *entry[V]) {
	// accessCount 已由 Cache 自增，旧桶是 count-1
	old := e.accessCount - 1
	p.take(old, e.key)
	p.put(e.accessCount, e)

	// 旧桶清空且恰好是最小频次时，最小频次只可能前进到新桶
	if p.minFreq == old && len(p.buckets[old]) == 0 {
		p.minFreq = e.accessCount
	}
}

func (p *lfu[V]) onUpdate(*entry[V]) {
	// 覆盖写保留原有频次
}

func (p *lfu[V]) onRemove(e *entry[V]) {
	p.take(e.accessCount, e.key)
	if p.minFreq == e.accessCount && len(p.buckets[e.accessCount]) == 0 {
		p.recomputeMinFreq()
	}
}

func (p *lfu[V]) victim() *entry[V] {
	bucket := p.buckets[p.minFreq]
	if len(bucket) == 0 {
		return nil
	}

	var oldest *entry[V]
	for _, e := range bucket {
		if oldest == nil || e.seq < oldest.seq {
			oldest = e
		}
	}
	return oldest
}

func (p *lfu[V]) reset() {
	clear(p.buckets)
	p.minFreq = 0
}

func (p *lfu[V]) put(freq uint64, e *entry[V]) {
	bucket, ok := p.buckets[freq]
	if !ok {
		bucket = make(map[string]*entry[V])
		p.buckets[freq] = bucket
	}
	bucket[e.key] = e
}

func (p *lfu[V]) take(freq uint64, key string) {
	if bucket, ok := p.buckets[freq]; ok {
		delete(bucket, key)
		if len(bucket) == 0 {
			delete(p.buckets, freq)
		}
	}
}

// recomputeMinFreq 在最小频次桶被移除后重新扫描。
// 代价与当前不同频次的数量成正比，移除是低频路径。
func (p *lfu[V]) recomputeMinFreq() {
	p.minFreq = 0
	first := true
	for freq, bucket := range p.buckets {
		if len(bucket) == 0 {
			continue
		}
		if first || freq < p.minFreq {
			p.minFreq = freq
			first = false
		}
	}
}
