package xcache

// policy 是淘汰策略的内部接口。
// 策略只维护淘汰顺序所需的簿记，条目的存储归 Cache 所有。
// 所有回调都在 Cache 的互斥锁内执行。
type policy[V any] interface {
	// onInsert 在新键入库后调用。
	onInsert(e *entry[V])

	// onAccess 在成功 Get 后调用，此时 accessCount 已自增。
	onAccess(e *entry[V])

	// onUpdate 在覆盖写后调用。
	// 覆盖写不是"新插入"：FIFO 顺序与 LFU 计数保持不变，LRU 视为一次触达。
	onUpdate(e *entry[V])

	// onRemove 在条目因任何原因离开存储前调用。
	onRemove(e *entry[V])

	// victim 返回下一个淘汰候选，存储为空时返回 nil。
	// 平手规则：同等资格的条目中取 seq 最小（最早插入）者。
	victim() *entry[V]

	// reset 丢弃全部簿记（Clear/Destroy 路径）。
	reset()
}

// newPolicy 按封闭枚举分发策略实现。
// cfg.validate 已排除未知值，这里的 panic 属于不可达的内部断言。
func newPolicy[V any](s Strategy) policy[V] {
	switch s {
	case StrategyLRU:
		return newLRU[V]()
	case StrategyLFU:
		return newLFU[V]()
	case StrategyFIFO:
		return newFIFO[V]()
	default:
		panic("xcache: unknown strategy: " + s.String())
	}
}
