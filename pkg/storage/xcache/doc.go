// Package xcache 提供多策略的有界内存缓存，是主题库的核心基础设施。
//
// 颜色空间转换和主题生成的结果通过 Cache 复用，避免重复计算。
// 缓存同时受条目数上限和可选的内存预算约束，两者在每次 Set
// 返回前同步收敛，任何公开操作返回后不变式都不会处于违反状态。
//
// # 核心组件
//
//   - 条目存储：键到值的映射加每条目簿记（时间戳、访问计数、大小估计）
//   - 淘汰策略：LRU / LFU / FIFO 三选一，构造时绑定（见 Strategy）
//   - 内存记账：可插拔的大小估计函数加运行总量，超预算时按当前策略淘汰
//   - 过期清理：惰性（Get 命中已过期即删）加显式 Cleanup，可选后台定时清理
//   - 统计收集：命中、未命中、淘汰、过期计数及派生的命中率和利用率
//
// # 淘汰策略
//
//   - StrategyLRU：淘汰 lastAccessedAt 最旧的条目，Get/Set 都会刷新位置
//   - StrategyLFU：淘汰 accessCount 最小的条目，平手时取最早插入者
//   - StrategyFIFO：淘汰最早插入的条目，访问活动不影响顺序
//
// 所有策略的平手规则一致：在同等资格的条目中选择最早插入的一个，
// 保证淘汰顺序稳定且确定。
//
// # TTL 语义
//
//   - TTL 是条目级别的，从 Set 时刻开始计算；覆盖写会刷新 TTL
//   - Get 命中已过期条目视为 miss，条目被即时删除并计入 misses
//   - Has 执行相同的过期判断，但不更新簿记和统计
//   - Cleanup 同步扫除全部已过期条目并返回数量
//   - WithSweepInterval 启用后台定时清理，Destroy 会先停止该 goroutine
//
// # 并发模型
//
// 单实例内部使用一把互斥锁串行化所有操作；操作全部同步完成，
// 不阻塞在任何 I/O 上。后台清理与前台操作共用同一把锁，
// 不会与进行中的 Set/Get 交错。单一持有者总是立即观察到自己之前的写入。
//
// # Destroy 后行为
//
// Destroy 幂等：停止后台清理、清空存储。此后读操作返回零值/false，
// 写操作返回 ErrDestroyed，统计返回零快照。该约定在全部方法上一致。
//
// # 错误分类
//
// 唯一被校验的前置条件是键非空（去除空白后），违反时返回 ErrInvalidKey。
// 未命中是正常返回值而非错误。内部不变式被破坏（如内存总量为负）
// 属于编程错误，直接 panic，正确实现下不可能通过公开 API 触达。
package xcache
