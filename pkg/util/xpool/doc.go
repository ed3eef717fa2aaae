// Package xpool 提供固定形状值记录的对象池实现。
//
// Pool 回收生命周期极短的值记录（如颜色空间转换的结果对象），
// 避免高频分配/释放带来的 GC 压力，并统计创建与复用比例。
//
// # 核心特性
//
//   - 泛型支持：Pool[T] 管理 *T 槽位，字段在复用时被覆盖
//   - 懒创建：空闲列表为空时才构造新槽位
//   - 有界空闲列表：Release 时超过 maxIdle 的槽位直接丢弃
//   - 复用统计：Stats() 返回创建数、复用数、空闲数和复用率
//   - 并发安全：所有方法由内部互斥锁保护
//
// # 所有权模型
//
// 槽位在空闲时归 Pool 所有；Acquire 将所有权转移给调用方，
// Release 将所有权交还。槽位除字段值外不携带任何身份，
// 复用时字段会被 WithReset 回调清零或被调用方覆盖。
//
// # 注意事项
//
//   - Release(nil) 是安全的 no-op
//   - Clear 只丢弃空闲槽位，已借出的槽位保持有效，只是归还时面对空池
//   - 同一槽位重复 Release 属于调用方错误，Pool 不做检测
//   - Acquire 返回的槽位字段内容未定义，调用方必须完整覆盖
package xpool
