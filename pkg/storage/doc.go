// Package storage 提供数据存储相关的子包。
//
// 子包列表：
//   - xcache: 进程内键值缓存，LRU/LFU/FIFO 淘汰、逐条 TTL、内存预算、
//     批量操作、统计与 OpenTelemetry 指标
//
// 设计原则：
//   - 容量与内存边界在任何操作返回前恢复，不做异步淘汰
//   - 统计计数器单调递增（Clear/Destroy 重置除外）
//   - 内置可观测性（结构化日志、可选指标注册）
package storage
