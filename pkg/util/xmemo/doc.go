// Package xmemo 提供基于 xcache 的纯函数记忆化。
//
// Memo 用有界的 LRU 缓存（无 TTL、无内存预算）包装一个纯函数：
// 相同参数的重复调用只执行一次底层函数，Clear 之后重新执行。
// 缓存键默认由 xkey.Compose 从参数派生，可通过 WithKeyFunc 定制。
//
// # 两种变体
//
//   - New：包装 func(A) V，结果无条件缓存
//   - NewErr：包装 func(A) (V, error)，失败结果不缓存，下次调用重新执行
//
// # 注意事项
//
//   - 被包装的函数必须是纯函数：相同输入总是产生相同输出且无副作用
//   - 缓存满时按 LRU 淘汰，被淘汰的参数组合会触发重新计算
//   - WithKeyFunc 返回空白键时结果直接透传、不进入缓存
//   - 所有方法并发安全，并发的相同参数调用可能出现少量重复计算
//     （先到者尚未写回时后到者也会执行），这对纯函数是无害的
package xmemo
