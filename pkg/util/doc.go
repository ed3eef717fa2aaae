// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xkey: 缓存键组合器，任意参数序列到确定性字符串键的规范化
//   - xmemo: 纯函数记忆化，基于 xcache 的有界 LRU 结果缓存
//   - xpool: 泛型对象池，有界空闲列表、复用统计、可选重置回调
//
// 设计原则：
//   - 泛型优先，调用方不做类型断言
//   - 构造期校验参数，运行期方法不返回配置类错误
//   - 并发安全
package util
