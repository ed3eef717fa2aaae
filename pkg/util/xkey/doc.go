// Package xkey 提供确定性的缓存键组合工具。
//
// Compose 将任意的异构输入序列拼接为一个稳定的字符串键：
// 相同的输入序列总是产生相同的键，不同的序列产生碰撞的概率可忽略不计。
// 主要供 xcache / xmemo 的调用方（颜色转换、主题生成等）拼装缓存键使用。
//
// # 序列化规则
//
//   - nil 渲染为字面量 "null"
//   - 哨兵值 Undefined 渲染为字面量 "undefined"
//   - 字符串原样使用，布尔和数值通过 strconv 格式化
//   - 实现 fmt.Stringer 的值使用其 String() 结果
//   - 其他结构化值序列化为规范 JSON（encoding/json 对 map 键排序，
//     因此相同内容的 map 总是产生相同的片段）
//
// 片段之间使用固定分隔符 "-" 连接。
//
// # 超长键
//
// 组合结果超过 256 字节时，会被折叠为截断前缀加 xxhash64 摘要，
// 避免超长键占用条目存储空间。折叠后的键仍然是确定性的。
//
// # 注意事项
//
//   - Compose 永不失败：无法 JSON 序列化的值回退到 fmt 格式化
//   - 片段自身含有分隔符时不做转义，调用方应避免依赖键的可逆解析
package xkey
