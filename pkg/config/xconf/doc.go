// Package xconf 提供 tintkit 组件的类型化配置加载，基于 koanf 实现。
//
// # 设计理念
//
// xconf 不是通用配置框架，而是面向 xcache/xpool 的类型化加载器：
// 把 YAML/JSON 配置文件解析成 Settings 结构体，并在加载期完成合法性
// 校验（淘汰策略名到枚举的映射只发生一次，运行期不做字符串分发）。
//
// 未出现在文件中的键保留 DefaultSettings 给出的默认值，
// 因此最小配置文件可以只写需要覆盖的键。
//
// # 支持的格式
//
//   - YAML（推荐）：.yaml, .yml
//   - JSON：.json
//
// # 并发安全
//
// 所有方法都是并发安全的：
//   - Reload() 通过 sync.Mutex 序列化并发调用，防止配置回退；
//     解析和校验全部成功后才替换当前快照
//   - Settings() 返回值快照，调用方可自由持有
//
// Settings() 返回的是值拷贝而非指针：Reload() 之后旧快照仍然有效，
// 只是内容过期。需要最新配置时重新调用 Settings()。
//
// # 配置监视
//
// 支持文件变更监视和自动重载（基于 fsnotify）。
// 特性：监视目录、内置防抖、支持 vim/emacs 原子写入。
// 从字节数据创建的 Loader 不支持监视。
// Stop() 保证返回后不再有回调执行。在回调中调用 Stop() 是安全的，不会死锁。
package xconf
