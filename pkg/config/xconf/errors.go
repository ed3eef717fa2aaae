package xconf

import "errors"

// 配置加载和校验相关错误。
var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 表示配置文件读取失败。
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrUnmarshalFailed 表示配置反序列化失败。
	ErrUnmarshalFailed = errors.New("xconf: failed to unmarshal config")

	// ErrUnknownStrategy 表示淘汰策略名不在已知集合内。
	ErrUnknownStrategy = errors.New("xconf: unknown eviction strategy")

	// ErrInvalidSettings 表示配置值未通过校验。
	ErrInvalidSettings = errors.New("xconf: invalid settings")

	// ErrReloadUnsupported 表示从字节数据创建的 Loader 不支持重载。
	ErrReloadUnsupported = errors.New("xconf: cannot reload config created from bytes")

	// ErrWatchUnsupported 表示从字节数据创建的 Loader 不支持监视。
	ErrWatchUnsupported = errors.New("xconf: cannot watch config created from bytes")
)
