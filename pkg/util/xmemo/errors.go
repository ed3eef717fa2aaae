package xmemo

import "errors"

// 预定义错误
var (
	// ErrNilFunc 被包装的函数为 nil
	ErrNilFunc = errors.New("xmemo: function is nil")
	// ErrInvalidMaxSize 缓存容量非法（必须 > 0）
	ErrInvalidMaxSize = errors.New("xmemo: max size must be positive")
)
