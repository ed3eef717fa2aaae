package xpool

import "errors"

var (
	// ErrInvalidMaxIdle 表示空闲列表容量无效。
	ErrInvalidMaxIdle = errors.New("xpool: max idle must be greater than 0")

	// ErrMaxIdleExceedsMax 表示空闲列表容量超过上限 (16,777,216)。
	ErrMaxIdleExceedsMax = errors.New("xpool: max idle must not exceed 16777216")
)
