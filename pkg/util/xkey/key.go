package xkey

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Separator 是键片段之间的固定分隔符。
const Separator = "-"

// maxRawLen 是组合键折叠为摘要前允许的最大长度（字节）。
const maxRawLen = 256

// hashPrefixLen 是折叠键中保留的原始前缀长度，便于日志中肉眼区分键的来源。
const hashPrefixLen = 64

// undefined 是 Undefined 哨兵的底层类型。
type undefined struct{}

// Undefined 表示"调用方未提供该参数"的哨兵值。
// 渲染为字面量 "undefined"，与 nil（渲染为 "null"）区分开。
var Undefined undefined

// Compose 将任意值序列组合为确定性的字符串键。
// 相同的输入序列总是产生相同的键。永不返回错误。
func Compose(parts ...any) string {
	if len(parts) == 0 {
		return ""
	}

	segments := make([]string, len(parts))
	for i, p := range parts {
		segments[i] = stringify(p)
	}

	key := strings.Join(segments, Separator)
	if len(key) <= maxRawLen {
		return key
	}
	return collapse(key)
}

// collapse 将超长键折叠为截断前缀加 xxhash64 摘要。
// 摘要覆盖完整的原始键，因此折叠不破坏确定性。
func collapse(key string) string {
	sum := xxhash.Sum64String(key)
	return key[:hashPrefixLen] + "#" + strconv.FormatUint(sum, 16)
}

// stringify 将单个值渲染为键片段。
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	}

	// 结构化值：JSON 是规范形式（map 键有序）。
	// 序列化失败（channel、func 等）时回退到 fmt，保证永不失败。
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
