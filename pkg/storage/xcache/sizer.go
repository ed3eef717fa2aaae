package xcache

import "encoding/json"

// Sizer 估计一个值占用的字节数。
// 估计不要求字节精确，但必须单调：结构上嵌套更多的值
// 不得估计得比更简单的值小。
type Sizer func(v any) int64

// entryOverhead 每条目的固定簿记开销（键头、时间戳、计数器等）。
const entryOverhead = 64

// fallbackSize 无法序列化的值（channel、func 等）的保守估计。
const fallbackSize = 64

// EstimateSize 是默认的大小估计函数。
// 标量按其内存宽度估计，字符串和字节切片按长度估计，
// 结构化值按 JSON 序列化长度估计——序列化长度随结构嵌套单调增长，
// 满足 Sizer 的单调性契约。所有估计都叠加固定的条目开销。
func EstimateSize(v any) int64 {
	return estimateValue(v) + entryOverhead
}

func estimateValue(v any) int64 {
	switch t := v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case int, int64, uint, uint64, float64:
		return 8
	case int32, uint32, float32:
		return 4
	case int16, uint16:
		return 2
	case int8, uint8:
		return 1
	case string:
		return int64(len(t)) + 16
	case []byte:
		return int64(len(t)) + 24
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fallbackSize
	}
	return int64(len(data))
}
