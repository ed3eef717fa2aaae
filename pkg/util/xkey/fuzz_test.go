package xkey

import (
	"strings"
	"testing"
)

func FuzzCompose(f *testing.F) {
	f.Add("user", int64(123), true)
	f.Add("", int64(0), false)
	f.Add(strings.Repeat("k", 1024), int64(-1), true) // 超长片段
	f.Add("a-b", int64(42), false)                    // 片段内含分隔符

	f.Fuzz(func(t *testing.T, s string, n int64, b bool) {
		// 组合不应 panic，且必须是确定性的
		k1 := Compose(s, n, b)
		k2 := Compose(s, n, b)
		if k1 != k2 {
			t.Fatalf("Compose not deterministic: %q != %q", k1, k2)
		}
		// 折叠后的键不应超过上限
		if len(k1) > maxRawLen {
			t.Fatalf("key exceeds max length: %d", len(k1))
		}
	})
}
