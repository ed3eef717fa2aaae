package xcache

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// 后台清理 goroutine 必须随 Destroy 退出
	goleak.VerifyTestMain(m)
}
