package xpool_test

import (
	"fmt"

	"github.com/omeyang/tintkit/pkg/util/xpool"
)

type rgbResult struct {
	R, G, B float64
}

func Example() {
	pool, err := xpool.New[rgbResult](16)
	if err != nil {
		panic(err)
	}

	// 短生命周期的转换结果：用完立即归还
	slot := pool.Acquire()
	slot.R, slot.G, slot.B = 0.1, 0.2, 0.3
	pool.Release(slot)

	// 第二次取出时复用同一槽位
	again := pool.Acquire()
	again.R, again.G, again.B = 0.9, 0.8, 0.7
	pool.Release(again)

	stats := pool.Stats()
	fmt.Println("created:", stats.Created)
	fmt.Println("reused:", stats.Reused)
	// Output:
	// created: 1
	// reused: 1
}

func ExampleWithReset() {
	pool, err := xpool.New(8, xpool.WithReset(func(r *rgbResult) {
		*r = rgbResult{}
	}))
	if err != nil {
		panic(err)
	}

	slot := pool.Acquire()
	slot.R = 1.0
	pool.Release(slot)

	fmt.Println(pool.Acquire().R)
	// Output:
	// 0
}
