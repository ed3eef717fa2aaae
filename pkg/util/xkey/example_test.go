package xkey_test

import (
	"fmt"

	"github.com/omeyang/tintkit/pkg/util/xkey"
)

func ExampleCompose() {
	fmt.Println(xkey.Compose("user", 123, true))
	fmt.Println(xkey.Compose("t", nil, xkey.Undefined))
	// Output:
	// user-123-true
	// t-null-undefined
}

func ExampleCompose_structured() {
	// map 序列化为规范 JSON，键顺序不影响结果
	key := xkey.Compose("hsl", map[string]int{"s": 50, "h": 200})
	fmt.Println(key)
	// Output:
	// hsl-{"h":200,"s":50}
}
