package xmemo_test

import (
	"fmt"

	"github.com/omeyang/tintkit/pkg/util/xmemo"
)

func ExampleNew() {
	calls := 0
	square, _ := xmemo.New(func(n int) int {
		calls++
		return n * n
	})

	fmt.Println(square.Do(6))
	fmt.Println(square.Do(6))
	fmt.Println("calls:", calls)
	// Output:
	// 36
	// 36
	// calls: 1
}

func ExampleNewErr() {
	parse, _ := xmemo.NewErr(func(s string) (int, error) {
		var n int
		_, err := fmt.Sscanf(s, "%d", &n)
		return n, err
	})

	n, err := parse.Do("42")
	fmt.Println(n, err)
	// Output:
	// 42 <nil>
}
