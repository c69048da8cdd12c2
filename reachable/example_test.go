package reachable_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/vpg/pgio"
	"github.com/katalvlaran/vpg/reachable"
)

// ExampleComputeReachable drops vertex 0, which no play from the initial
// vertex 1 can visit, and renumbers the rest in discovery order.
func ExampleComputeReachable() {
	g, err := pgio.ReadPG(strings.NewReader(`parity 2;
start 1;
0 3 1 0;
1 2 0 2;
2 0 1 1;
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	trimmed, mapping, err := reachable.ComputeReachable(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(mapping)
	if err := pgio.WritePG(os.Stdout, trimmed); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// [-1 0 1]
	// parity 1;
	// 0 2 0 1;
	// 1 0 1 0;
}
