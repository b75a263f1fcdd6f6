package builder_test

import (
	"fmt"

	"github.com/katalvlaran/supernode/builder"
)

// ExampleBuildGraph builds a wheel and reports its size.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(builder.Wheel(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Size(), g.OriginalEdgeCount(), g.OriginalDegree(5))
	// Output:
	// 6 10 5
}
