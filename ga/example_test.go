package ga_test

import (
	"fmt"

	"github.com/katalvlaran/supernode/builder"
	"github.com/katalvlaran/supernode/ga"
)

// ExampleReplay contracts two leaves of a five-vertex star into the hub's
// neighbourhood and reports the fake links that costs.
func ExampleReplay() {
	g, _ := builder.BuildGraph(builder.Star(5))
	res, err := ga.Replay(g, "[(1,1),(2,1)]")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Fitness, res.Graph.CurrentSize())
	fmt.Println(res.Graph)
	// Output:
	// 3 3
	// {{[0] -> 3,4},{[1, 2, 3] -> 0},{[4] -> 0}}
}
