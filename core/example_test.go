package core_test

import (
	"fmt"

	"github.com/katalvlaran/supernode/core"
)

// ExampleContractedGraph_Merge contracts two leaves of a star. They were not
// adjacent, so exactly one fake edge appears.
func ExampleContractedGraph_Merge() {
	g, _ := core.NewGraph(4)
	for leaf := 1; leaf < 4; leaf++ {
		_ = g.AddEdge(0, leaf)
	}

	work := g.Clone()
	merged, _ := work.Merge(1, 2)

	fmt.Println(merged, work.TotalFakeLinks(), work.CurrentSize())
	fmt.Println(work)
	fmt.Println(g.TotalFakeLinks())
	// Output:
	// true 1 3
	// {{[0] -> 2,3},{[1, 2] -> 0},{[3] -> 0}}
	// 0
}
