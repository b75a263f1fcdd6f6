package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/supernode/builder"
	"github.com/katalvlaran/supernode/dijkstra"
)

// ExampleDistance shows a merge shortening the path between the chain ends.
func ExampleDistance() {
	g, _ := builder.BuildGraph(builder.Path(6))
	fmt.Println(dijkstra.Distance(g, 0, 5))

	_, _ = g.Merge(2, 3)
	fmt.Println(dijkstra.Distance(g, 0, 5))
	// Output:
	// 5
	// 4
}
