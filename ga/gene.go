// File: gene.go
// Role: Gene, the (root, offset) encoding of one merge.

package ga

// Gene encodes the merge of Root into (Root+Offset) mod N, where N is the
// original vertex count. Offsets are kept in [0, N).
type Gene struct {
	Root   int
	Offset int
}

// Target returns the vertex the root is merged into on an n-vertex graph.
func (g Gene) Target(n int) int {
	return (g.Root + g.Offset) % n
}

// GeneFor encodes a merge of root into target on an n-vertex graph.
func GeneFor(root, target, n int) Gene {
	return Gene{Root: root, Offset: floorMod(target-root, n)}
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}
