// Package layout places the supernodes of a contracted graph in the plane
// and exports the graph as Graphviz DOT.
//
// Coordinates come from classical multidimensional scaling of the hop
// distances between representatives, normalised to [0,1] on each axis.
package layout

import (
	stderrors "errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"

	"github.com/katalvlaran/supernode/core"
)

// ErrNilGraph is returned for a nil graph.
var ErrNilGraph = stderrors.New("layout: graph is nil")

// Point is a position in the unit square.
type Point struct {
	X, Y float64
}

// Node is one placed supernode.
type Node struct {
	core.Supernode
	Pos Point
}

// Layout is a placed contracted graph.
type Layout struct {
	Nodes []Node // ascending representative id
	Edges []core.Edge
	// Fake lists fake links between representatives.
	Fake []core.Edge

	index map[int]int
}

// Position returns the position of representative rep.
func (l *Layout) Position(rep int) (Point, bool) {
	i, ok := l.index[rep]
	if !ok {
		return Point{}, false
	}
	return l.Nodes[i].Pos, true
}

// Compute places every supernode of g.
func Compute(g *core.ContractedGraph) (*Layout, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	supers := g.Supernodes()
	l := &Layout{
		Nodes: make([]Node, len(supers)),
		Edges: g.CurrentEdges(),
		Fake:  fakeBetweenReps(g),
		index: make(map[int]int, len(supers)),
	}
	for i, s := range supers {
		l.Nodes[i] = Node{Supernode: s, Pos: Point{X: 0.5, Y: 0.5}}
		l.index[s.ID] = i
	}
	if len(supers) < 2 {
		return l, nil
	}

	coords := embed(toGonum(g, supers), supers)
	normalise(coords)
	for i := range l.Nodes {
		l.Nodes[i].Pos = coords[i]
	}

	return l, nil
}

// fakeBetweenReps lifts fake links from member ids to their representatives.
func fakeBetweenReps(g *core.ContractedGraph) []core.Edge {
	seen := make(map[core.Edge]bool)
	var out []core.Edge
	for _, e := range g.FakeEdgeList() {
		a, b := g.Representative(e.From), g.Representative(e.To)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		k := core.Edge{From: a, To: b}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

func toGonum(g *core.ContractedGraph, supers []core.Supernode) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, s := range supers {
		ug.AddNode(simple.Node(s.ID))
	}
	for _, e := range g.CurrentEdges() {
		ug.SetEdge(ug.NewEdge(simple.Node(e.From), simple.Node(e.To)))
	}

	return ug
}

// embed runs Torgerson scaling over all-pairs hop distances. Unreachable
// pairs are placed one hop beyond the largest finite distance.
func embed(ug *simple.UndirectedGraph, supers []core.Supernode) []Point {
	n := len(supers)
	all := path.DijkstraAllPaths(ug)

	far := 0.0
	dist := make([][]float64, n)
	for i := range supers {
		dist[i] = make([]float64, n)
		for j := range supers {
			d := all.Weight(int64(supers[i].ID), int64(supers[j].ID))
			dist[i][j] = d
			if !math.IsInf(d, 1) && d > far {
				far = d
			}
		}
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d := dist[i][j]
			if math.IsInf(d, 1) {
				d = far + 1
			}
			sym.SetSym(i, j, d)
		}
	}

	var out mat.Dense
	k, _ := mds.TorgersonScaling(&out, nil, sym)

	points := make([]Point, n)
	for i := range points {
		if k >= 1 {
			points[i].X = out.At(i, 0)
		}
		if k >= 2 {
			points[i].Y = out.At(i, 1)
		}
	}

	return points
}

func normalise(ps []Point) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range ps {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	scale := func(v, lo, hi float64) float64 {
		if hi-lo < 1e-9 {
			return 0.5
		}
		return (v - lo) / (hi - lo)
	}
	for i := range ps {
		ps[i] = Point{X: scale(ps[i].X, minX, maxX), Y: scale(ps[i].Y, minY, maxY)}
	}
}

// DOT renders the current structure of g. Supernodes are labelled with their
// members, and fake links between representatives are drawn dashed.
func DOT(g *core.ContractedGraph) string {
	if g == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("graph contracted {\n")
	fmt.Fprintf(&b, "  label=\"fake links: %d\";\n", g.TotalFakeLinks())
	for _, s := range g.Supernodes() {
		fmt.Fprintf(&b, "  n%d [label=\"%s\"];\n", s.ID, joinInts(s.Members))
	}
	for _, e := range g.CurrentEdges() {
		fmt.Fprintf(&b, "  n%d -- n%d;\n", e.From, e.To)
	}
	for _, e := range fakeBetweenReps(g) {
		fmt.Fprintf(&b, "  n%d -- n%d [style=dashed, color=red];\n", e.From, e.To)
	}
	b.WriteString("}\n")

	return b.String()
}

func joinInts(s []int) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}
