// Package dijkstra implements priority-first shortest hop counts between
// supernodes of a contracted graph.
//
// Notes on implementation choices:
//
//   - Only representatives enter the heap; adjacency is read through Graph.Neighbors.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Distance stops as soon as the target representative is finalised.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes hop distances from the source's representative to every
// vertex of g. The returned slice is indexed by original id; a vertex merged
// into representative r reports dist[r]. Unreachable vertices report Unreachable.
//
// With WithReturnPath, prev[r] is the representative preceding r on one
// shortest path (NoPredecessor for the source and unreachable ones);
// non-representatives carry NoPredecessor.
//
// Complexity: O((V + E) log V).
func Dijkstra(g Graph, opts ...Option) ([]int, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.Size()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d with %d vertices", ErrVertexNotFound, cfg.Source, n)
	}

	r := newRunner(g, cfg, -1)
	r.process()

	dist := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = r.dist[g.Representative(v)]
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}

	return dist, r.prev, nil
}

// Distance returns the hop count between the supernodes of u and v over the
// current adjacency. It is 0 when both share a representative and Unreachable
// when no path exists or either id is out of range.
func Distance(g Graph, u, v int) int {
	if g == nil {
		return Unreachable
	}
	n := g.Size()
	if u < 0 || u >= n || v < 0 || v >= n {
		return Unreachable
	}
	src, dst := g.Representative(u), g.Representative(v)
	if src == dst {
		return 0
	}

	cfg := DefaultOptions()
	cfg.Source = src
	r := newRunner(g, cfg, dst)
	r.process()

	return r.dist[dst]
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	target  int // representative to stop at; -1 explores everything
	dist    []int
	prev    []int
	visited []bool
	pq      nodePQ
}

func newRunner(g Graph, cfg Options, target int) *runner {
	n := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		target:  target,
		dist:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}

	src := g.Representative(cfg.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})

	return r
}

// process pops the closest unfinalised representative until the heap is
// empty, MaxDistance is exceeded or the target is finalised.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.target {
			return
		}
		r.relax(u, item.dist)
	}
}

// relax pushes every neighbour of u whose distance improves through u.
func (r *runner) relax(u, d int) {
	next := d + 1
	if next > r.options.MaxDistance {
		return
	}
	for _, v := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		if r.dist[v] != Unreachable && next >= r.dist[v] {
			continue
		}
		r.dist[v] = next
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: next})
	}
}

// nodeItem represents a representative and its current distance from the source.
type nodeItem struct {
	id   int
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
