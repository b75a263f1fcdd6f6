// Package bfs provides breadth-first locality search over the current
// adjacency of a contracted graph, returning the representatives reachable
// within a hop bound, their depths, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
)

// subsetChunk is the widest bit run drawn from the random source at once.
const subsetChunk = 32

// queueItem pairs a representative with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	opts    BFSOptions
	ctx     context.Context
	start   int
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from representative(start).
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation or a context
// error.
//
// Complexity: O(V + E) over the current adjacency.
func BFS(g Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.Size() {
		return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}

	root := g.Representative(start)
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		start:   root,
		visited: make(map[int]bool),
		res: &BFSResult{
			Start:  root,
			Depth:  make(map[int]int),
			Parent: make(map[int]int),
		},
	}
	w.enqueue(root, 0, -1)

	return w.res, w.loop()
}

// Neighborhood returns every representative within depth hops of
// representative(root), root excluded, ascending.
func Neighborhood(g Graph, root, depth int) ([]int, error) {
	res, err := BFS(g, root, WithMaxDepth(depth))
	if err != nil {
		return nil, err
	}

	return res.Reached(), nil
}

// RandomNeighborhood is Neighborhood with randomised-subset expansion: at each
// expanded vertex a non-empty random subset of its neighbor list is followed.
// A neighbor that resolves back to the root is swapped for the entry before
// it (or after it, at index 0); with no such entry it is dropped.
func RandomNeighborhood(g Graph, root, depth int, rng *rand.Rand) ([]int, error) {
	res, err := BFS(g, root, WithMaxDepth(depth), WithRand(rng))
	if err != nil {
		return nil, err
	}

	return res.Reached(), nil
}

// SubsetMask draws an n-entry inclusion mask. The mask is filled in chunks of
// up to 32 entries and each chunk has at least one entry set.
func SubsetMask(n int, rng *rand.Rand) []bool {
	mask := make([]bool, 0, n)
	for remaining := n; remaining > 0; remaining -= subsetChunk {
		width := remaining
		if width > subsetChunk {
			width = subsetChunk
		}
		bits := rng.Int63n(int64(1)<<width-1) + 1
		for b := width - 1; b >= 0; b-- {
			mask = append(mask, bits&(int64(1)<<b) != 0)
		}
	}

	return mask
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if w.opts.MaxDepth != Unlimited && item.depth >= w.opts.MaxDepth {
			continue
		}
		w.expand(item)
	}

	return nil
}

// expand enqueues unseen neighbors of item, all of them or a random subset.
func (w *walker) expand(item queueItem) {
	neighbors := w.graph.Neighbors(item.id)
	var mask []bool
	if w.opts.Rand != nil && len(neighbors) > 0 {
		mask = SubsetMask(len(neighbors), w.opts.Rand)
	}
	for i, nbr := range neighbors {
		if mask != nil {
			if !mask[i] {
				continue
			}
			if nbr == w.start {
				switch {
				case i-1 >= 0:
					nbr = neighbors[i-1]
				case i+1 < len(neighbors):
					nbr = neighbors[i+1]
				}
			}
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1, item.id)
		}
	}
}

func sortInts(s []int) { sort.Ints(s) }
