// File: view.go
// Role: Read-only snapshots of the contracted state for printing, layout and rendering.

package core

import (
	"strconv"
	"strings"
)

// Supernode is a snapshot of one representative and what it stands for.
type Supernode struct {
	// ID is the representative id.
	ID int

	// Members lists every original id in the supernode, ascending.
	Members []int

	// Neighbors lists adjacent representatives, ascending.
	Neighbors []int
}

// Edge is an undirected pair with From < To.
type Edge struct {
	From, To int
}

// Supernodes returns one snapshot per representative in ascending id order.
//
// Complexity: O(V + E).
func (g *ContractedGraph) Supernodes() []Supernode {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Supernode, 0, g.size)
	for i := range g.records {
		if g.records[i].parent != i {
			continue
		}
		members, _ := insertSorted(cloneInts(g.records[i].absorbed), i)
		out = append(out, Supernode{
			ID:        i,
			Members:   members,
			Neighbors: cloneInts(g.current[i]),
		})
	}

	return out
}

// CurrentEdges returns each edge of the contracted graph once, ordered by (From, To).
func (g *ContractedGraph) CurrentEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for i := range g.records {
		if g.records[i].parent != i {
			continue
		}
		for _, nb := range g.current[i] {
			if i < nb {
				out = append(out, Edge{From: i, To: nb})
			}
		}
	}

	return out
}

// OriginalEdges returns each loaded edge once, ordered by (From, To).
// Merges do not affect it.
func (g *ContractedGraph) OriginalEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for i, nbrs := range g.original {
		for _, nb := range nbrs {
			if i < nb {
				out = append(out, Edge{From: i, To: nb})
			}
		}
	}

	return out
}

// FakeEdgeList returns each fake edge once, ordered by (From, To).
func (g *ContractedGraph) FakeEdgeList() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for i := range g.records {
		for _, nb := range g.records[i].fakes {
			if i < nb {
				out = append(out, Edge{From: i, To: nb})
			}
		}
	}

	return out
}

// String renders the graph as {[members] -> n1,n2,...} per representative,
// for example {{[0, 1] -> 2},{[2] -> 0}}.
func (g *ContractedGraph) String() string {
	nodes := g.Supernodes()
	parts := make([]string, 0, len(nodes))
	var sb strings.Builder
	for _, sn := range nodes {
		sb.Reset()
		sb.WriteString("{[")
		sb.WriteString(joinInts(sn.Members, ", "))
		sb.WriteString("] -> ")
		sb.WriteString(joinInts(sn.Neighbors, ","))
		sb.WriteString("}")
		parts = append(parts, sb.String())
	}

	return "{" + strings.Join(parts, ",") + "}"
}

func joinInts(s []int, sep string) string {
	strs := make([]string, len(s))
	for i, v := range s {
		strs[i] = strconv.Itoa(v)
	}

	return strings.Join(strs, sep)
}
