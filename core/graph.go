package core

import (
	"fmt"
	"sort"
)

// Graph is an immutable directed weighted graph over nodes [0, n),
// indexed for O(1) successor lookup.
//
// Construct with NewGraph; the zero value is not usable.
// A Graph is safe for concurrent readers because nothing mutates it
// after construction.
type Graph struct {
	n         int     // number of nodes
	adj       [][]Arc // adj[u] holds the outgoing arcs of u, ascending by To
	edgeCount int     // total number of retained edges
}

// NewGraph builds an immutable Graph over n nodes from the given edge set.
//
// Validation (in order, fail-fast):
//  1. n must be positive (ErrBadOrder).
//  2. Every endpoint must lie in [0, n) (ErrNodeOutOfRange).
//  3. Self-loops are rejected (ErrLoopNotAllowed).
//  4. Weights must be non-negative (ErrNegativeWeight) - the original graph
//     feeding the first search iteration never carries negative weights.
//
// Duplicate directed pairs: the FIRST occurrence wins; later duplicates are
// dropped silently. This is the documented deterministic tie-break for edge
// lists that mention the same ordered pair more than once.
//
// Complexity: O(E log d_max) for per-node successor sorting, O(V + E) space.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	// 1) Validate node count.
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadOrder, n)
	}

	// 2) Validate every edge, then index it by origin.
	adj := make([][]Arc, n)
	seen := make(map[[2]int]struct{}, len(edges))
	count := 0
	var e Edge
	for _, e = range edges {
		if e.From < 0 || e.From >= n {
			return nil, fmt.Errorf("%w: edge %d→%d, from=%d, n=%d", ErrNodeOutOfRange, e.From, e.To, e.From, n)
		}
		if e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge %d→%d, to=%d, n=%d", ErrNodeOutOfRange, e.From, e.To, e.To, n)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("%w: node %d", ErrLoopNotAllowed, e.From)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}

		// First occurrence of an ordered pair wins; drop the rest.
		key := [2]int{e.From, e.To}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		adj[e.From] = append(adj[e.From], Arc{To: e.To, Weight: e.Weight})
		count++
	}

	// 3) Sort each successor list by target index so that iteration order,
	//    and therefore every search over the Graph, is deterministic.
	for u := range adj {
		sort.Slice(adj[u], func(i, j int) bool { return adj[u][i].To < adj[u][j].To })
	}

	return &Graph{n: n, adj: adj, edgeCount: count}, nil
}

// NodeCount returns n, the number of nodes the Graph was built over.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of retained directed edges
// (after duplicate-pair dropping).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasNode reports whether u is a valid node index for this Graph.
func (g *Graph) HasNode(u int) bool { return u >= 0 && u < g.n }

// Successors returns the outgoing arcs of u in ascending target order.
//
// The returned slice aliases the Graph's internal storage and MUST NOT be
// mutated by the caller; this keeps the hot path of repeated shortest-path
// queries allocation-free. Out-of-range u yields nil.
//
// Complexity: O(1).
func (g *Graph) Successors(u int) []Arc {
	if !g.HasNode(u) {
		return nil
	}

	return g.adj[u]
}

// Weight returns the weight of the directed edge u→v and whether it exists.
//
// Complexity: O(log d(u)) via binary search over the sorted successor list.
func (g *Graph) Weight(u, v int) (int64, bool) {
	if !g.HasNode(u) {
		return 0, false
	}
	arcs := g.adj[u]
	i := sort.Search(len(arcs), func(i int) bool { return arcs[i].To >= v })
	if i < len(arcs) && arcs[i].To == v {
		return arcs[i].Weight, true
	}

	return 0, false
}

// Edges returns a fresh slice of all retained edges, ordered by From then To.
// The copy is safe to mutate; the Graph itself stays untouched.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, arcs := range g.adj {
		for _, a := range arcs {
			out = append(out, Edge{From: u, To: a.To, Weight: a.Weight})
		}
	}

	return out
}
