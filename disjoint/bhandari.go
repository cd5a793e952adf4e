package disjoint

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/bhandari/core"
	"github.com/katalvlaran/bhandari/dijkstra"
)

// Paths computes k link-disjoint paths of minimum total cost from source to
// target in g.
//
// Returns:
//
//   - *Result with exactly k pairwise link-disjoint paths on success.
//   - On ErrKPathsUnreachable, a partial *Result carrying the paths found
//     before the failing iteration, alongside the wrapped sentinel.
//   - On any other failure, a nil Result and the wrapped sentinel.
//
// Steps:
//  1. Validate g, source, target, k (fail-fast sentinels, documented order).
//  2. First search on the original graph; unreachable here means ErrNoPath.
//  3. For each remaining iteration: rebuild the working adjacency from the
//     original edges, reverse-and-negate every accumulated link, search,
//     uncross, reassemble. Unreachable here means ErrKPathsUnreachable.
//  4. Sum the per-iteration costs into TotalCost.
//
// Complexity: O(k · (V + E) log V) time for the searches plus O(k² · L) for
// the uncrossing scans, L being the accumulated link count; O(V + E) space
// per iteration (the working graph is rebuilt fresh and never shared).
func Paths(g *core.Graph, source, target, k int, opts Options) (*Result, error) {
	// 1) Validate inputs, in order.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrNodeOutOfRange, source, g.NodeCount())
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: target=%d, n=%d", ErrNodeOutOfRange, target, g.NodeCount())
	}
	if source == target {
		return nil, fmt.Errorf("%w: node %d", ErrSameSourceTarget, source)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadK, k)
	}

	// 2) First search runs on the untouched original graph.
	first, cost, err := dijkstra.ShortestPath(source, dijkstra.Target(target), g.Successors)
	if err != nil {
		if errors.Is(err, dijkstra.ErrTargetUnreachable) {
			return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
		}

		return nil, err
	}

	paths := [][]int{first}
	costs := []int64{cost}
	total := cost
	if opts.Verbose {
		fmt.Printf("bhandari: iteration 1 cost=%d total=%d\n", cost, total)
	}

	// 3) One extra iteration per additional requested path.
	for i := 2; i <= k; i++ {
		// 3a) Fresh working adjacency from the original edge set. Never
		//     shared across iterations; mutated only below.
		work := buildWorking(g)

		// 3b) Reverse and negate every link of every accumulated path, in
		//     accumulation order, exactly once per link per path.
		if err = reverseUsedLinks(work, paths); err != nil {
			return nil, err
		}

		// 3c) Search the working graph. A negative cost is legitimate: the
		//     path is buying back a suboptimal segment of an earlier one.
		var p []int
		var c int64
		p, c, err = dijkstra.ShortestPath(source, dijkstra.Target(target), workingSuccessors(work))
		if err != nil {
			if errors.Is(err, dijkstra.ErrTargetUnreachable) {
				partial := &Result{Paths: paths, Costs: costs, TotalCost: total}

				return partial, fmt.Errorf("%w: found %d of %d", ErrKPathsUnreachable, len(paths), k)
			}

			return nil, err
		}

		paths = append(paths, p)
		costs = append(costs, c)
		total += c
		if opts.Verbose {
			fmt.Printf("bhandari: iteration %d cost=%d total=%d\n", i, c, total)
		}

		// 3d) Uncross the accumulated link lists: opposing traversals of the
		//     same physical edge annihilate pairwise.
		sets := make([][]Link, len(paths))
		for j, path := range paths {
			sets[j] = PathLinks(path)
		}
		surviving := Uncross(sets...)

		// 3e) Walk the surviving links back into explicit node sequences.
		//     The pre-uncross paths are intermediate and replaced wholesale.
		paths, err = Reassemble(surviving, source, target)
		if err != nil {
			return nil, err
		}
	}

	return &Result{Paths: paths, Costs: costs, TotalCost: total}, nil
}

// buildWorking copies g's edge set into a mutable nested adjacency,
// work[u][v] = weight, one inner map per node. Mirrors the capacity-map
// layout used by the flow algorithms this package grew out of.
func buildWorking(g *core.Graph) map[int]map[int]int64 {
	n := g.NodeCount()
	work := make(map[int]map[int]int64, n)
	for u := 0; u < n; u++ {
		work[u] = make(map[int]int64)
	}
	for u := 0; u < n; u++ {
		for _, a := range g.Successors(u) {
			work[u][a.To] = a.Weight
		}
	}

	return work
}

// reverseUsedLinks applies Bhandari's transformation in place: for every
// link (u,v) of every path, remove (u,v) and insert (v,u) with the negated
// weight. Paths are processed in accumulation order; a link missing from
// the working graph means the accumulated paths no longer describe it,
// which is an internal invariant violation.
func reverseUsedLinks(work map[int]map[int]int64, paths [][]int) error {
	var u, v int
	for _, path := range paths {
		for i := 0; i+1 < len(path); i++ {
			u, v = path[i], path[i+1]
			w, ok := work[u][v]
			if !ok {
				return fmt.Errorf("%w: link %d→%d missing during reversal", ErrReconstruct, u, v)
			}
			delete(work[u], v)
			work[v][u] = -w
		}
	}

	return nil
}

// workingSuccessors adapts the mutable adjacency to the search's successor
// contract. Neighbor order is sorted ascending so the search over a
// map-backed working graph stays deterministic run to run.
func workingSuccessors(work map[int]map[int]int64) dijkstra.SuccessorFunc {
	return func(u int) []core.Arc {
		nbrs := work[u]
		if len(nbrs) == 0 {
			return nil
		}
		arcs := make([]core.Arc, 0, len(nbrs))
		for v, w := range nbrs {
			arcs = append(arcs, core.Arc{To: v, Weight: w})
		}
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].To < arcs[j].To })

		return arcs
	}
}
