package dijkstra

import (
	"container/heap"
)

// ShortestPath computes the minimum-total-weight path from start to the
// first node satisfying isTarget, expanding nodes supplied by succ.
//
// Returns:
//
//   - path: the node sequence including both endpoints. If start itself
//     satisfies the predicate the path is the single node [start] at cost 0.
//   - cost: the summed arc weights along path. May legitimately be negative
//     when the successor graph carries negated arcs (Bhandari iterations).
//   - err:  a validation sentinel, or ErrTargetUnreachable when the predicate
//     holds for no reachable node.
//
// Steps:
//  1. Validate start, succ, isTarget (fail-fast sentinels).
//  2. Push (start, 0) and run the main loop: pop the cheapest label, skip it
//     if stale against the dist map, stop if it satisfies the predicate,
//     otherwise relax its successors.
//  3. Reconstruct the node sequence by walking the predecessor map backward
//     from the accepting node.
//
// Stale entries are detected by comparing the popped cost against dist, NOT
// by a visited set. A node improved after settlement is re-expanded, which
// keeps the search correct on the signed working graphs of the disjoint
// iteration (no negative cycle reachable, by the caller's construction).
//
// Complexity: O((V + E) log V) time, O(V + E) space, on non-negative inputs.
func ShortestPath(start int, isTarget TargetFunc, succ SuccessorFunc, opts ...Option) ([]int, int64, error) {
	// 1) Build options and validate inputs, in order.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if start < 0 {
		return nil, 0, ErrBadStart
	}
	if succ == nil {
		return nil, 0, ErrNilSuccessors
	}
	if isTarget == nil {
		return nil, 0, ErrNilTarget
	}

	// 2) Prepare search state. Maps rather than slices: the successor
	//    function defines the node universe, not this package.
	dist := map[int]int64{start: 0} // best known label per node
	prev := map[int]int{}           // predecessor on the best path

	pq := make(nodePQ, 0, 16)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{node: start, dist: 0})

	var u int
	var d int64
	for pq.Len() > 0 {
		// 2a) Pop the cheapest label.
		item := heap.Pop(&pq).(*nodeItem)
		u = item.node
		d = item.dist

		// 2b) Skip stale entries: a cheaper label for u was found after this
		//     entry was pushed. Comparing against dist (instead of a visited
		//     set) is what makes re-expansion after improvement possible.
		if best, ok := dist[u]; ok && d > best {
			continue
		}

		// 2c) Stop at the first accepting node; its label is final.
		if isTarget(u) {
			return assemble(prev, start, u), d, nil
		}

		// 2d) Distance cap (non-negative graphs only): labels are popped in
		//     ascending order there, so everything beyond is out of reach.
		if d > cfg.MaxDistance {
			break
		}

		// 2e) Relax all outgoing arcs of u.
		for _, a := range succ(u) {
			nd := d + a.Weight
			if best, ok := dist[a.To]; ok && nd >= best {
				continue
			}
			dist[a.To] = nd
			prev[a.To] = u
			heap.Push(&pq, &nodeItem{node: a.To, dist: nd})
		}
	}

	// 3) The queue drained (or the cap cut exploration) without acceptance.
	return nil, 0, ErrTargetUnreachable
}

// assemble walks the predecessor map backward from end to start and returns
// the forward node sequence.
func assemble(prev map[int]int, start, end int) []int {
	// Count hops first so the slice is allocated exactly once.
	n := 1
	for v := end; v != start; v = prev[v] {
		n++
	}
	path := make([]int, n)
	for i, v := n-1, end; i >= 0; i, v = i-1, prev[v] {
		path[i] = v
		if v == start {
			break
		}
	}

	return path
}

// nodeItem is one (node, label) entry in the priority queue.
type nodeItem struct {
	node int   // node index
	dist int64 // label: cost of the best path known when pushed
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, operated
// under the lazy-decrease-key discipline: improvements push fresh entries,
// stale ones are discarded when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by label: smaller dist pops first.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new element; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
