// Package dijkstra implements a single-source, single-target shortest-path
// search over a successor function, using a min-heap priority queue with the
// "lazy decrease-key" strategy.
//
// Overview:
//
//   - The search is parameterized by a SuccessorFunc rather than a concrete
//     graph type, so the same routine serves both the original core.Graph
//     (via its Successors method) and the per-iteration working graphs the
//     disjoint package derives while running Bhandari's algorithm.
//   - The target is a predicate, not a fixed node. Target(t) builds the usual
//     equality predicate; the search stops at the first settled node that
//     satisfies it and returns the full node sequence plus its total cost.
//   - Weights are signed. Unlike a textbook Dijkstra, a popped entry is
//     discarded only when it is stale against the current best distance - a
//     node whose label improves after settlement is simply re-expanded. On
//     graphs with non-negative weights this degenerates to the classic
//     algorithm; on graphs holding negative arcs it remains correct PROVIDED
//     the caller guarantees no negative cycle is reachable. The disjoint
//     package upholds that invariant by construction (reversed shortest-path
//     trees never close a negative cycle); this package does not re-verify
//     it, since doing so would cost more than the search itself.
//
// Determinism: for a fixed input and a successor function with stable
// iteration order, the returned path is always the same. When several
// minimum-cost paths exist, which one is returned is unspecified but stable.
//
// Complexity (non-negative weights): O((V + E) log V) time, O(V + E) space.
//
// Errors (sentinel):
//
//	ErrBadStart           - the start node index is negative.
//	ErrNilSuccessors      - no successor function was provided.
//	ErrNilTarget          - no target predicate was provided.
//	ErrTargetUnreachable  - the predicate holds for no node reachable from
//	                        start. Recoverable: it signals infeasibility of
//	                        the current graph, not a programming error.
package dijkstra
