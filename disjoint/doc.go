// Package disjoint computes k mutually link-disjoint paths of minimum total
// cost between a source and a target node, using the Suurballe/Bhandari
// successive-shortest-paths method.
//
// The method runs one shortest-path search per requested path. Before each
// search after the first, a fresh working graph is derived from the original
// (immutable) core.Graph: every link used by a previously accumulated path
// is removed and replaced by its reverse with negated weight. A later search
// that traverses such a reversed link "cancels" a suboptimal segment of an
// earlier path - the defining trick of Bhandari's method. After each search
// the full path set is "uncrossed": links traversed in opposite directions
// by two paths annihilate pairwise, and the surviving link set is walked
// back into explicit node sequences rooted at the source.
//
// # Algorithm outline
//
//  1. P1 := shortest path on the original graph.
//  2. For i in 2..k:
//     a. Rebuild the working adjacency from the original edge set.
//     b. For every link (u,v) of every accumulated path, in accumulation
//     order: delete (u,v), insert (v,u) with weight -w. Exactly once per
//     link per path, never merged across paths.
//     c. Pi := shortest path on the working graph. Its cost may be negative;
//     that is expected, not an error.
//     d. Uncross the accumulated link lists (symmetric cancel-or-add).
//     e. Reassemble the surviving links into source-rooted walks.
//  3. Total cost = sum of the k per-iteration search costs. By the
//     Suurballe/Bhandari optimality argument this equals the true minimum
//     total cost of k link-disjoint paths; no recount over the final
//     reconstructed paths is needed.
//
// The searches stay correct despite negated weights because each working
// graph is derived from a union of shortest paths, which never closes a
// negative cycle. That invariant is upheld here by construction and is
// exactly what the dijkstra package's label-correcting pop rule relies on.
//
// # Guarantees and limits
//
//   - Paths are link-disjoint (no shared directed edge), not node-disjoint:
//     two result paths may pass through the same intermediate node.
//   - Undirected inputs must be modeled upstream as two opposite directed
//     edges of equal weight (the edgelist package does this); this package
//     reasons about directed edges only.
//   - Infeasibility is a reported failure, never a crash: see the sentinel
//     taxonomy below.
//
// # Errors (sentinel)
//
//	ErrNilGraph          - the graph is nil.
//	ErrBadK              - k < 1 (k = 0 is rejected by contract).
//	ErrNodeOutOfRange    - source or target outside [0, n).
//	ErrSameSourceTarget  - source == target (rejected by contract).
//	ErrNoPath            - the very first search finds no route at all.
//	ErrKPathsUnreachable - a later search fails: fewer than k link-disjoint
//	                       paths exist. The partial Result carries the paths
//	                       accumulated before the failing iteration.
//	ErrReconstruct       - the surviving link set does not decompose into
//	                       source-rooted, target-terminated walks. Reported
//	                       distinctly, never resolved by guessing.
//
// The computation is single-threaded and CPU-bound; iterations are strictly
// sequential because each depends on all prior paths. There is deliberately
// no context or timeout parameter - callers wanting deadline behavior wrap
// the whole Paths call externally.
package disjoint
