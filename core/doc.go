// Package core defines the immutable Graph model shared by every algorithm
// in bhandari: a finite set of directed weighted edges over dense integer
// node indices in [0, n).
//
// Design notes:
//
//   - Nodes are opaque dense indices. Human-readable names never reach this
//     package; translation to and from names is the edgelist package's job.
//   - A Graph is constructed once, validated eagerly, and read-only for the
//     rest of the run. Algorithms that need a mutable view (the per-iteration
//     working graphs of the disjoint package) build their own derived copies
//     and never touch the original.
//   - Successor lookup is indexed: outgoing arcs are grouped per node at
//     construction time, so Successors(u) is O(1) plus the arc count, not a
//     scan over the full edge list.
//   - Successor order is ascending by target index. This makes every search
//     over a Graph deterministic for a fixed input.
//
// Validation performed by NewGraph (all failures are sentinel errors):
//
//	ErrBadOrder        - n is zero or negative.
//	ErrNodeOutOfRange  - an edge endpoint lies outside [0, n).
//	ErrNegativeWeight  - an input edge carries a negative weight; only graphs
//	                     derived during the disjoint iteration may go negative,
//	                     never the original input.
//	ErrLoopNotAllowed  - an edge with From == To.
//
// Duplicate directed pairs are resolved deterministically: the first
// occurrence wins and later duplicates are dropped.
package core
