// Package core: central Edge and Arc types plus the sentinel errors
// returned during Graph construction and lookup.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadOrder indicates that the requested node count n is not positive.
	ErrBadOrder = errors.New("core: node count must be positive")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrNegativeWeight indicates a negative weight on an input edge.
	// Negative weights are legal only in graphs derived during the
	// disjoint-path iteration, never in the original input.
	ErrNegativeWeight = errors.New("core: negative edge weight in input graph")

	// ErrLoopNotAllowed indicates an edge whose endpoints coincide.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an ordered (From, To, Weight) triple over dense node indices.
//
// From and To must lie in [0, n) for the Graph the edge belongs to.
// Weight is a signed cost: non-negative in any input graph, possibly
// negative in working graphs derived by the disjoint package.
type Edge struct {
	// From is the source node index.
	From int

	// To is the destination node index.
	To int

	// Weight is the traversal cost of the edge.
	Weight int64
}

// Arc is one outgoing hop as seen from its origin node.
// Successors(u) reports arcs, the origin being implied by u.
type Arc struct {
	// To is the destination node index.
	To int

	// Weight is the traversal cost of the hop.
	Weight int64
}
