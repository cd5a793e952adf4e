// Package disjoint: result and option types plus the sentinel errors making
// up the composer's failure taxonomy.
package disjoint

import "errors"

// Sentinel errors returned by Paths, Uncross helpers, and Reassemble.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Paths.
	ErrNilGraph = errors.New("disjoint: graph is nil")

	// ErrBadK indicates a requested path count below 1. k = 0 is rejected
	// by contract rather than answered with an empty path list.
	ErrBadK = errors.New("disjoint: k must be at least 1")

	// ErrNodeOutOfRange indicates a source or target index outside [0, n).
	ErrNodeOutOfRange = errors.New("disjoint: source or target out of range")

	// ErrSameSourceTarget indicates source == target, which is rejected by
	// contract rather than answered with k trivial zero-length paths.
	ErrSameSourceTarget = errors.New("disjoint: source equals target")

	// ErrNoPath indicates the first search found no route at all: the
	// target is unreachable from the source in the original graph.
	ErrNoPath = errors.New("disjoint: no path from source to target")

	// ErrKPathsUnreachable indicates a search after the first failed: the
	// graph holds fewer than k link-disjoint paths. The Result returned
	// alongside carries the paths accumulated before the failing iteration.
	ErrKPathsUnreachable = errors.New("disjoint: fewer than k link-disjoint paths exist")

	// ErrReconstruct indicates the uncrossed link set did not decompose into
	// source-rooted, target-terminated walks - a malformed instance or an
	// internal invariant violation, reported distinctly and never papered
	// over by guessing a traversal.
	ErrReconstruct = errors.New("disjoint: surviving links do not decompose into source-to-target walks")
)

// Link is one directed hop (From, To) of a path. A path's link list is the
// sequence of its consecutive node pairs.
type Link struct {
	// From is the origin node index of the hop.
	From int

	// To is the destination node index of the hop.
	To int
}

// Result is the outcome of a Paths run.
//
// Costs holds the PER-ITERATION search costs in iteration order, not the
// costs of the final reconstructed Paths: iteration i may have traversed
// reversed links later cancelled by uncrossing, so Costs[i] can be negative
// and need not match any single final path. TotalCost, their sum, equals
// the true minimum total cost of the returned disjoint path set.
type Result struct {
	// Paths are the link-disjoint node sequences, each from source to target.
	Paths [][]int

	// Costs are the per-iteration search costs, in iteration order.
	Costs []int64

	// TotalCost is the sum of Costs: the minimum achievable total cost.
	TotalCost int64
}

// Options configures the behavior of Paths.
//   - Verbose: if true, print each iteration's search cost.
type Options struct {
	Verbose bool
}

// DefaultOptions returns production-safe defaults (quiet run).
func DefaultOptions() Options {
	return Options{}
}
