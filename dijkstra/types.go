// Package dijkstra: option types, sentinel errors, and the SuccessorFunc
// contract shared by every caller of the search.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/bhandari/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrBadStart indicates a negative start node index.
	ErrBadStart = errors.New("dijkstra: start node index is negative")

	// ErrNilSuccessors indicates that no successor function was provided.
	ErrNilSuccessors = errors.New("dijkstra: successor function is nil")

	// ErrNilTarget indicates that no target predicate was provided.
	ErrNilTarget = errors.New("dijkstra: target predicate is nil")

	// ErrTargetUnreachable indicates that no reachable node satisfies the
	// target predicate. This is a recoverable infeasibility signal, not a
	// crash condition: the disjoint package maps it onto its own failure
	// taxonomy ("no path" vs. "fewer than k disjoint paths").
	ErrTargetUnreachable = errors.New("dijkstra: target unreachable from start")

	// ErrBadMaxDistance indicates WithMaxDistance received a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// SuccessorFunc reports the outgoing arcs of node u. The search calls it
// once per expansion of u; implementations must return arcs in a stable
// order for the search to be deterministic.
//
// core.Graph.Successors satisfies this contract directly:
//
//	path, cost, err := dijkstra.ShortestPath(src, dijkstra.Target(dst), g.Successors)
type SuccessorFunc func(u int) []core.Arc

// TargetFunc decides whether node u terminates the search.
type TargetFunc func(u int) bool

// Target returns the equality predicate "node == t", the usual single-target
// termination condition.
func Target(t int) TargetFunc {
	return func(u int) bool { return u == t }
}

// Options configures the behavior of ShortestPath.
//
// MaxDistance caps exploration: once the cheapest unsettled label exceeds
// the cap the search gives up. Meaningful ONLY when every arc weight is
// non-negative; with negative arcs a label may still shrink below the cap
// later, so callers feeding signed working graphs must leave it unset.
type Options struct {
	MaxDistance int64 // labels beyond this are not explored
}

// Option is a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance sets a non-negative exploration cap.
// Panics with ErrBadMaxDistance on a negative argument.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the production defaults: no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}
