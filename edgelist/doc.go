// Package edgelist is the I/O collaborator of the path algorithms: it reads
// weighted edge lists from text and translates human-readable node names to
// the dense integer indices the core packages operate on, and back.
//
// # Line syntax
//
// One edge per line, three whitespace-separated fields:
//
//	FROM WEIGHT TO
//
// Blank lines and lines starting with "//" are skipped. Extra fields after
// TO are ignored. Example:
//
//	// backbone links
//	fra 7 ams
//	ams 3 lon
//
// With WithUndirected(), every line yields two opposite directed edges of
// equal weight - the algorithms themselves only ever reason about directed
// edges, so undirected inputs are modeled here, at the boundary.
//
// # Name indexing
//
// NewNameIndex collects every name mentioned by an edge list, sorts and
// deduplicates it, and assigns dense indices [0, n) in sorted order. The
// mapping is deterministic: the same edge list always produces the same
// index. IndexedEdges converts a named edge list into core.Edge values, and
// NamePath translates result paths back into names.
package edgelist
