package edgelist

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bhandari/core"
)

// NameIndex maps node names to dense integer indices [0, n) and back.
//
// Indices are assigned in sorted name order, so the same edge list always
// yields the same mapping regardless of edge ordering.
type NameIndex struct {
	names  []string       // index → name, sorted ascending
	byName map[string]int // name → index
}

// NewNameIndex collects every name mentioned by edges, sorts and
// deduplicates, and assigns dense indices in sorted order.
func NewNameIndex(edges []Edge) *NameIndex {
	names := make([]string, 0, 2*len(edges))
	for _, e := range edges {
		names = append(names, e.From, e.To)
	}
	sort.Strings(names)

	// Dedup in place over the sorted slice.
	uniq := names[:0]
	for i, s := range names {
		if i == 0 || s != names[i-1] {
			uniq = append(uniq, s)
		}
	}

	byName := make(map[string]int, len(uniq))
	for i, s := range uniq {
		byName[s] = i
	}

	return &NameIndex{names: uniq, byName: byName}
}

// Len returns the number of distinct node names, i.e. n.
func (ix *NameIndex) Len() int { return len(ix.names) }

// IndexOf returns the dense index of name and whether it is known.
func (ix *NameIndex) IndexOf(name string) (int, bool) {
	i, ok := ix.byName[name]

	return i, ok
}

// NameOf returns the name at index i and whether i is in range.
func (ix *NameIndex) NameOf(i int) (string, bool) {
	if i < 0 || i >= len(ix.names) {
		return "", false
	}

	return ix.names[i], true
}

// IndexedEdges translates a named edge list into core.Edge values over this
// index. Unknown names yield ErrUnknownNode; edge order is preserved.
func (ix *NameIndex) IndexedEdges(edges []Edge) ([]core.Edge, error) {
	out := make([]core.Edge, len(edges))
	for i, e := range edges {
		from, ok := ix.byName[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, e.From)
		}
		to, ok := ix.byName[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, e.To)
		}
		out[i] = core.Edge{From: from, To: to, Weight: e.Weight}
	}

	return out, nil
}

// NamePath translates a path of dense indices back into node names.
func (ix *NameIndex) NamePath(path []int) ([]string, error) {
	out := make([]string, len(path))
	for i, v := range path {
		name, ok := ix.NameOf(v)
		if !ok {
			return nil, fmt.Errorf("%w: index %d", ErrUnknownNode, v)
		}
		out[i] = name
	}

	return out, nil
}

// NamePaths translates a list of index paths back into name paths.
func (ix *NameIndex) NamePaths(paths [][]int) ([][]string, error) {
	out := make([][]string, len(paths))
	var err error
	for i, p := range paths {
		if out[i], err = ix.NamePath(p); err != nil {
			return nil, err
		}
	}

	return out, nil
}
