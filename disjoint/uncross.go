package disjoint

import "fmt"

// PathLinks returns the link list of a path: its consecutive (From, To)
// pairs in order. A path of a single node has no links and yields nil.
func PathLinks(path []int) []Link {
	if len(path) < 2 {
		return nil
	}
	links := make([]Link, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		links[i] = Link{From: path[i], To: path[i+1]}
	}

	return links
}

// Uncross merges the given link lists under the symmetric cancel-or-add
// rule: starting from the first list, each link of each subsequent list
// either annihilates an already-present counterpart - the same pair in
// EITHER direction, since two opposing traversals of one physical edge
// cancel out - or is appended.
//
// Order matters and is preserved: surviving links keep their first-insertion
// position, which in turn fixes the order Reassemble emits paths in.
//
// Uncross is idempotent on an already-disjoint result: calling it again on
// its own output (as a single list) returns an equal list.
//
// Complexity: O(L²) over the total link count L - a linear scan per link,
// matching the ordered-list semantics the cancel rule requires.
func Uncross(linkSets ...[]Link) []Link {
	if len(linkSets) == 0 {
		return nil
	}

	// Copy the first list; the caller's slices are never mutated.
	unique := make([]Link, len(linkSets[0]))
	copy(unique, linkSets[0])

	var pos int
	for _, links := range linkSets[1:] {
		for _, l := range links {
			// Scan for the directed link or its reverse counterpart.
			pos = -1
			for i, u := range unique {
				if (u.From == l.From && u.To == l.To) || (u.From == l.To && u.To == l.From) {
					pos = i
					break
				}
			}
			if pos >= 0 {
				// Opposing (or repeated) traversal: the pair cancels out.
				unique = append(unique[:pos], unique[pos+1:]...)
			} else {
				unique = append(unique, l)
			}
		}
	}

	return unique
}

// Reassemble decomposes a surviving link set into explicit node sequences:
// every link leaving source starts one path, which is then walked forward,
// consuming at each step the first remaining link out of the current node,
// until the target is reached.
//
// The link set must decompose EXACTLY: every walk must terminate at target
// and no link may be left over afterwards. Any violation - a dead end short
// of the target, a cycle, stray links - returns ErrReconstruct; the
// decomposition is never guessed.
//
// Paths are emitted in the order their starting links appear in links.
func Reassemble(links []Link, source, target int) ([][]int, error) {
	// Work on a copy; consumed links are removed as the walks progress.
	remaining := make([]Link, len(links))
	copy(remaining, links)

	// Every surviving link out of source roots one output path.
	starts := make([]Link, 0, 2)
	for _, l := range remaining {
		if l.From == source {
			starts = append(starts, l)
		}
	}

	paths := make([][]int, 0, len(starts))
	for _, s := range starts {
		path := []int{s.From, s.To}
		if err := consume(&remaining, s); err != nil {
			return nil, err
		}

		current := s.To
		// Each step consumes one link, so the walk cannot run longer than
		// the surviving link count; exceeding it means a cycle.
		for steps := 0; current != target; steps++ {
			if steps > len(links) {
				return nil, fmt.Errorf("%w: cycle detected while walking from node %d", ErrReconstruct, source)
			}
			next, ok := takeFrom(&remaining, current)
			if !ok {
				return nil, fmt.Errorf("%w: dead end at node %d", ErrReconstruct, current)
			}
			path = append(path, next)
			current = next
		}
		paths = append(paths, path)
	}

	// A clean decomposition uses every surviving link.
	if len(remaining) != 0 {
		return nil, fmt.Errorf("%w: %d links left over after reassembly", ErrReconstruct, len(remaining))
	}

	return paths, nil
}

// consume removes the exact link l from *remaining, erroring if absent.
func consume(remaining *[]Link, l Link) error {
	for i, r := range *remaining {
		if r == l {
			*remaining = append((*remaining)[:i], (*remaining)[i+1:]...)

			return nil
		}
	}

	return fmt.Errorf("%w: link %d→%d consumed twice", ErrReconstruct, l.From, l.To)
}

// takeFrom removes and returns the destination of the first remaining link
// whose origin is u; ok is false when no such link survives.
func takeFrom(remaining *[]Link, u int) (int, bool) {
	for i, r := range *remaining {
		if r.From == u {
			to := r.To
			*remaining = append((*remaining)[:i], (*remaining)[i+1:]...)

			return to, true
		}
	}

	return 0, false
}
