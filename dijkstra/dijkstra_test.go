// Package dijkstra_test contains unit tests for the successor-function
// shortest-path search: validation sentinels, basic path correctness,
// unreachable targets, signed-weight graphs, and the MaxDistance cap.
package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/bhandari/core"
	"github.com/katalvlaran/bhandari/dijkstra"
)

// mustGraph builds a core.Graph or fails the test.
func mustGraph(t *testing.T, n int, edges []core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, edges)
	if err != nil {
		t.Fatal(err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: fail-fast sentinels, in documented order.
// ------------------------------------------------------------------------

func TestShortestPath_BadStart(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(-1, dijkstra.Target(0), func(int) []core.Arc { return nil })
	if !errors.Is(err, dijkstra.ErrBadStart) {
		t.Fatalf("expected ErrBadStart, got %v", err)
	}
}

func TestShortestPath_NilSuccessors(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(0, dijkstra.Target(1), nil)
	if !errors.Is(err, dijkstra.ErrNilSuccessors) {
		t.Fatalf("expected ErrNilSuccessors, got %v", err)
	}
}

func TestShortestPath_NilTarget(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(0, nil, func(int) []core.Arc { return nil })
	if !errors.Is(err, dijkstra.ErrNilTarget) {
		t.Fatalf("expected ErrNilTarget, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic functionality on core.Graph successor functions.
// ------------------------------------------------------------------------

func TestShortestPath_Triangle(t *testing.T) {
	// 0→1(1), 1→2(2), 0→2(5): best route 0→1→2 at cost 3.
	g := mustGraph(t, 3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 5},
	})

	path, cost, err := dijkstra.ShortestPath(0, dijkstra.Target(2), g.Successors)
	if err != nil {
		t.Fatal(err)
	}
	if cost != 3 {
		t.Errorf("cost = %d; want 3", cost)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestShortestPath_StartSatisfiesTarget(t *testing.T) {
	// When start already satisfies the predicate, the path is trivial.
	g := mustGraph(t, 2, []core.Edge{{From: 0, To: 1, Weight: 1}})

	path, cost, err := dijkstra.ShortestPath(0, dijkstra.Target(0), g.Successors)
	if err != nil {
		t.Fatal(err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	if want := []int{0}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	// 0→1 exists, but node 2 has no incoming arcs.
	g := mustGraph(t, 3, []core.Edge{{From: 0, To: 1, Weight: 1}})

	_, _, err := dijkstra.ShortestPath(0, dijkstra.Target(2), g.Successors)
	if !errors.Is(err, dijkstra.ErrTargetUnreachable) {
		t.Fatalf("expected ErrTargetUnreachable, got %v", err)
	}
}

func TestShortestPath_Deterministic(t *testing.T) {
	// Two cost-4 routes 0→1→3 and 0→2→3 tie; whichever wins must win on
	// every run, since core.Graph successors iterate in stable order.
	g := mustGraph(t, 4, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 2},
		{From: 2, To: 3, Weight: 2},
	})

	first, cost, err := dijkstra.ShortestPath(0, dijkstra.Target(3), g.Successors)
	if err != nil {
		t.Fatal(err)
	}
	if cost != 4 {
		t.Fatalf("cost = %d; want 4", cost)
	}
	for i := 0; i < 20; i++ {
		again, _, err := dijkstra.ShortestPath(0, dijkstra.Target(3), g.Successors)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d returned %v; first run returned %v", i, again, first)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Signed weights: the label-correcting pop rule on working graphs.
// ------------------------------------------------------------------------

// arcMap is a hand-built signed successor function standing in for a
// Bhandari working graph (no negative cycle reachable from 0).
func arcMap(m map[int][]core.Arc) dijkstra.SuccessorFunc {
	return func(u int) []core.Arc { return m[u] }
}

func TestShortestPath_NegativeArcImprovement(t *testing.T) {
	// 0→1(10), 0→2(2), 2→1(-5): the cheap route to 1 goes through the
	// negative arc, total -3. A visited-set Dijkstra that settles 1 at 10
	// before exploring 2 would still be saved by the stale-vs-dist rule.
	succ := arcMap(map[int][]core.Arc{
		0: {{To: 1, Weight: 10}, {To: 2, Weight: 2}},
		2: {{To: 1, Weight: -5}},
	})

	path, cost, err := dijkstra.ShortestPath(0, dijkstra.Target(1), succ)
	if err != nil {
		t.Fatal(err)
	}
	if cost != -3 {
		t.Errorf("cost = %d; want -3", cost)
	}
	if want := []int{0, 2, 1}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestShortestPath_NegativeReExpansion(t *testing.T) {
	// 3 is reached through 1 first (0→1→3 = 2), but the route through the
	// negative arc 2→1(-4) later improves 1 to -2 and must propagate through
	// the already-expanded node: 0→2→1→3 = -1.
	succ := arcMap(map[int][]core.Arc{
		0: {{To: 1, Weight: 1}, {To: 2, Weight: 2}},
		1: {{To: 3, Weight: 1}},
		2: {{To: 1, Weight: -4}},
	})

	path, cost, err := dijkstra.ShortestPath(0, dijkstra.Target(3), succ)
	if err != nil {
		t.Fatal(err)
	}
	if cost != -1 {
		t.Errorf("cost = %d; want -1", cost)
	}
	if want := []int{0, 2, 1, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// ------------------------------------------------------------------------
// 4. MaxDistance cap (non-negative graphs only).
// ------------------------------------------------------------------------

func TestShortestPath_MaxDistanceCutsSearch(t *testing.T) {
	// Chain 0→1→2 with total cost 10; a cap of 5 makes 2 unreachable.
	g := mustGraph(t, 3, []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 5},
	})

	_, _, err := dijkstra.ShortestPath(0, dijkstra.Target(2), g.Successors, dijkstra.WithMaxDistance(5))
	if !errors.Is(err, dijkstra.ErrTargetUnreachable) {
		t.Fatalf("expected ErrTargetUnreachable under cap, got %v", err)
	}

	// Without the cap the same search succeeds.
	_, cost, err := dijkstra.ShortestPath(0, dijkstra.Target(2), g.Successors)
	if err != nil {
		t.Fatal(err)
	}
	if cost != 10 {
		t.Errorf("cost = %d; want 10", cost)
	}
}

func TestWithMaxDistance_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative MaxDistance")
		}
	}()
	dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
}
