// Package disjoint_test covers the uncrossing primitives in isolation:
// link extraction, the symmetric cancel-or-add rule, idempotence, and the
// strict decomposition contract of Reassemble.
package disjoint_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/bhandari/disjoint"
)

// ------------------------------------------------------------------------
// PathLinks
// ------------------------------------------------------------------------

func TestPathLinks(t *testing.T) {
	got := disjoint.PathLinks([]int{0, 2, 5, 3})
	want := []disjoint.Link{{From: 0, To: 2}, {From: 2, To: 5}, {From: 5, To: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PathLinks = %v; want %v", got, want)
	}
}

func TestPathLinks_TrivialPath(t *testing.T) {
	// A single-node path has no links.
	if got := disjoint.PathLinks([]int{7}); got != nil {
		t.Fatalf("PathLinks([7]) = %v; want nil", got)
	}
	if got := disjoint.PathLinks(nil); got != nil {
		t.Fatalf("PathLinks(nil) = %v; want nil", got)
	}
}

// ------------------------------------------------------------------------
// Uncross
// ------------------------------------------------------------------------

func TestUncross_OpposingTraversalsCancel(t *testing.T) {
	// Path A uses 1→2; path B traverses the same physical edge backward as
	// 2→1. Both must annihilate, leaving only the non-overlapping links.
	a := disjoint.PathLinks([]int{0, 1, 2, 3})
	b := disjoint.PathLinks([]int{0, 2, 1, 3})

	got := disjoint.Uncross(a, b)
	want := []disjoint.Link{
		{From: 0, To: 1}, {From: 2, To: 3},
		{From: 0, To: 2}, {From: 1, To: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Uncross = %v; want %v", got, want)
	}
}

func TestUncross_Idempotent(t *testing.T) {
	// Running the uncrossing step on an already-disjoint link set is a
	// no-op, and so is running it twice.
	a := disjoint.PathLinks([]int{0, 1, 3})
	b := disjoint.PathLinks([]int{0, 2, 3})

	once := disjoint.Uncross(a, b)
	twice := disjoint.Uncross(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("Uncross not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestUncross_DoesNotMutateInputs(t *testing.T) {
	a := disjoint.PathLinks([]int{0, 1, 2})
	b := disjoint.PathLinks([]int{0, 2, 1})
	aCopy := append([]disjoint.Link(nil), a...)
	bCopy := append([]disjoint.Link(nil), b...)

	_ = disjoint.Uncross(a, b)

	if !reflect.DeepEqual(a, aCopy) || !reflect.DeepEqual(b, bCopy) {
		t.Fatal("Uncross mutated its input slices")
	}
}

func TestUncross_Empty(t *testing.T) {
	if got := disjoint.Uncross(); got != nil {
		t.Fatalf("Uncross() = %v; want nil", got)
	}
}

// ------------------------------------------------------------------------
// Reassemble
// ------------------------------------------------------------------------

func TestReassemble_TwoWalks(t *testing.T) {
	links := []disjoint.Link{
		{From: 0, To: 1}, {From: 2, To: 3},
		{From: 0, To: 2}, {From: 1, To: 3},
	}
	got, err := disjoint.Reassemble(links, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{0, 1, 3}, {0, 2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Reassemble = %v; want %v", got, want)
	}
}

func TestReassemble_DeadEnd(t *testing.T) {
	// The walk from 0 reaches 1 and finds no way on to the target.
	links := []disjoint.Link{{From: 0, To: 1}}
	_, err := disjoint.Reassemble(links, 0, 3)
	if !errors.Is(err, disjoint.ErrReconstruct) {
		t.Fatalf("expected ErrReconstruct for dead end, got %v", err)
	}
}

func TestReassemble_LeftoverLinks(t *testing.T) {
	// A clean decomposition must consume every surviving link; the stray
	// 5→6 belongs to no source-rooted walk.
	links := []disjoint.Link{
		{From: 0, To: 1}, {From: 1, To: 3},
		{From: 5, To: 6},
	}
	_, err := disjoint.Reassemble(links, 0, 3)
	if !errors.Is(err, disjoint.ErrReconstruct) {
		t.Fatalf("expected ErrReconstruct for leftover links, got %v", err)
	}
}

func TestReassemble_CycleDetected(t *testing.T) {
	// 1→2→1 loops without ever reaching the target.
	links := []disjoint.Link{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 1},
	}
	_, err := disjoint.Reassemble(links, 0, 3)
	if !errors.Is(err, disjoint.ErrReconstruct) {
		t.Fatalf("expected ErrReconstruct for cycle, got %v", err)
	}
}

func TestReassemble_EmptyLinkSet(t *testing.T) {
	got, err := disjoint.Reassemble(nil, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("Reassemble(nil) = %v; want no paths", got)
	}
}
