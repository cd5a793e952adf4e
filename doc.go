// Package bhandari computes k mutually link-disjoint paths of minimum
// total cost between two nodes of a weighted directed graph, via the
// Suurballe/Bhandari successive-shortest-paths algorithm.
//
// 🚀 What is bhandari?
//
//	A small, deterministic toolkit around one hard problem:
//		• core     — immutable dense-indexed graph model with indexed successor lookup
//		• dijkstra — single-target shortest path over a successor function,
//		             tolerant of the negative weights Bhandari iterations create
//		• disjoint — the iterative composer: edge reversal, uncrossing,
//		             walk reconstruction, and a precise failure taxonomy
//		• edgelist — "FROM WEIGHT TO" text parsing and name↔index translation
//		• cplex    — distance-matrix export in the CPLEX OPL .dat dialect
//		• cmd/bhandari — the CLI tying it all together
//
// ✨ Why choose bhandari?
//
//   - Exact, not heuristic – the returned total cost is provably minimal
//   - Deterministic – the same input always yields the same paths
//   - Honest failures – "no path", "fewer than k paths", and reconstruction
//     invariant violations are distinct recoverable errors, never crashes
//   - Pure Go core – the algorithm itself is in-memory and dependency-free
//
// Quick ASCII example (the classic trap graph):
//
//	    0───1
//	     \  │ \
//	      \ │  3
//	       \│ /
//	        2
//
//	the cheapest route 0→1→2→3 blocks the second one; uncrossing
//	trades its middle link away and yields 0→1→3 plus 0→2→3.
//
// Start with the disjoint package; the CLI in cmd/bhandari shows the full
// pipeline from edge-list file to printed routes.
//
//	go get github.com/katalvlaran/bhandari
package bhandari
