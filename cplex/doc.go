// Package cplex exports a weighted edge list as a CPLEX OPL data file: the
// node count, source and target indices, the requested path count K, and
// the full n×n distance matrix, in the solver's ".dat" dialect.
//
// The export mirrors the conventions of the linear-programming formulation
// this feeds: node indices follow the deterministic sorted name order of
// edgelist.NameIndex, and absent links are encoded as distance 999, the
// matrix's stand-in for "no link".
//
// Output shape:
//
//	n = 5;
//	source = 0;
//	target = 4;
//	K = 2;
//
//	distance=[
//	[999, 1, 999, 999, 999],
//	...
//	];
//
// This is pure data transformation: no algorithmic content, no validation
// of feasibility. The companion solver model consumes the file as-is.
package cplex
