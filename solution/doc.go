// Package solution parses Steiner Tree Packing solution files and
// reconstructs full primal assignments from them.
//
// A solution file lists only the arcs a solver chose, tagged by net:
//
//	# cost: 10
//	1 2 1
//	2 3 1
//	3 4 1
//
// Rows are "<tail> <head> <net>", 1-based; an optional "# cost: <float>"
// or "# Objective value = <float>" comment carries the claimed
// objective.
//
// Reconstruct expands that sparse arc list into the model's variable
// space: y[arc,net] = 1 for every listed arc present in the instance,
// and x[arc,t] = 1 for every terminal t of the arc's net reachable from
// the arc's head inside that net's used-arc subgraph (an arc that is
// part of a net's tree carries flow for every terminal downstream of
// it). Reachability runs an explicit-stack depth-first search over an
// index-based adjacency arena with a bitset visited mask — no recursion,
// no pointer graphs.
//
// Arcs referencing topology absent from the instance are counted and
// dropped (solution files may reference stale topology); they still
// participate in reachability, mirroring the reference pipeline.
package solution
