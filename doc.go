// Package steinerpack builds and verifies node-disjoint Steiner Tree
// Packing instances: it loads flat-file graph instances, emits the
// multicommodity-flow ILP formulation (with Big-M linearization of the
// conditional constraints), reconstructs full primal assignments from
// sparse arc-list solution files, and checks feasibility and objective
// value against the constructed model.
//
// The library is organized into one package per pipeline stage:
//
//	instance/ — .dat file loading into a typed, 0-based graph instance
//	ilp/      — decision variables, linear constraints & the evaluation oracle
//	steiner/  — the ten-group multicommodity ILP builder (Big-M linearization)
//	solution/ — solution-file parsing & reachability-based reconstruction
//	verify/   — assignment resolution, oracle evaluation, tolerance check
//	pipeline/ — per-instance build-and-verify plus the concurrent batch driver
//	logger/   — zerolog-backed global logger
//
// Data flow: instance → {steiner, solution} → verify. Each instance is a
// pure function of its own input files, so the batch driver fans out
// across a worker pool with no coordination beyond the pool limit.
//
//	go get github.com/katalvlaran/steinerpack
package steinerpack
