// Package steiner builds the node-disjoint Steiner Tree Packing ILP
// from a loaded instance, using the multicommodity-flow formulation
// with per-terminal flow variables.
//
// Decision variables:
//
//	x[a,t] — binary, arc a carries flow destined for terminal t
//	y[a,k] — binary, arc a is used by net k
//
// Conditional ("if net(u) == net(v)") constraints are linearized with
// auxiliary binary indicators and two centralized Big-M constants:
// MNet = |nets| bounds net-id gaps, MFlow = |arcs| bounds flow sums.
// Net ids are instance constants, so each indicator's defining gap folds
// into the inequality right-hand sides at build time.
//
// Constraint groups, in emission order:
//
//	 1. root_flow_out       — root r emits one unit for terminal t iff
//	                          they share a net (via the exact z[r,t] indicator)
//	 2. root_flow_in        — no flow enters any root
//	 3. terms_flow_out      — a terminal never forwards its own flow
//	 4. terms_flow_in       — exactly one unit arrives at each terminal
//	 5. terms_flow_bal_same — balance at sibling terminals of the same net,
//	                          gated by z_same_net_diff_terminal
//	 6. terms_flow_bal_diff — no flow touches terminals of other nets,
//	                          gated by z_diff_network
//	 7. nodes_flow_bal      — plain conservation at Normal nodes
//	 8. bind_x_y            — x is dominated by cardinality·y per arc and net
//	 9. disjoint_nonroot    — at most one net enters any non-root vertex
//	10. disjoint_root       — no net enters any root vertex
//
// Objective: minimize Σ cost(arc)·y[arc,net].
//
// A net with zero terminals simply contributes no constraints; the
// resulting infeasibility, if any, surfaces at evaluation time, not
// here.
package steiner
