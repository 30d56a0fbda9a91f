// Package ilp provides the small integer-linear-programming vocabulary
// shared by the model builder and the verifier: binary decision
// variables (a closed kind enum, each kind carrying its subscript
// arity), linear constraints, a linear objective, sparse assignments,
// and a built-in evaluation oracle.
//
// A Model is append-only: variables and constraints are registered
// during construction and never mutated afterwards. Evaluation walks
// every constraint against a dense-by-id assignment (absent ids read 0)
// and reports feasibility plus the objective value.
//
// The oracle contract consumed by the verifier is the Evaluator
// interface; *Model satisfies it, and an external solver wrapper can be
// substituted without touching the verification code.
package ilp
