// Package verify checks a reconstructed assignment against a built ILP
// model: it resolves each semantic (name, subscripts) key to the model's
// internal variable id, hands the full by-id assignment to the
// evaluation oracle, and compares the computed objective against the
// solution file's claim within a tolerance.
//
// Two subscript conventions are accepted for the x and y families: the
// arc-indexed encoding x[a,t] / y[a,k], and the legacy node-pair
// encoding x[tail,head,t] / y[tail,head,k], which is converted through
// the instance's arc list. Legacy keys naming an arc the instance does
// not have are dropped. A family name the model does not know is fatal
// (schema drift); model variables never touched by the assignment
// default to 0 and are only counted and logged.
//
// The oracle defaults to the model's own linear evaluation and can be
// swapped for an external solver wrapper with WithOracle.
package verify
