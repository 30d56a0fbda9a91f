// This file declares the variable, constraint and assignment types plus
// the Evaluator oracle contract.
package ilp

import "fmt"

// VarKind is the closed set of decision-variable families. Each kind
// knows the subscript arity its canonical encoding uses; the verifier
// resolves names through a single switch over this enum instead of
// scattering string comparisons.
type VarKind uint8

const (
	// KindX is the flow family x[a,t]: arc a carries flow destined for
	// terminal t.
	KindX VarKind = iota

	// KindY is the usage family y[a,k]: arc a is used by net k.
	KindY

	// KindAux is the auxiliary z-family: indicator variables owned by a
	// single constraint group, meaningless outside the encoding.
	KindAux
)

// Arity returns the canonical subscript count for the kind. KindX and
// KindY also admit a legacy 3-subscript node-pair encoding, which the
// verifier converts through an arc lookup.
func (k VarKind) Arity() int {
	switch k {
	case KindX, KindY:
		return 2
	case KindAux:
		return 2
	default:
		return 0
	}
}

// String implements fmt.Stringer for diagnostics.
func (k VarKind) String() string {
	switch k {
	case KindX:
		return "x"
	case KindY:
		return "y"
	case KindAux:
		return "z"
	default:
		return fmt.Sprintf("VarKind(%d)", uint8(k))
	}
}

// Variable is one binary decision variable. Variables are created once
// at model-build time and never mutated.
type Variable struct {
	// ID is the model-wide dense identifier, assigned in declaration order.
	ID int

	// Kind is the variable's family.
	Kind VarKind

	// Name is the family name as it appears in assignments:
	// "x", "y", "z", "z_same_net_diff_terminal", ...
	Name string

	// Subscripts are the family-local indices, e.g. (arc, terminal).
	Subscripts []int
}

// Sense is the comparison direction of a constraint.
type Sense uint8

const (
	// LE constrains the expression to ≤ RHS.
	LE Sense = iota

	// EQ constrains the expression to == RHS.
	EQ

	// GE constrains the expression to ≥ RHS.
	GE
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case EQ:
		return "=="
	case GE:
		return ">="
	default:
		return fmt.Sprintf("Sense(%d)", uint8(s))
	}
}

// Term is one coefficient·variable product in a linear expression.
type Term struct {
	// Coef is the coefficient.
	Coef float64

	// Var is the variable ID the coefficient applies to.
	Var int
}

// Constraint is a named linear constraint: Σ Terms  Sense  RHS.
type Constraint struct {
	// Name identifies the constraint group plus its subscripts,
	// e.g. "terms_flow_in[3]".
	Name string

	// Terms is the left-hand-side linear expression.
	Terms []Term

	// Sense is the comparison direction.
	Sense Sense

	// RHS is the right-hand-side constant.
	RHS float64
}

// Entry is one (name, subscripts) → value record of an Assignment.
type Entry struct {
	// Name is the variable family name.
	Name string

	// Subscripts identify the variable within its family. For "x" and
	// "y" either the 2-subscript arc-indexed or the legacy 3-subscript
	// node-pair convention is accepted by the verifier.
	Subscripts []int

	// Value is the assigned value (0 or 1 for binary families).
	Value float64
}

// Assignment is an ordered sparse mapping from semantic variable keys to
// values, produced by the solution reconstructor and consumed by the
// verifier. Entries absent from an assignment default to 0.
type Assignment []Entry

// Evaluation is the oracle's verdict on a full by-id assignment.
type Evaluation struct {
	// Feasible reports whether every constraint is satisfied.
	Feasible bool

	// Objective is the objective value under the assignment.
	Objective float64

	// Violated lists the names of violated constraints, for diagnostics.
	Violated []string
}

// Evaluator is the external evaluation oracle contract: given a full
// by-id assignment (absent ids read 0), compute feasibility and the
// objective value. *Model provides the built-in linear implementation.
type Evaluator interface {
	Evaluate(assignment map[int]float64) Evaluation
}
