package solution

import "errors"

// ErrNilInstance is returned when Reconstruct receives a nil instance.
var ErrNilInstance = errors.New("solution: instance is nil")

// ErrNilRecord is returned when Reconstruct receives a nil record.
var ErrNilRecord = errors.New("solution: record is nil")

// UsedArc is one "<tail> <head> <net>" row of a solution file,
// normalized to 0-based ids.
type UsedArc struct {
	Tail int
	Head int
	Net  int
}

// Record is a parsed solution file: the claimed objective (nil when the
// file carries none) and the used arcs in file order. A Record is
// ephemeral — parsed once, consumed once by Reconstruct.
type Record struct {
	// Objective is the objective value claimed by the file header, if any.
	Objective *float64

	// UsedArcs lists every arc the solution uses, tagged by net.
	UsedArcs []UsedArc
}

// Stats reports reconstruction diagnostics.
type Stats struct {
	// UsedArcs is the number of arc rows consumed.
	UsedArcs int

	// StaleArcs counts rows referencing an arc or net absent from the
	// instance; such rows emit no variables but still join the
	// reachability subgraph.
	StaleArcs int
}
