package verify

import (
	"errors"

	"github.com/katalvlaran/steinerpack/ilp"
)

// DefaultEpsilon is the objective-comparison tolerance: a claimed and a
// computed objective match when they differ by strictly less than this.
const DefaultEpsilon = 1e-6

var (
	// ErrNilModel is returned when Run receives a nil model.
	ErrNilModel = errors.New("verify: model is nil")

	// ErrNilInstance is returned when Run receives a nil instance.
	ErrNilInstance = errors.New("verify: instance is nil")

	// ErrUnknownVariable indicates an assignment entry whose family name
	// the model does not declare (schema drift); fatal.
	ErrUnknownVariable = errors.New("verify: unknown variable name")

	// ErrBadSubscripts indicates an assignment entry whose subscripts fit
	// neither the arc-indexed nor the legacy node-pair convention.
	ErrBadSubscripts = errors.New("verify: bad variable subscripts")
)

// Result is the verification verdict for one (model, assignment) pair.
type Result struct {
	// Feasible reports the oracle's feasibility verdict.
	Feasible bool

	// ObjectiveMatch reports whether |Computed − Claimed| < epsilon;
	// nil when the solution file claimed no objective.
	ObjectiveMatch *bool

	// Computed is the oracle's objective value.
	Computed float64

	// Claimed is the solution file's objective, if any.
	Claimed *float64

	// Defaulted counts model variables the assignment never touched
	// (evaluated as 0).
	Defaulted int

	// Violated lists violated constraint names, for diagnostics.
	Violated []string
}

// Option configures a verification run.
type Option func(*Options)

// Options holds configurable verification parameters.
type Options struct {
	// Epsilon is the strict objective-comparison tolerance.
	Epsilon float64

	// Oracle evaluates the by-id assignment; nil means the model itself.
	Oracle ilp.Evaluator
}

// DefaultOptions returns Options with DefaultEpsilon and the built-in
// oracle.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, Oracle: nil}
}

// WithEpsilon sets the objective-comparison tolerance. Non-positive
// values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithOracle substitutes an external evaluation oracle.
func WithOracle(e ilp.Evaluator) Option {
	return func(o *Options) {
		if e != nil {
			o.Oracle = e
		}
	}
}
