package verify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/steinerpack/ilp"
	"github.com/katalvlaran/steinerpack/instance"
	"github.com/katalvlaran/steinerpack/logger"
)

// Run resolves the assignment onto the model's variable ids, evaluates
// it with the oracle and compares the objective against the claim.
// Complexity: O(|assignment| + |model|) plus the oracle's own cost.
func Run(m *ilp.Model, in *instance.Instance, asg ilp.Assignment, claimed *float64, opts ...Option) (*Result, error) {
	// 1. Validate inputs and apply options.
	if m == nil {
		return nil, ErrNilModel
	}
	if in == nil {
		return nil, ErrNilInstance
	}
	vopts := DefaultOptions()
	for _, fn := range opts {
		fn(&vopts)
	}
	oracle := vopts.Oracle
	if oracle == nil {
		oracle = m
	}
	log := logger.Logger().With().Str("component", "verify").Logger()

	// 2. Resolve every entry to a variable id. Later entries overwrite
	//    earlier ones for the same id.
	byID := make(map[int]float64, len(asg))
	for i := range asg {
		id, ok, err := resolve(m, in, &asg[i])
		if err != nil {
			return nil, err
		}
		if !ok {
			// Legacy key over stale topology: drop the reference.
			log.Warn().Str("name", asg[i].Name).Ints("subscripts", asg[i].Subscripts).
				Msg("assignment references arc absent from instance; dropped")
			continue
		}
		byID[id] = asg[i].Value
	}

	// 3. Untouched model variables default to 0: a warning, not an error.
	res := &Result{Defaulted: m.NumVariables() - len(byID)}
	if res.Defaulted > 0 {
		log.Warn().Int("defaulted", res.Defaulted).
			Msg("model variables missing from assignment; defaulting to 0")
	}

	// 4. Delegate feasibility and objective to the oracle.
	ev := oracle.Evaluate(byID)
	res.Feasible = ev.Feasible
	res.Computed = ev.Objective
	res.Claimed = claimed
	res.Violated = ev.Violated

	// 5. Tolerance comparison, strict: a gap of exactly epsilon is a
	//    mismatch.
	if claimed != nil {
		match := math.Abs(res.Computed-*claimed) < vopts.Epsilon
		res.ObjectiveMatch = &match
	}

	return res, nil
}

// resolve maps one assignment entry to a model variable id. The second
// return value is false when a legacy node-pair key names an arc the
// instance does not have (the entry is dropped, not fatal).
func resolve(m *ilp.Model, in *instance.Instance, e *ilp.Entry) (int, bool, error) {
	kind, known := m.KindOf(e.Name)
	if !known {
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownVariable, e.Name)
	}

	switch kind {
	case ilp.KindX, ilp.KindY:
		switch len(e.Subscripts) {
		case 2:
			// Arc-indexed encoding: (arc, terminal) or (arc, net).
			id, ok := m.Lookup(e.Name, e.Subscripts...)
			if !ok {
				return 0, false, fmt.Errorf("%w: %s%v", ErrBadSubscripts, e.Name, e.Subscripts)
			}

			return id, true, nil
		case 3:
			// Legacy node-pair encoding: (tail, head, terminal|net).
			arcIdx, ok := in.ArcIndex(e.Subscripts[0], e.Subscripts[1])
			if !ok {
				return 0, false, nil
			}
			id, ok := m.Lookup(e.Name, arcIdx, e.Subscripts[2])
			if !ok {
				return 0, false, fmt.Errorf("%w: %s%v", ErrBadSubscripts, e.Name, e.Subscripts)
			}

			return id, true, nil
		default:
			return 0, false, fmt.Errorf("%w: %s%v", ErrBadSubscripts, e.Name, e.Subscripts)
		}

	case ilp.KindAux:
		if len(e.Subscripts) != kind.Arity() {
			return 0, false, fmt.Errorf("%w: %s%v", ErrBadSubscripts, e.Name, e.Subscripts)
		}
		id, ok := m.Lookup(e.Name, e.Subscripts...)
		if !ok {
			return 0, false, fmt.Errorf("%w: %s%v", ErrBadSubscripts, e.Name, e.Subscripts)
		}

		return id, true, nil

	default:
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownVariable, e.Name)
	}
}
