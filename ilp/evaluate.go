package ilp

// evalEpsilon absorbs float rounding when checking constraint
// satisfaction; binary models produce integral sums, so any slack below
// this is noise.
const evalEpsilon = 1e-9

// Evaluate computes feasibility and objective value for a full by-id
// assignment. IDs absent from the assignment read as 0. Violated
// constraint names are collected for diagnostics.
// Complexity: O(Σ constraint terms + objective terms).
func (m *Model) Evaluate(assignment map[int]float64) Evaluation {
	var ev Evaluation
	ev.Feasible = true

	// 1. Check every constraint against the assignment.
	var lhs float64
	for i := range m.constraints {
		c := &m.constraints[i]
		lhs = 0
		for _, t := range c.Terms {
			lhs += t.Coef * assignment[t.Var]
		}

		ok := true
		switch c.Sense {
		case LE:
			ok = lhs <= c.RHS+evalEpsilon
		case EQ:
			ok = lhs >= c.RHS-evalEpsilon && lhs <= c.RHS+evalEpsilon
		case GE:
			ok = lhs >= c.RHS-evalEpsilon
		}
		if !ok {
			ev.Feasible = false
			ev.Violated = append(ev.Violated, c.Name)
		}
	}

	// 2. Objective value under the assignment.
	for _, t := range m.objective {
		ev.Objective += t.Coef * assignment[t.Var]
	}

	return ev
}
