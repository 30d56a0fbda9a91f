package ilp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinerpack/ilp"
)

// buildToyModel declares two binaries a, b with
// objective 3a+2b, and constraints a+b ≤ 1, a ≥ 0, a+b == 1.
func buildToyModel() (*ilp.Model, int, int) {
	m := ilp.NewModel("toy")
	a := m.AddBinary(ilp.KindX, "x", 0, 0)
	b := m.AddBinary(ilp.KindX, "x", 0, 1)
	m.SetObjective([]ilp.Term{{Coef: 3, Var: a}, {Coef: 2, Var: b}})
	m.AddConstraint(ilp.Constraint{
		Name:  "cap",
		Terms: []ilp.Term{{Coef: 1, Var: a}, {Coef: 1, Var: b}},
		Sense: ilp.LE,
		RHS:   1,
	})
	m.AddConstraint(ilp.Constraint{
		Name:  "nonneg",
		Terms: []ilp.Term{{Coef: 1, Var: a}},
		Sense: ilp.GE,
		RHS:   0,
	})
	m.AddConstraint(ilp.Constraint{
		Name:  "pick_one",
		Terms: []ilp.Term{{Coef: 1, Var: a}, {Coef: 1, Var: b}},
		Sense: ilp.EQ,
		RHS:   1,
	})

	return m, a, b
}

func TestEvaluate_Feasible(t *testing.T) {
	m, a, _ := buildToyModel()

	ev := m.Evaluate(map[int]float64{a: 1})
	assert.True(t, ev.Feasible)
	assert.Empty(t, ev.Violated)
	assert.InDelta(t, 3.0, ev.Objective, 1e-12)
}

func TestEvaluate_AbsentIDsReadZero(t *testing.T) {
	m, _, b := buildToyModel()

	// Only b set; a defaults to 0.
	ev := m.Evaluate(map[int]float64{b: 1})
	assert.True(t, ev.Feasible)
	assert.InDelta(t, 2.0, ev.Objective, 1e-12)
}

func TestEvaluate_Violations(t *testing.T) {
	m, a, b := buildToyModel()

	ev := m.Evaluate(map[int]float64{a: 1, b: 1})
	require.False(t, ev.Feasible)
	assert.Equal(t, []string{"cap", "pick_one"}, ev.Violated)
	assert.InDelta(t, 5.0, ev.Objective, 1e-12)
}

func TestEvaluate_EmptyAssignmentViolatesEquality(t *testing.T) {
	m, _, _ := buildToyModel()

	ev := m.Evaluate(map[int]float64{})
	require.False(t, ev.Feasible)
	assert.Equal(t, []string{"pick_one"}, ev.Violated)
	assert.Zero(t, ev.Objective)
}
