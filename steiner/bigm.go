package steiner

import (
	"fmt"

	"github.com/katalvlaran/steinerpack/ilp"
	"github.com/katalvlaran/steinerpack/instance"
)

// BigM holds the two linearization constants, derived once per instance
// and threaded through every constraint-group builder:
//
//	Net  = |nets|, the tightest safe bound on any net-id gap
//	Flow = |arcs|, the tightest safe bound on any flow sum
//
// Distinct net ids differ by at least 1 and at most Net−1, so Net never
// admits a spurious indicator value; Flow dominates any sum of binary
// flow variables.
type BigM struct {
	Net  float64
	Flow float64
}

// DeriveBigM computes the two constants from instance dimensions.
func DeriveBigM(in *instance.Instance) BigM {
	return BigM{Net: float64(in.NumNets), Flow: float64(len(in.Arcs))}
}

// abs is the integer absolute value of a net-id gap.
func abs(d int) int {
	if d < 0 {
		return -d
	}

	return d
}

// pinEquality emits the inequalities that pin binary z to 1 exactly when
// gap == 0 (nets equal) and to 0 otherwise. gap is a build-time constant,
// so its magnitude folds into the right-hand sides:
//
//	M·z ≤ M − gap        (z forced 0 when gap > 0)
//	M·z ≤ M + gap        (z forced 0 when gap < 0)
//	M·z ≥ M·(1 − |gap|)  (z forced 1 when gap == 0)
func (b *builder) pinEquality(prefix string, z, gap int, t, r int) {
	m := b.bigM.Net
	b.emit(fmt.Sprintf("%s_ub1[%d,%d]", prefix, t, r),
		[]ilp.Term{{Coef: m, Var: z}}, ilp.LE, m-float64(gap))
	b.emit(fmt.Sprintf("%s_ub2[%d,%d]", prefix, t, r),
		[]ilp.Term{{Coef: m, Var: z}}, ilp.LE, m+float64(gap))
	b.emit(fmt.Sprintf("%s_lb[%d,%d]", prefix, t, r),
		[]ilp.Term{{Coef: m, Var: z}}, ilp.GE, m*(1-float64(abs(gap))))
}

// pinSameNetUpper emits only the force-to-zero side of the equality
// indicator: z may never be 1 when the nets differ, but is left free
// when they coincide. Assignments that omit the indicator (defaulting it
// to 0) therefore stay feasible, with the gated constraint vacuous.
func (b *builder) pinSameNetUpper(prefix string, z, gap int, t, s int) {
	m := b.bigM.Net
	b.emit(fmt.Sprintf("%s_ub1[%d,%d]", prefix, t, s),
		[]ilp.Term{{Coef: m, Var: z}}, ilp.LE, m-float64(gap))
	b.emit(fmt.Sprintf("%s_ub2[%d,%d]", prefix, t, s),
		[]ilp.Term{{Coef: m, Var: z}}, ilp.LE, m+float64(gap))
}

// pinDiffNetUpper emits the force-to-zero side of the difference
// indicator: z may never be 1 when the nets coincide (|gap| == 0), and
// is left free when they differ.
//
//	M·z ≤ M·|gap|
func (b *builder) pinDiffNetUpper(prefix string, z, gap int, t, s int) {
	m := b.bigM.Net
	b.emit(fmt.Sprintf("%s[%d,%d]", prefix, t, s),
		[]ilp.Term{{Coef: m, Var: z}}, ilp.LE, m*float64(abs(gap)))
}
