package steiner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/steinerpack/ilp"
	"github.com/katalvlaran/steinerpack/instance"
)

// ErrNilInstance is returned when Build receives a nil instance.
var ErrNilInstance = errors.New("steiner: instance is nil")

// Auxiliary variable family names. Anything verifier-visible outside
// {x, y, z*} is schema drift.
const (
	varX       = "x"
	varY       = "y"
	varZ       = "z"
	varZSame   = "z_same_net_diff_terminal"
	varZDiff   = "z_diff_network"
	varZInNet  = "z_terminal_in_net"
	modelTitle = "SteinerTreePackingArcBased"
)

// builder accumulates the model while the constraint groups are emitted.
type builder struct {
	inst *instance.Instance
	m    *ilp.Model
	bigM BigM

	x [][]int // x[arcIdx][termIdx] → variable ID
	y [][]int // y[arcIdx][net]     → variable ID

	outArcs [][]int // arc indices by tail node
	inArcs  [][]int // arc indices by head node
}

// Build constructs the full ILP model for the given instance: the x and
// y variable families, the auxiliary indicator families, the ten
// constraint groups and the minimization objective.
// Complexity: O(A·T + A·L + T²) constraints and variables.
func Build(in *instance.Instance) (*ilp.Model, error) {
	// 1. Validate input.
	if in == nil {
		return nil, ErrNilInstance
	}

	b := &builder{
		inst: in,
		m:    ilp.NewModel(modelTitle),
		bigM: DeriveBigM(in),
	}

	// 2. Arc adjacency by tail and by head, index-based.
	b.outArcs = make([][]int, in.NumNodes)
	b.inArcs = make([][]int, in.NumNodes)
	for a, arc := range in.Arcs {
		b.outArcs[arc.Tail] = append(b.outArcs[arc.Tail], a)
		b.inArcs[arc.Head] = append(b.inArcs[arc.Head], a)
	}

	// 3. Primary variable families, declaration order x then y.
	numArcs := len(in.Arcs)
	numTerms := len(in.Terminals)
	b.x = make([][]int, numArcs)
	for a := 0; a < numArcs; a++ {
		b.x[a] = make([]int, numTerms)
		for t := 0; t < numTerms; t++ {
			b.x[a][t] = b.m.AddBinary(ilp.KindX, varX, a, t)
		}
	}
	b.y = make([][]int, numArcs)
	for a := 0; a < numArcs; a++ {
		b.y[a] = make([]int, in.NumNets)
		for k := 0; k < in.NumNets; k++ {
			b.y[a][k] = b.m.AddBinary(ilp.KindY, varY, a, k)
		}
	}

	// 4. Objective: minimize Σ cost(arc)·y[arc,net].
	obj := make([]ilp.Term, 0, numArcs*in.NumNets)
	for a, arc := range in.Arcs {
		for k := 0; k < in.NumNets; k++ {
			obj = append(obj, ilp.Term{Coef: float64(arc.Cost), Var: b.y[a][k]})
		}
	}
	b.m.SetObjective(obj)

	// 5. The ten constraint groups.
	b.rootFlowOut()
	b.rootFlowIn()
	b.termsFlowOut()
	b.termsFlowIn()
	b.termsFlowBalSame()
	b.termsFlowBalDiff()
	b.nodesFlowBal()
	b.bindXY()
	b.disjointNonRoot()
	b.disjointRoot()

	return b.m, nil
}

// emit appends one constraint to the model under construction.
func (b *builder) emit(name string, terms []ilp.Term, sense ilp.Sense, rhs float64) {
	b.m.AddConstraint(ilp.Constraint{Name: name, Terms: terms, Sense: sense, RHS: rhs})
}

// sumX appends coef·x[a,t] terms for every arc index in arcs.
func (b *builder) sumX(terms []ilp.Term, arcs []int, t int, coef float64) []ilp.Term {
	for _, a := range arcs {
		terms = append(terms, ilp.Term{Coef: coef, Var: b.x[a][t]})
	}

	return terms
}

// rootFlowOut — group 1. Outgoing flow from root r for terminal t equals
// 1 iff r and t share a net. The conditional is carried by the exact
// z[r,t] indicator:
//
//	Σ_{a: tail(a)=root(r)} x[a,t] − z[r,t] == 0
func (b *builder) rootFlowOut() {
	in := b.inst
	for t, tNode := range in.Terminals {
		for r, rNode := range in.Roots {
			zID := b.m.AddBinary(ilp.KindAux, varZ, r, t)
			b.pinEquality("root_term_same_net", zID, r-in.NetOf[tNode], t, r)

			terms := b.sumX(nil, b.outArcs[rNode], t, 1)
			terms = append(terms, ilp.Term{Coef: -1, Var: zID})
			b.emit(fmt.Sprintf("root_flow_out[%d,%d]", t, r), terms, ilp.EQ, 0)
		}
	}
}

// rootFlowIn — group 2. No arc carries any terminal's flow into a root.
func (b *builder) rootFlowIn() {
	in := b.inst
	for t := range in.Terminals {
		for r, rNode := range in.Roots {
			terms := b.sumX(nil, b.inArcs[rNode], t, 1)
			b.emit(fmt.Sprintf("root_flow_in[%d,%d]", t, r), terms, ilp.EQ, 0)
		}
	}
}

// termsFlowOut — group 3. A terminal never forwards its own flow onward.
func (b *builder) termsFlowOut() {
	for t, tNode := range b.inst.Terminals {
		terms := b.sumX(nil, b.outArcs[tNode], t, 1)
		b.emit(fmt.Sprintf("terms_flow_out[%d]", t), terms, ilp.EQ, 0)
	}
}

// termsFlowIn — group 4. Exactly one unit arrives at each terminal.
func (b *builder) termsFlowIn() {
	for t, tNode := range b.inst.Terminals {
		terms := b.sumX(nil, b.inArcs[tNode], t, 1)
		b.emit(fmt.Sprintf("terms_flow_in[%d]", t), terms, ilp.EQ, 1)
	}
}

// termsFlowBalSame — group 5. Flow for terminal t is conserved at every
// distinct sibling terminal s of the same net. The "same net ∧ distinct"
// condition is carried by z_same_net_diff_terminal[t,s]: the diagonal is
// pinned to 0, the indicator may never be 1 across nets, and the balance
// is gated by MFlow·(1−z).
func (b *builder) termsFlowBalSame() {
	in := b.inst
	mf := b.bigM.Flow
	for t := range in.Terminals {
		for s, sNode := range in.Terminals {
			zID := b.m.AddBinary(ilp.KindAux, varZSame, t, s)
			if s == t {
				b.emit(fmt.Sprintf("exclude_diagonal_same[%d]", t),
					[]ilp.Term{{Coef: 1, Var: zID}}, ilp.EQ, 0)
				continue
			}
			gap := in.NetOf[in.Terminals[t]] - in.NetOf[sNode]
			b.pinSameNetUpper("same_net_diff_terminal", zID, gap, t, s)

			// inflow − outflow at s, for commodity t
			bal := b.sumX(nil, b.inArcs[sNode], t, 1)
			bal = b.sumX(bal, b.outArcs[sNode], t, -1)

			upper := append(append([]ilp.Term(nil), bal...), ilp.Term{Coef: mf, Var: zID})
			b.emit(fmt.Sprintf("terms_flow_bal_same_ub[%d,%d]", t, s), upper, ilp.LE, mf)

			lower := append(append([]ilp.Term(nil), bal...), ilp.Term{Coef: -mf, Var: zID})
			b.emit(fmt.Sprintf("terms_flow_bal_same_lb[%d,%d]", t, s), lower, ilp.GE, -mf)
		}
	}
}

// termsFlowBalDiff — group 6. Flow for terminal t never touches a
// terminal s of a different net: inflow + outflow at s must be 0,
// gated by z_diff_network[t,s]. The sum of binaries is non-negative,
// so only the upper gate is needed.
func (b *builder) termsFlowBalDiff() {
	in := b.inst
	mf := b.bigM.Flow
	for t := range in.Terminals {
		for s, sNode := range in.Terminals {
			zID := b.m.AddBinary(ilp.KindAux, varZDiff, t, s)
			gap := in.NetOf[in.Terminals[t]] - in.NetOf[sNode]
			b.pinDiffNetUpper("diff_network_bound", zID, gap, t, s)

			// inflow + outflow at s, for commodity t
			touch := b.sumX(nil, b.inArcs[sNode], t, 1)
			touch = b.sumX(touch, b.outArcs[sNode], t, 1)
			touch = append(touch, ilp.Term{Coef: mf, Var: zID})
			b.emit(fmt.Sprintf("terms_flow_bal_diff[%d,%d]", t, s), touch, ilp.LE, mf)
		}
	}
}

// nodesFlowBal — group 7. Ordinary conservation at every Normal node,
// for every terminal commodity. No conditional, no gate.
func (b *builder) nodesFlowBal() {
	in := b.inst
	for t := range in.Terminals {
		for n, nNode := range in.Normals {
			terms := b.sumX(nil, b.outArcs[nNode], t, 1)
			terms = b.sumX(terms, b.inArcs[nNode], t, -1)
			b.emit(fmt.Sprintf("nodes_flow_bal[%d,%d]", t, n), terms, ilp.EQ, 0)
		}
	}
}

// bindXY — group 8. Per arc and net, the x flows of the net's terminals
// are dominated by cardinality(net)·y[arc,net]. The terminal-in-net
// condition is folded into the coefficients (net ids are constants); the
// z_terminal_in_net indicators are still declared and pinned so the
// encoding exposes the condition explicitly. Nets with no terminals
// contribute no constraints.
func (b *builder) bindXY() {
	in := b.inst

	for t, tNode := range in.Terminals {
		for k := 0; k < in.NumNets; k++ {
			zID := b.m.AddBinary(ilp.KindAux, varZInNet, t, k)
			b.pinSameNetUpper("terminal_in_net", zID, in.NetOf[tNode]-k, t, k)
		}
	}

	for a := range in.Arcs {
		for k := 0; k < in.NumNets; k++ {
			if in.Cardinality[k] == 0 {
				continue
			}
			var terms []ilp.Term
			for t, tNode := range in.Terminals {
				if in.NetOf[tNode] == k {
					terms = append(terms, ilp.Term{Coef: 1, Var: b.x[a][t]})
				}
			}
			terms = append(terms, ilp.Term{Coef: -float64(in.Cardinality[k]), Var: b.y[a][k]})
			b.emit(fmt.Sprintf("bind_x_y[%d,%d]", a, k), terms, ilp.LE, 0)
		}
	}
}

// disjointNonRoot — group 9. Every non-root vertex is entered by at most
// one net across all of its incoming arcs.
func (b *builder) disjointNonRoot() {
	in := b.inst
	for v := 0; v < in.NumNodes; v++ {
		if in.IsRoot(v) {
			continue
		}
		var terms []ilp.Term
		for _, a := range b.inArcs[v] {
			for k := 0; k < in.NumNets; k++ {
				terms = append(terms, ilp.Term{Coef: 1, Var: b.y[a][k]})
			}
		}
		if len(terms) == 0 {
			continue
		}
		b.emit(fmt.Sprintf("disjoint_nonroot[%d]", v), terms, ilp.LE, 1)
	}
}

// disjointRoot — group 10. No net may use a root vertex as an internal
// hop: nothing enters any root.
func (b *builder) disjointRoot() {
	in := b.inst
	for r, rNode := range in.Roots {
		var terms []ilp.Term
		for _, a := range b.inArcs[rNode] {
			for k := 0; k < in.NumNets; k++ {
				terms = append(terms, ilp.Term{Coef: 1, Var: b.y[a][k]})
			}
		}
		if len(terms) == 0 {
			continue
		}
		b.emit(fmt.Sprintf("disjoint_root[%d]", r), terms, ilp.LE, 0)
	}
}
