package ilp

// subsKey is the comparable lookup key for up to three subscripts.
type subsKey struct {
	n       int
	a, b, c int
}

func keyOf(subs []int) subsKey {
	k := subsKey{n: len(subs)}
	if len(subs) > 0 {
		k.a = subs[0]
	}
	if len(subs) > 1 {
		k.b = subs[1]
	}
	if len(subs) > 2 {
		k.c = subs[2]
	}

	return k
}

// Model is an append-only ILP: binary variables, linear constraints and
// a linear minimization objective. It is built once by the model
// builder and treated as immutable afterwards.
type Model struct {
	// Title names the formulation, e.g. "SteinerTreePackingArcBased".
	Title string

	vars        []Variable
	constraints []Constraint
	objective   []Term

	byName map[string]map[subsKey]int // (name, subscripts) → variable ID
	kinds  map[string]VarKind         // family name → kind
}

// NewModel returns an empty model with the given title.
func NewModel(title string) *Model {
	return &Model{
		Title:  title,
		byName: make(map[string]map[subsKey]int),
		kinds:  make(map[string]VarKind),
	}
}

// AddBinary registers a new binary variable of the given family and
// subscripts and returns its dense ID. IDs follow declaration order.
func (m *Model) AddBinary(kind VarKind, name string, subs ...int) int {
	id := len(m.vars)
	stored := make([]int, len(subs))
	copy(stored, subs)
	m.vars = append(m.vars, Variable{ID: id, Kind: kind, Name: name, Subscripts: stored})

	family, ok := m.byName[name]
	if !ok {
		family = make(map[subsKey]int)
		m.byName[name] = family
		m.kinds[name] = kind
	}
	family[keyOf(subs)] = id

	return id
}

// AddConstraint appends a constraint to the model.
func (m *Model) AddConstraint(c Constraint) {
	m.constraints = append(m.constraints, c)
}

// SetObjective replaces the linear minimization objective.
func (m *Model) SetObjective(terms []Term) {
	m.objective = terms
}

// Lookup resolves a (family name, subscripts) pair to a variable ID.
func (m *Model) Lookup(name string, subs ...int) (int, bool) {
	family, ok := m.byName[name]
	if !ok {
		return 0, false
	}
	id, ok := family[keyOf(subs)]

	return id, ok
}

// KindOf returns the kind registered for a family name.
func (m *Model) KindOf(name string) (VarKind, bool) {
	k, ok := m.kinds[name]

	return k, ok
}

// NumVariables returns the number of declared variables.
func (m *Model) NumVariables() int {
	return len(m.vars)
}

// Variables exposes the declared variables in declaration order, for
// downstream artifact serialization. The returned slice must not be
// mutated.
func (m *Model) Variables() []Variable {
	return m.vars
}

// Constraints exposes the declared constraints in declaration order.
// The returned slice must not be mutated.
func (m *Model) Constraints() []Constraint {
	return m.constraints
}

// Objective exposes the objective terms. The returned slice must not be
// mutated.
func (m *Model) Objective() []Term {
	return m.objective
}
