package steiner_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinerpack/ilp"
	"github.com/katalvlaran/steinerpack/instance"
	"github.com/katalvlaran/steinerpack/steiner"
)

// loadChain builds the 4-node single-net chain 1→2→3→4 (root 1,
// terminal 4, arc costs 5/3/2) through the regular file loader.
func loadChain(t *testing.T) *instance.Instance {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"param.dat": "nodes 4\nnets 1\n",
		"terms.dat": "1 1\n4 1\n",
		"roots.dat": "1 1\n",
		"arcs.dat":  "1 2 5\n2 3 3\n3 4 2\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	in, err := instance.Load(dir)
	require.NoError(t, err)

	return in
}

func TestBuild_NilInstance(t *testing.T) {
	m, err := steiner.Build(nil)
	require.ErrorIs(t, err, steiner.ErrNilInstance)
	assert.Nil(t, m)
}

func TestBuild_ChainStructure(t *testing.T) {
	in := loadChain(t)
	m, err := steiner.Build(in)
	require.NoError(t, err)

	// 3 arcs × 1 terminal x, 3 arcs × 1 net y, plus one of each indicator.
	assert.Equal(t, 10, m.NumVariables())

	for a := 0; a < 3; a++ {
		_, ok := m.Lookup("x", a, 0)
		assert.True(t, ok, "x[%d,0]", a)
		_, ok = m.Lookup("y", a, 0)
		assert.True(t, ok, "y[%d,0]", a)
	}
	_, ok := m.Lookup("z", 0, 0)
	assert.True(t, ok)
	_, ok = m.Lookup("z_same_net_diff_terminal", 0, 0)
	assert.True(t, ok)
	_, ok = m.Lookup("z_diff_network", 0, 0)
	assert.True(t, ok)
	_, ok = m.Lookup("z_terminal_in_net", 0, 0)
	assert.True(t, ok)

	kind, ok := m.KindOf("x")
	require.True(t, ok)
	assert.Equal(t, ilp.KindX, kind)
	kind, ok = m.KindOf("z_diff_network")
	require.True(t, ok)
	assert.Equal(t, ilp.KindAux, kind)

	// Objective covers every (arc, net) pair.
	assert.Len(t, m.Objective(), 3)

	names := make(map[string]bool, len(m.Constraints()))
	for _, c := range m.Constraints() {
		names[c.Name] = true
	}
	for _, want := range []string{
		"root_flow_out[0,0]",
		"root_flow_in[0,0]",
		"terms_flow_out[0]",
		"terms_flow_in[0]",
		"exclude_diagonal_same[0]",
		"terms_flow_bal_diff[0,0]",
		"nodes_flow_bal[0,0]",
		"nodes_flow_bal[0,1]",
		"bind_x_y[0,0]",
		"bind_x_y[2,0]",
		"disjoint_nonroot[1]",
		"disjoint_nonroot[3]",
	} {
		assert.True(t, names[want], "missing constraint %s", want)
	}
	// The root has no incoming arcs, so the root-disjointness row is vacuous.
	assert.False(t, names["disjoint_root[0]"])
}

func TestBuild_ChainFeasibleRouting(t *testing.T) {
	in := loadChain(t)
	m, err := steiner.Build(in)
	require.NoError(t, err)

	asg := make(map[int]float64)
	set := func(name string, subs ...int) {
		id, ok := m.Lookup(name, subs...)
		require.True(t, ok, "%s%v", name, subs)
		asg[id] = 1
	}
	for a := 0; a < 3; a++ {
		set("x", a, 0)
		set("y", a, 0)
	}
	set("z", 0, 0)

	ev := m.Evaluate(asg)
	assert.True(t, ev.Feasible, "violated: %v", ev.Violated)
	assert.Empty(t, ev.Violated)
	assert.Equal(t, 10.0, ev.Objective)
}

func TestBuild_ChainBrokenRouting(t *testing.T) {
	in := loadChain(t)
	m, err := steiner.Build(in)
	require.NoError(t, err)

	// Flow without the root indicator: the equality in group 1 breaks and
	// the indicator lower bound forces z[0,0]=1 for the shared net.
	asg := make(map[int]float64)
	for a := 0; a < 3; a++ {
		xID, ok := m.Lookup("x", a, 0)
		require.True(t, ok)
		yID, ok := m.Lookup("y", a, 0)
		require.True(t, ok)
		asg[xID] = 1
		asg[yID] = 1
	}

	ev := m.Evaluate(asg)
	assert.False(t, ev.Feasible)
	assert.Contains(t, ev.Violated, "root_flow_out[0,0]")
	assert.Contains(t, ev.Violated, "root_term_same_net_lb[0,0]")
}

func TestBuild_DisjointnessViolation(t *testing.T) {
	// Two nets funnel through the shared node 3:
	//   net 1: root 1, terminal 4, path 1→3→4
	//   net 2: root 2, terminal 5, path 2→3→5
	dir := t.TempDir()
	files := map[string]string{
		"param.dat": "nodes 5\nnets 2\n",
		"terms.dat": "1 1\n4 1\n2 2\n5 2\n",
		"roots.dat": "1 1\n2 2\n",
		"arcs.dat":  "1 3 1\n2 3 1\n3 4 1\n3 5 1\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	in, err := instance.Load(dir)
	require.NoError(t, err)

	m, err := steiner.Build(in)
	require.NoError(t, err)

	asg := make(map[int]float64)
	set := func(name string, subs ...int) {
		id, ok := m.Lookup(name, subs...)
		require.True(t, ok, "%s%v", name, subs)
		asg[id] = 1
	}
	a13, _ := in.ArcIndex(0, 2)
	a23, _ := in.ArcIndex(1, 2)
	a34, _ := in.ArcIndex(2, 3)
	a35, _ := in.ArcIndex(2, 4)
	t4 := mustTermIndex(t, in, 3)
	t5 := mustTermIndex(t, in, 4)

	set("x", a13, t4)
	set("x", a34, t4)
	set("y", a13, 0)
	set("y", a34, 0)
	set("z", 0, t4)

	set("x", a23, t5)
	set("x", a35, t5)
	set("y", a23, 1)
	set("y", a35, 1)
	set("z", 1, t5)

	ev := m.Evaluate(asg)
	assert.False(t, ev.Feasible, "node 3 is entered by both nets")
	assert.Contains(t, ev.Violated, "disjoint_nonroot[2]")
	for _, name := range ev.Violated {
		if !strings.HasPrefix(name, "disjoint_nonroot") {
			t.Errorf("unexpected violation %s", name)
		}
	}
}

func TestBuild_EmptyNetSkipsBinding(t *testing.T) {
	// Net 2 has a root but no terminals: it contributes no binding rows.
	dir := t.TempDir()
	files := map[string]string{
		"param.dat": "nodes 5\nnets 2\n",
		"terms.dat": "1 1\n4 1\n5 2\n",
		"roots.dat": "1 1\n5 2\n",
		"arcs.dat":  "1 2 5\n2 3 3\n3 4 2\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	in, err := instance.Load(dir)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, in.Cardinality)

	m, err := steiner.Build(in)
	require.NoError(t, err)

	for _, c := range m.Constraints() {
		if strings.HasPrefix(c.Name, "bind_x_y[") {
			assert.True(t, strings.HasSuffix(c.Name, ",0]"),
				"empty net must not bind: %s", c.Name)
		}
	}
}

func mustTermIndex(t *testing.T, in *instance.Instance, node int) int {
	t.Helper()
	idx, ok := in.TerminalIndex(node)
	require.True(t, ok)

	return idx
}
