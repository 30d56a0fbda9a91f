package solution_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinerpack/solution"
)

func TestParse_CostHeader(t *testing.T) {
	rec, err := solution.Parse(strings.NewReader("# cost: 10\n1 2 1\n"))
	require.NoError(t, err)

	require.NotNil(t, rec.Objective)
	assert.Equal(t, 10.0, *rec.Objective)
	require.Len(t, rec.UsedArcs, 1)
	assert.Equal(t, solution.UsedArc{Tail: 0, Head: 1, Net: 0}, rec.UsedArcs[0])
}

func TestParse_BareCostHeader(t *testing.T) {
	rec, err := solution.Parse(strings.NewReader("# cost 10.5\n1 2 1\n"))
	require.NoError(t, err)

	require.NotNil(t, rec.Objective)
	assert.Equal(t, 10.5, *rec.Objective)
}

func TestParse_ObjectiveValueHeader(t *testing.T) {
	rec, err := solution.Parse(strings.NewReader("# Objective value = 12.5\n2 3 2\n"))
	require.NoError(t, err)

	require.NotNil(t, rec.Objective)
	assert.Equal(t, 12.5, *rec.Objective)
	assert.Equal(t, solution.UsedArc{Tail: 1, Head: 2, Net: 1}, rec.UsedArcs[0])
}

func TestParse_NoHeader(t *testing.T) {
	rec, err := solution.Parse(strings.NewReader("1 2 1\n2 3 1\n"))
	require.NoError(t, err)

	assert.Nil(t, rec.Objective)
	assert.Len(t, rec.UsedArcs, 2)
}

func TestParse_FirstHeaderWins(t *testing.T) {
	body := "# cost: 7\n# cost: 99\n1 2 1\n"
	rec, err := solution.Parse(strings.NewReader(body))
	require.NoError(t, err)

	require.NotNil(t, rec.Objective)
	assert.Equal(t, 7.0, *rec.Objective)
}

func TestParse_SkipsBlankAndShortRows(t *testing.T) {
	body := "\n# routing\n1 2\n\n1 2 1\n   \n"
	rec, err := solution.Parse(strings.NewReader(body))
	require.NoError(t, err)

	require.Len(t, rec.UsedArcs, 1)
	assert.Equal(t, solution.UsedArc{Tail: 0, Head: 1, Net: 0}, rec.UsedArcs[0])
}

func TestParse_MalformedRow(t *testing.T) {
	_, err := solution.Parse(strings.NewReader("1 two 1\n"))
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.sol")
	require.NoError(t, os.WriteFile(path, []byte("# cost: 10\n1 2 1\n2 3 1\n3 4 1\n"), 0o644))

	rec, err := solution.ParseFile(path)
	require.NoError(t, err)
	require.NotNil(t, rec.Objective)
	assert.Equal(t, 10.0, *rec.Objective)
	assert.Len(t, rec.UsedArcs, 3)

	_, err = solution.ParseFile(filepath.Join(t.TempDir(), "absent.sol"))
	assert.Error(t, err)
}
