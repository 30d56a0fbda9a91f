package steiner

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/steinerpack/ilp"
)

// pinnedModel builds a one-variable model carrying only the requested
// indicator inequalities for the given net-id gap.
func pinnedModel(numNets, gap int, pin func(b *builder, z, gap int)) (*ilp.Model, int) {
	b := &builder{
		m:    ilp.NewModel("indicator"),
		bigM: BigM{Net: float64(numNets)},
	}
	z := b.m.AddBinary(ilp.KindAux, "z", 0, 0)
	pin(b, z, gap)

	return b.m, z
}

// TestPinEquality_Exact enumerates every (netA, netB) pair of a small
// net range and asserts the equality indicator admits exactly the value
// z = [netA == netB]: the linearization never allows a spurious z.
func TestPinEquality_Exact(t *testing.T) {
	const numNets = 5
	for netA := 0; netA < numNets; netA++ {
		for netB := 0; netB < numNets; netB++ {
			m, z := pinnedModel(numNets, netA-netB, func(b *builder, z, gap int) {
				b.pinEquality("p", z, gap, 0, 0)
			})

			zeroOK := m.Evaluate(map[int]float64{z: 0}).Feasible
			oneOK := m.Evaluate(map[int]float64{z: 1}).Feasible

			if netA == netB {
				assert.False(t, zeroOK, "nets %d==%d must force z=1", netA, netB)
				assert.True(t, oneOK, "nets %d==%d must admit z=1", netA, netB)
			} else {
				assert.True(t, zeroOK, "nets %d!=%d must admit z=0", netA, netB)
				assert.False(t, oneOK, "nets %d!=%d must reject z=1", netA, netB)
			}
		}
	}
}

// TestPinSameNetUpper_NeverSpurious checks the one-sided variant:
// z = 1 is rejected whenever the nets differ, and z = 0 is always
// admissible (assignments omitting the indicator stay feasible).
func TestPinSameNetUpper_NeverSpurious(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	const numNets = 16
	nets := gen.IntRange(0, numNets-1)

	properties.Property("z=1 only within one net", prop.ForAll(
		func(netA, netB int) bool {
			m, z := pinnedModel(numNets, netA-netB, func(b *builder, z, gap int) {
				b.pinSameNetUpper("p", z, gap, 0, 0)
			})
			oneOK := m.Evaluate(map[int]float64{z: 1}).Feasible

			return oneOK == (netA == netB)
		},
		nets, nets,
	))

	properties.Property("z=0 always admissible", prop.ForAll(
		func(netA, netB int) bool {
			m, z := pinnedModel(numNets, netA-netB, func(b *builder, z, gap int) {
				b.pinSameNetUpper("p", z, gap, 0, 0)
			})

			return m.Evaluate(map[int]float64{z: 0}).Feasible
		},
		nets, nets,
	))

	properties.TestingRun(t)
}

// TestPinDiffNetUpper_NeverSpurious mirrors the difference indicator:
// z = 1 is rejected exactly when the nets coincide.
func TestPinDiffNetUpper_NeverSpurious(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	const numNets = 16
	nets := gen.IntRange(0, numNets-1)

	properties.Property("z=1 only across nets", prop.ForAll(
		func(netA, netB int) bool {
			m, z := pinnedModel(numNets, netA-netB, func(b *builder, z, gap int) {
				b.pinDiffNetUpper("p", z, gap, 0, 0)
			})
			oneOK := m.Evaluate(map[int]float64{z: 1}).Feasible

			return oneOK == (netA != netB)
		},
		nets, nets,
	))

	properties.TestingRun(t)
}

func TestDeriveBigM(t *testing.T) {
	bm := BigM{Net: 3, Flow: 7}
	assert.Equal(t, 3.0, bm.Net)
	assert.Equal(t, 7.0, bm.Flow)
	assert.Equal(t, 2, abs(-2))
	assert.Equal(t, 2, abs(2))
}
