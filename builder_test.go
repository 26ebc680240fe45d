package continuum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_InvariantElementCount(t *testing.T) {
	result, err := build(RoutingGroup{"a": 1.0})
	require.NoError(t, err)

	// a single full-weight member owns the whole step budget: 64 steps,
	// 4 points per step.
	assert.Len(t, result.elements, 64*4)
	assert.True(t, result.distinct)
}

func TestBuild_ProportionalSteps(t *testing.T) {
	result, err := build(RoutingGroup{"a": 1.0, "b": 3.0})
	require.NoError(t, err)

	stepsByName := map[string]uint64{}
	for _, d := range result.members {
		stepsByName[d.name] = d.steps
	}

	// L=2, budget=128; a gets 25% -> 32 steps, b gets 75% -> 96 steps.
	assert.Equal(t, uint64(32), stepsByName["a"])
	assert.Equal(t, uint64(96), stepsByName["b"])
	assert.Len(t, result.elements, int(stepsByName["a"]+stepsByName["b"])*4)
}

func TestBuild_NegligibleWeightRoundsToZeroSteps(t *testing.T) {
	// A member whose steps round to zero contributes nothing and must not
	// error.
	result, err := build(RoutingGroup{"a": 1000.0, "b": 0.0001})
	require.NoError(t, err)

	var bSteps uint64 = 1 // sentinel, overwritten below
	for _, d := range result.members {
		if d.name == "b" {
			bSteps = d.steps
		}
	}
	assert.Zero(t, bSteps)

	for _, e := range result.elements {
		assert.NotEqual(t, "b", e.name)
	}
}

func TestBuild_EmptyGroup(t *testing.T) {
	_, err := build(RoutingGroup{})
	require.Error(t, err)
}

func TestBuild_ZeroTotalWeight(t *testing.T) {
	_, err := build(RoutingGroup{"a": 0.0, "b": 0.0})
	require.Error(t, err)
}

func TestBuild_IdenticalWeightsProduceIdenticalSteps(t *testing.T) {
	result, err := build(RoutingGroup{"a": 1.0, "b": 1.0, "c": 1.0})
	require.NoError(t, err)

	var steps []uint64
	for _, d := range result.members {
		steps = append(steps, d.steps)
	}
	require.Len(t, steps, 3)
	assert.Equal(t, steps[0], steps[1])
	assert.Equal(t, steps[1], steps[2])
}

func TestBuild_SortedByPointThenName(t *testing.T) {
	result, err := build(RoutingGroup{"a": 1.0, "b": 2.0, "c": 0.5})
	require.NoError(t, err)

	for i := 1; i < len(result.elements); i++ {
		prev, cur := result.elements[i-1], result.elements[i]
		if prev.point == cur.point {
			assert.LessOrEqual(t, prev.name, cur.name)
		} else {
			assert.Less(t, prev.point, cur.point)
		}
	}
}

func TestLround_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, uint64(0), lround(0))
	assert.Equal(t, uint64(0), lround(0.49))
	assert.Equal(t, uint64(1), lround(0.5))
	assert.Equal(t, uint64(2), lround(1.5))
	assert.Equal(t, uint64(0), lround(-1)) // never called with negatives in practice
}
