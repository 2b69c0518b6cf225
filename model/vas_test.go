package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func twoVariableModel() *Model {
	return &Model{
		Variables:     []Variable{{Name: "A", Index: 0}, {Name: "B", Index: 1}},
		InitialStates: []Vector{{1, 0}},
		Transitions: []Transition{
			{ID: 0, Name: "r", Update: Vector{-1, 1}, EnabledBound: Vector{1, 0}, Rate: 2.0},
		},
		Target: Target{Variable: 1, Operator: OpEqual, Value: 1},
	}
}

func TestEnabledAndRateAt(t *testing.T) {
	m := twoVariableModel()
	tr := &m.Transitions[0]

	assert.True(t, Enabled(Vector{1, 0}, tr))
	rate, ok := RateAt(Vector{1, 0}, tr)
	assert.True(t, ok)
	assert.Equal(t, 2.0, rate)

	assert.False(t, Enabled(Vector{0, 0}, tr))
	_, ok = RateAt(Vector{0, 0}, tr)
	assert.False(t, ok)
}

func TestRateAt_SCKProductOverPositiveBounds(t *testing.T) {
	m := &Model{
		Variables: []Variable{{Name: "A"}, {Name: "B"}},
		Transitions: []Transition{
			{Name: "r", Update: Vector{-1, -1}, EnabledBound: Vector{1, 1}, Rate: 3.0},
		},
	}
	rate, ok := RateAt(Vector{4, 5}, &m.Transitions[0])
	assert.True(t, ok)
	assert.Equal(t, 3.0*4*5, rate)
}

func TestSuccessorsAndTotalOutgoingRate(t *testing.T) {
	m := twoVariableModel()
	succ := m.Successors(Vector{1, 0})
	assert.Len(t, succ, 1)
	assert.Equal(t, Vector{0, 1}, succ[0].Next)
	assert.Equal(t, 2.0, m.TotalOutgoingRate(Vector{1, 0}))
	assert.Equal(t, 0.0, m.TotalOutgoingRate(Vector{0, 1}))
}

func TestValidate(t *testing.T) {
	m := twoVariableModel()
	assert.NoError(t, m.Validate())

	bad := twoVariableModel()
	bad.Transitions[0].Update = Vector{-1}
	assert.ErrorIs(t, bad.Validate(), ErrDimensionMismatch)

	bad = twoVariableModel()
	bad.Target.Variable = 7
	assert.Error(t, bad.Validate())
}

func TestSatisfiesTarget(t *testing.T) {
	m := twoVariableModel()
	pred := m.SatisfiesTarget()
	assert.False(t, pred(Vector{1, 0}))
	assert.True(t, pred(Vector{0, 1}))
}
