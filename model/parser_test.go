package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoVariableProducer = `
species A init 1
species B init 0
reaction r
consume A
produce B
rate 2.0
target B = 1
`

func TestParse_TwoVariableProducer(t *testing.T) {
	m, err := Parse(strings.NewReader(twoVariableProducer))
	require.NoError(t, err)
	require.Len(t, m.Variables, 2)
	assert.Equal(t, Vector{1, 0}, m.Initial())
	require.Len(t, m.Transitions, 1)
	tr := m.Transitions[0]
	assert.Equal(t, "r", tr.Name)
	assert.Equal(t, Vector{-1, 1}, tr.Update)
	assert.Equal(t, Vector{1, 0}, tr.EnabledBound)
	assert.Equal(t, 2.0, tr.Rate)
	assert.Equal(t, 1, m.Target.Variable)
	assert.Equal(t, OpEqual, m.Target.Operator)
	assert.Equal(t, int64(1), m.Target.Value)
}

func TestParse_DefaultCountIsOne(t *testing.T) {
	src := `
species A init 5
reaction r
consume A
rate 1.0
target A = 0
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, Vector{-1}, m.Transitions[0].Update)
	assert.Equal(t, Vector{1}, m.Transitions[0].EnabledBound)
}

func TestParse_UnknownVariable(t *testing.T) {
	src := `
species A init 0
reaction r
consume B
rate 1.0
target A = 1
`
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVariable))
}

func TestParse_NoActiveTransition(t *testing.T) {
	src := `
species A init 0
consume A
`
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoActiveTransition))
}

func TestParse_UnsupportedOperatorRejected(t *testing.T) {
	src := `
species A init 0
reaction r
produce A
rate 1.0
target A < 5
`
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedOperator))
}

func TestParse_InitialSatisfiesTargetRejected(t *testing.T) {
	src := `
species A init 1
reaction r
produce A
rate 1.0
target A = 1
`
	_, err := Parse(strings.NewReader(src))
	assert.True(t, errors.Is(err, ErrInitialSatisfiesTarget))
}

func TestParse_DuplicateVariable(t *testing.T) {
	src := `
species A init 0
species A init 1
`
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateVariable))
}
