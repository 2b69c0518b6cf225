package dependency

import (
	"strings"
	"testing"

	"github.com/ragtimer/ragtimer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrim_DropsUnreferencedVariablesAndTransitions trims the three-variable
// model where only c moves the target: a, b, X, and Y all disappear, and the
// target re-indexes onto the single surviving variable.
func TestTrim_DropsUnreferencedVariablesAndTransitions(t *testing.T) {
	src := `
species X init 0
species Y init 0
species Z init 0
reaction a
produce X
rate 1.0
reaction b
produce Y
rate 1.0
reaction c
produce Z
rate 1.0
target Z = 1
`
	m, err := model.Parse(strings.NewReader(src))
	require.NoError(t, err)
	g, err := Build(m)
	require.NoError(t, err)

	trimmed := Trim(m, g)
	require.NoError(t, trimmed.Validate())

	require.Len(t, trimmed.Variables, 1)
	assert.Equal(t, "Z", trimmed.Variables[0].Name)
	assert.Equal(t, model.Vector{0}, trimmed.Initial())

	require.Len(t, trimmed.Transitions, 1)
	assert.Equal(t, "c", trimmed.Transitions[0].Name)
	assert.Equal(t, 0, trimmed.Transitions[0].ID)
	assert.Equal(t, model.Vector{1}, trimmed.Transitions[0].Update)
	assert.Equal(t, model.Vector{0}, trimmed.Transitions[0].EnabledBound)

	assert.Equal(t, 0, trimmed.Target.Variable)
	assert.Equal(t, int64(1), trimmed.Target.Value)
}

// TestTrim_KeepsEveryVariableATransitionTouches keeps A even though the
// target is B, because the surviving transition consumes A.
func TestTrim_KeepsEveryVariableATransitionTouches(t *testing.T) {
	m := twoVariableProducer(t)
	g, err := Build(m)
	require.NoError(t, err)

	trimmed := Trim(m, g)
	require.NoError(t, trimmed.Validate())
	require.Len(t, trimmed.Variables, 2)
	require.Len(t, trimmed.Transitions, 1)
	assert.Equal(t, model.Vector{-1, 1}, trimmed.Transitions[0].Update)
	assert.Equal(t, 1, trimmed.Target.Variable)
}

// TestTrim_DoesNotModifyInput checks Trim copies rather than mutates.
func TestTrim_DoesNotModifyInput(t *testing.T) {
	m := twoVariableProducer(t)
	g, err := Build(m)
	require.NoError(t, err)

	_ = Trim(m, g)
	assert.Len(t, m.Variables, 2)
	assert.Len(t, m.Transitions, 1)
	assert.Equal(t, model.Vector{-1, 1}, m.Transitions[0].Update)
}
