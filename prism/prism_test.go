package prism

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ragtimer/ragtimer/explicit"
	"github.com/ragtimer/ragtimer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoVariableProducer() *model.Model {
	return &model.Model{
		Variables:     []model.Variable{{Name: "A", Index: 0}, {Name: "B", Index: 1}},
		InitialStates: []model.Vector{{1, 0}},
		Transitions: []model.Transition{
			{ID: 0, Name: "r", Update: model.Vector{-1, 1}, EnabledBound: model.Vector{1, 0}, Rate: 2.0},
		},
		Target: model.Target{Variable: 1, Operator: model.OpEqual, Value: 1},
	}
}

func TestWriteSTA_HeaderAndStates(t *testing.T) {
	m := twoVariableProducer()
	c := explicit.New(m)
	_, _, err := c.FoldStep(model.Vector{1, 0}, &m.Transitions[0], model.Vector{0, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSTA(&buf, c))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "(A,B)", lines[0])
	// lines[1] is the synthetic absorbing state at index 0.
	assert.Equal(t, "1: (1,0)", lines[2])
}

func TestWriteTRA_HeaderCountsMatch(t *testing.T) {
	m := twoVariableProducer()
	c := explicit.New(m)
	_, _, err := c.FoldStep(model.Vector{1, 0}, &m.Transitions[0], model.Vector{0, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTRA(&buf, c))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 3 states (absorbing, init, target); only r is emitted: init's
	// absorbing placeholder has residual 0 and is omitted, and the target
	// state has no outgoing rate at all.
	assert.Equal(t, "3 1", lines[0])
	assert.Equal(t, "1 2 2", lines[1])
}

func TestWriteLAB_FixedInitDeadlockAssignment(t *testing.T) {
	m := twoVariableProducer()
	c := explicit.New(m)

	var buf bytes.Buffer
	require.NoError(t, WriteLAB(&buf, c))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `0="init" 1="deadlock"`))
	assert.Contains(t, out, "0: 1")
	assert.Contains(t, out, "1: 0")
}

// TestRoundTrip_WriteReadIsomorphic writes the full triple for a
// two-variable producer model and re-parses it, checking that the result is
// isomorphic to the CTMC that produced it.
func TestRoundTrip_WriteReadIsomorphic(t *testing.T) {
	m := twoVariableProducer()
	c := explicit.New(m)
	_, _, err := c.FoldStep(model.Vector{1, 0}, &m.Transitions[0], model.Vector{0, 1})
	require.NoError(t, err)
	require.NoError(t, c.SealAbsorbing())

	var sta, tra, lab bytes.Buffer
	require.NoError(t, WriteSTA(&sta, c))
	require.NoError(t, WriteTRA(&tra, c))
	require.NoError(t, WriteLAB(&lab, c))

	reimported, err := ReadAll(&sta, &tra, &lab)
	require.NoError(t, err)
	assert.True(t, Isomorphic(c, reimported))
}

// TestRoundTrip_NoEnabledTransitions covers a model with zero transitions
// enabled from the initial state and a target unequal to the initial value:
// exactly two explicit states (absorbing, initial) round-trip cleanly.
func TestRoundTrip_NoEnabledTransitions(t *testing.T) {
	m := &model.Model{
		Variables:     []model.Variable{{Name: "A", Index: 0}},
		InitialStates: []model.Vector{{0}},
		Transitions: []model.Transition{
			{ID: 0, Name: "r", Update: model.Vector{1}, EnabledBound: model.Vector{1}, Rate: 1.0},
		},
		Target: model.Target{Variable: 0, Operator: model.OpEqual, Value: 5},
	}
	c := explicit.New(m)
	require.NoError(t, c.SealAbsorbing())
	require.Len(t, c.States(), 2)

	var sta, tra, lab bytes.Buffer
	require.NoError(t, WriteSTA(&sta, c))
	require.NoError(t, WriteTRA(&tra, c))
	require.NoError(t, WriteLAB(&lab, c))

	reimported, err := ReadAll(&sta, &tra, &lab)
	require.NoError(t, err)
	assert.Len(t, reimported.States, 2)
	assert.True(t, Isomorphic(c, reimported))
}
