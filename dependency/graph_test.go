package dependency

import (
	"strings"
	"testing"

	"github.com/ragtimer/ragtimer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoVariableProducer builds a system where A init 1, B init 0, r: consume
// A, produce B, rate 2.0, target B = 1.
func twoVariableProducer(t *testing.T) *model.Model {
	t.Helper()
	src := `
species A init 1
species B init 0
reaction r
consume A
produce B
rate 2.0
target B = 1
`
	m, err := model.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return m
}

func TestBuild_SingleTransitionDependency(t *testing.T) {
	m := twoVariableProducer(t)
	g, err := Build(m)
	require.NoError(t, err)

	names := g.Transitions()
	require.Len(t, names, 1)
	assert.Equal(t, "r", names[0])

	depth, ok := g.DistanceToRoot("r")
	assert.True(t, ok)
	assert.Equal(t, 0, depth)
	assert.True(t, g.Enabled())
}

// TestBuild_UnrelatedTransitionsExcluded checks that only the transition
// that moves the target variable belongs in the graph.
func TestBuild_UnrelatedTransitionsExcluded(t *testing.T) {
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

	names := g.Transitions()
	require.Len(t, names, 1)
	assert.Equal(t, "c", names[0])
}

// TestBuild_DisabledSiblingDoesNotDisableNode covers two candidates for one
// target: x needs A replenished and nothing produces A, so its subtree dies,
// while y produces B directly. The root stays enabled because y alone
// covers the target; x's failure only prunes x.
func TestBuild_DisabledSiblingDoesNotDisableNode(t *testing.T) {
	src := `
species A init 0
species B init 0
reaction x
consume A
produce B
rate 1.0
reaction y
produce B
rate 1.0
target B = 1
`
	m, err := model.Parse(strings.NewReader(src))
	require.NoError(t, err)

	g, err := Build(m)
	require.NoError(t, err)

	assert.True(t, g.Enabled(), "y covers the target on its own; x's dead subtree must not disable the root")
	names := g.Transitions()
	require.Len(t, names, 1)
	assert.Equal(t, "y", names[0])
	_, ok := g.DistanceToRoot("x")
	assert.False(t, ok)
}

func TestBuild_NoRepeatedTransitionOnPath(t *testing.T) {
	m := twoVariableProducer(t)
	g, err := Build(m)
	require.NoError(t, err)

	onPath := map[string]int{}
	var walk func(nodeID int)
	walk = func(nodeID int) {
		n := g.nodes[nodeID]
		if n.TransitionID != sentinelTransitionID {
			onPath[n.TransitionName]++
			defer func() { onPath[n.TransitionName]-- }()
			assert.LessOrEqual(t, onPath[n.TransitionName], 1, "transition %s should not repeat on a root-to-leaf path within this small graph", n.TransitionName)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(0)
}

func TestGraph_StringFormat(t *testing.T) {
	m := twoVariableProducer(t)
	g, err := Build(m)
	require.NoError(t, err)
	out := g.String()
	assert.Contains(t, out, "r 1 times to produce")
}
