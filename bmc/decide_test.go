package bmc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardSearch_FindsShortestWitness(t *testing.T) {
	m := twoVariableProducerModel()
	traj, ok, err := ForwardSearch(context.Background(), m, 4, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, traj, 4) // init + 3 firings of r to move B from 0 to 3
}

func TestForwardSearch_ReturnsFalseWhenStepCapTooSmall(t *testing.T) {
	m := twoVariableProducerModel()
	_, ok, err := ForwardSearch(context.Background(), m, 4, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestForwardSearch_RespectsContextCancellation(t *testing.T) {
	m := twoVariableProducerModel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ForwardSearch(ctx, m, 4, 10)
	assert.Error(t, err)
}

func TestMaskAdd_WrapsAtWidth(t *testing.T) {
	assert.Equal(t, int64(0), maskAdd(15, 1, 4))
	assert.Equal(t, int64(15), maskAdd(0, -1, 4))
}
