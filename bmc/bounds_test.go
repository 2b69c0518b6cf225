package bmc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeBounds_TightAndLooseMatchWitness exercises the reversible
// two-variable system at b=4 bits: witness is "up" fired five times, so A's
// tight bounds are exactly [0, 5] and the loose upper bound is at least 5.
func TestComputeBounds_TightAndLooseMatchWitness(t *testing.T) {
	m := reversibleChainModel()
	bounds, k, err := ComputeBounds(context.Background(), m, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, k)

	a := bounds[0]
	assert.GreaterOrEqual(t, a.LooseUpper, int64(5))
	assert.Equal(t, int64(5), a.TightUpper)
	assert.Equal(t, int64(0), a.TightLower)
}

func TestComputeBounds_StepCapTooSmallReturnsErrNoWitness(t *testing.T) {
	m := reversibleChainModel()
	_, _, err := ComputeBounds(context.Background(), m, 4, 1)
	assert.ErrorIs(t, err, ErrNoWitness)
}

func TestComputeBounds_RespectsContextCancellation(t *testing.T) {
	m := reversibleChainModel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ComputeBounds(ctx, m, 4, 10)
	assert.Error(t, err)
}
