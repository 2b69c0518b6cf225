package ragtimer

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/ragtimer/ragtimer/model"
	"github.com/ragtimer/ragtimer/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const producerModel = `
species A init 1
species B init 0
reaction r
consume A
produce B
rate 2.0
target B = 1
`

func TestRunBenchmark_BothVariants(t *testing.T) {
	m, err := model.Parse(strings.NewReader(producerModel))
	require.NoError(t, err)

	for _, v := range []Variant{RewardLearning, RandomDependency} {
		res, err := RunBenchmark(context.Background(), m, v, 3, trace.DefaultMagicNumbers(), rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, v, res.Variant)
		assert.Equal(t, 3, res.Stats.TracesAccepted)
		assert.Equal(t, 3, res.States, "absorbing, init, target")
	}
}

func TestVariant_String(t *testing.T) {
	assert.Equal(t, "reward-learning", RewardLearning.String())
	assert.Equal(t, "random-dependency", RandomDependency.String())
}
