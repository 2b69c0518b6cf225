package ragtimer

import (
	"context"
	"math/rand"
	"time"

	"github.com/ragtimer/ragtimer/dependency"
	"github.com/ragtimer/ragtimer/explicit"
	"github.com/ragtimer/ragtimer/model"
	"github.com/ragtimer/ragtimer/trace"
)

// Variant selects which trace-generation strategy RunBenchmark measures.
type Variant int

const (
	RewardLearning Variant = iota
	RandomDependency
)

func (v Variant) String() string {
	if v == RandomDependency {
		return "random-dependency"
	}
	return "reward-learning"
}

// BenchmarkResult summarizes one measured trace-generation run.
type BenchmarkResult struct {
	Variant     Variant
	Stats       trace.Stats
	States      int
	Transitions int
	Elapsed     time.Duration
}

// RunBenchmark generates count traces of m with the given variant into a
// fresh explicit CTMC and reports acceptance counts, the resulting model
// size, and elapsed wall-clock time. The rewards table and CTMC are
// discarded afterward; only the measurements are returned.
func RunBenchmark(ctx context.Context, m *model.Model, v Variant, count int, mn trace.MagicNumbers, rng *rand.Rand) (BenchmarkResult, error) {
	dg, err := dependency.Build(m)
	if err != nil {
		return BenchmarkResult{}, err
	}

	c := explicit.New(m)
	opts := []trace.Option{trace.WithMagicNumbers(mn)}
	if rng != nil {
		opts = append(opts, trace.WithRNG(rng))
	}
	e := trace.NewEngine(m, c, opts...)

	start := time.Now()
	var stats trace.Stats
	if v == RandomDependency {
		stats, err = e.GenerateRandomDependencyTraces(ctx, count, dg)
	} else {
		stats, err = e.GenerateRewardLearningTraces(ctx, count, dg)
	}
	elapsed := time.Since(start)
	if err != nil {
		return BenchmarkResult{}, err
	}

	return BenchmarkResult{
		Variant:     v,
		Stats:       stats,
		States:      len(c.States()),
		Transitions: len(c.Transitions()),
		Elapsed:     elapsed,
	}, nil
}
