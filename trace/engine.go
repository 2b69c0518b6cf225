package trace

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ragtimer/ragtimer/dependency"
	"github.com/ragtimer/ragtimer/explicit"
	"github.com/ragtimer/ragtimer/model"
	"github.com/rs/zerolog"
)

// Option configures an Engine before use, following the functional-options
// idiom used throughout this module.
type Option func(*Engine)

// WithRNG injects a deterministic random source. Without this option the
// engine derives one from seed 0.
func WithRNG(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithMagicNumbers overrides the reward-learning loop's tunables.
func WithMagicNumbers(mn MagicNumbers) Option {
	return func(e *Engine) { e.magic = mn }
}

// WithLogger attaches a logger for per-trace outcome events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Stats summarizes one Generate* call.
type Stats struct {
	TracesAccepted  int
	TracesAbandoned int
}

// Engine generates unique terminating traces from a VAS model's initial
// state and incrementally folds them into an explicit.CTMC.
type Engine struct {
	m    *model.Model
	ctmc *explicit.CTMC

	trie   *traceTrie
	rng    *rand.Rand
	magic  MagicNumbers
	logger zerolog.Logger

	rewards            map[int]float64
	transitionIDByName map[string]int
	transitionByID     map[int]*model.Transition

	accepted [][]int
}

// AcceptedTraces returns the transition-id sequences of every trace folded
// into the CTMC so far, in acceptance order. Used by callers (e.g. the CLI)
// that need to hand the same traces to the cycle-and-commute expander.
func (e *Engine) AcceptedTraces() [][]int {
	return e.accepted
}

// NewEngine constructs an Engine over m, folding accepted traces into ctmc.
func NewEngine(m *model.Model, ctmc *explicit.CTMC, opts ...Option) *Engine {
	e := &Engine{
		m:                  m,
		ctmc:               ctmc,
		trie:               newTraceTrie(),
		rng:                rngFromSeed(0),
		magic:              DefaultMagicNumbers(),
		logger:             zerolog.Nop(),
		transitionIDByName: make(map[string]int, len(m.Transitions)),
		transitionByID:     make(map[int]*model.Transition, len(m.Transitions)),
	}
	for i := range m.Transitions {
		t := &m.Transitions[i]
		e.transitionIDByName[t.Name] = t.ID
		e.transitionByID[t.ID] = t
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type stepPicker func(state model.Vector, enabledIdx []int) int

// GenerateRandomDependencyTraces runs the random-dependency variant: at each
// step, pick uniformly at random among transitions enabled at the current
// state AND present in the dependency graph.
func (e *Engine) GenerateRandomDependencyTraces(ctx context.Context, count int, dg *dependency.Graph) (Stats, error) {
	names := dependencyTransitionNames(dg)
	return e.run(ctx, count, names, e.pickUniform)
}

// GenerateRewardLearningTraces runs the reward-learning variant: rewards are
// initialised from dg (seeding dependency-graph transitions with a
// depth-damped bonus), updated after every trace, and floor-clamped via
// maintainRewards.
func (e *Engine) GenerateRewardLearningTraces(ctx context.Context, count int, dg *dependency.Graph) (Stats, error) {
	e.initializeRewards(dg)
	var history []float64
	var stats Stats

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		ids, prob, ok, err := e.generateUniqueTrace(ctx, nil, e.pickByReward)
		if err != nil {
			return stats, err
		}
		e.updateRewards(ids, prob, history)
		history = append(history, prob)
		e.maintainRewards(dg)

		if ok && len(ids) > 0 {
			if err := e.fold(ids); err != nil {
				return stats, err
			}
			e.accepted = append(e.accepted, ids)
			stats.TracesAccepted++
			e.logger.Info().Int("trace_len", len(ids)).Float64("probability", prob).Msg("trace accepted")
		} else {
			stats.TracesAbandoned++
			e.logger.Warn().Msg("trace abandoned")
		}
	}
	return stats, nil
}

func (e *Engine) run(ctx context.Context, count int, restrict map[string]bool, pick stepPicker) (Stats, error) {
	var stats Stats
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		ids, _, ok, err := e.generateUniqueTrace(ctx, restrict, pick)
		if err != nil {
			return stats, err
		}
		if ok && len(ids) > 0 {
			if err := e.fold(ids); err != nil {
				return stats, err
			}
			e.accepted = append(e.accepted, ids)
			stats.TracesAccepted++
		} else {
			stats.TracesAbandoned++
		}
	}
	return stats, nil
}

// generateUniqueTrace repeatedly generates a trace via generateTrace until
// one is accepted: non-empty and not already present in the trace trie. To
// avoid livelock, after MaxConsecutiveRejects consecutive rejections it
// accepts whatever was last produced.
func (e *Engine) generateUniqueTrace(ctx context.Context, restrict map[string]bool, pick stepPicker) (ids []int, prob float64, ok bool, err error) {
	rejections := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, 0, false, err
		}
		ids, prob, ok = e.generateTrace(restrict, pick)
		duplicate := len(ids) > 0 && e.trie.Contains(ids)
		novel := len(ids) > 0 && !duplicate
		if novel || rejections >= e.magic.MaxConsecutiveRejects {
			if len(ids) > 0 {
				e.trie.Insert(ids)
			}
			return ids, prob, ok, nil
		}
		rejections++
	}
}

// generateTrace implements the common trace-generation skeleton: repeatedly
// pick one enabled transition from the current state until the
// target is satisfied (success), no transition is enabled (failure), or the
// trace exceeds MaxTraceLength (failure).
func (e *Engine) generateTrace(restrict map[string]bool, pick stepPicker) (ids []int, prob float64, ok bool) {
	state := e.m.Initial()
	satisfies := e.m.SatisfiesTarget()
	prob = 1.0

	if satisfies(state) {
		return nil, prob, true
	}

	for len(ids) <= e.magic.MaxTraceLength {
		enabled := e.m.EnabledTransitions(state)
		if restrict != nil {
			filtered := enabled[:0]
			for _, idx := range enabled {
				if restrict[e.m.Transitions[idx].Name] {
					filtered = append(filtered, idx)
				}
			}
			enabled = filtered
		}
		if len(enabled) == 0 {
			return ids, 0, false
		}

		chosen := pick(state, enabled)
		t := &e.m.Transitions[chosen]
		rate, _ := model.RateAt(state, t)
		total := e.m.TotalOutgoingRate(state)
		if total > 0 {
			prob *= rate / total
		}

		state = state.Add(t.Update)
		ids = append(ids, t.ID)

		if satisfies(state) {
			return ids, prob, true
		}
	}
	return ids, 0, false
}

func (e *Engine) pickUniform(_ model.Vector, enabledIdx []int) int {
	shuffled := append([]int(nil), enabledIdx...)
	shuffleIntsInPlace(shuffled, e.rng)
	return shuffled[0]
}

// pickByReward implements the reward-proportional sampling loop: shuffle the
// enabled transitions, compute the sum S of their rewards, and
// for each candidate in shuffled order accept it with probability
// reward/S; if no candidate is accepted in a pass, reshuffle and try again.
func (e *Engine) pickByReward(_ model.Vector, enabledIdx []int) int {
	const maxPasses = 1000
	shuffled := append([]int(nil), enabledIdx...)

	for pass := 0; pass < maxPasses; pass++ {
		shuffleIntsInPlace(shuffled, e.rng)
		var sum float64
		for _, idx := range shuffled {
			sum += e.rewards[e.m.Transitions[idx].ID]
		}
		for _, idx := range shuffled {
			reward := e.rewards[e.m.Transitions[idx].ID]
			selectionProbability := reward
			if sum > 0 {
				selectionProbability = reward / sum
			}
			if e.rng.Float64() < selectionProbability {
				return idx
			}
		}
	}
	return shuffled[0]
}

// fold walks an accepted trace from the initial state, materialising each
// (state, transition, next-state) step into the CTMC via FoldStep.
func (e *Engine) fold(ids []int) error {
	state := e.m.Initial()
	for _, id := range ids {
		t, ok := e.transitionByID[id]
		if !ok {
			return fmt.Errorf("trace: unknown transition id %d in accepted trace", id)
		}
		next := state.Add(t.Update)
		if _, _, err := e.ctmc.FoldStep(state, t, next); err != nil {
			return err
		}
		state = next
	}
	return nil
}
