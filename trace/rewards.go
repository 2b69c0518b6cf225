package trace

import (
	"math"

	"github.com/ragtimer/ragtimer/dependency"
)

// MagicNumbers are the reward-learning loop's tunable knobs. The scheme is
// a heuristic, not a principled policy-gradient update, and is preserved
// verbatim because removing it would break reproducibility against
// known-good traces.
type MagicNumbers struct {
	BaseReward            float64
	DependencyReward      float64
	TraceReward           float64
	SmallestHistoryWindow int
	Clamp                 float64
	MaxTraceLength        int
	MaxConsecutiveRejects int
}

// DefaultMagicNumbers returns the defaults used by reward-learning trace
// generation: base_reward ≈ 0.1, dependency_reward ≈ 100.0, trace_reward ≈
// 0.01, a 50-trace minimum history window, and a clamp of 10.
func DefaultMagicNumbers() MagicNumbers {
	return MagicNumbers{
		BaseReward:            0.1,
		DependencyReward:      100.0,
		TraceReward:           0.01,
		SmallestHistoryWindow: 50,
		Clamp:                 10,
		MaxTraceLength:        1_000_000,
		MaxConsecutiveRejects: 20,
	}
}

func dependencyTransitionNames(dg *dependency.Graph) map[string]bool {
	names := map[string]bool{}
	if dg == nil {
		return names
	}
	for _, n := range dg.Transitions() {
		names[n] = true
	}
	return names
}

// initializeRewards seeds every transition at BaseReward, then adds a
// depth-damped dependency_reward/(#dg_transitions·(d+1)) bonus to every
// transition that appears in the dependency graph, so shallow dependency
// edges start with the largest head start.
func (e *Engine) initializeRewards(dg *dependency.Graph) {
	e.rewards = make(map[int]float64, len(e.m.Transitions))
	for i := range e.m.Transitions {
		e.rewards[e.m.Transitions[i].ID] = e.magic.BaseReward
	}
	if dg == nil {
		return
	}
	names := dependencyTransitionNames(dg)
	ndg := float64(len(names))
	if ndg == 0 {
		return
	}
	for name, depth := range dg.TransitionDepths() {
		id, ok := e.transitionIDByName[name]
		if !ok {
			continue
		}
		e.rewards[id] += e.magic.DependencyReward / (ndg * float64(depth+1))
	}
}

// maintainRewards clamps every dependency-graph transition's reward up to at
// least DependencyReward, preventing the learner from starving it below its
// seed level.
func (e *Engine) maintainRewards(dg *dependency.Graph) {
	if dg == nil {
		return
	}
	for name := range dependencyTransitionNames(dg) {
		id, ok := e.transitionIDByName[name]
		if !ok {
			continue
		}
		if e.rewards[id] < e.magic.DependencyReward {
			e.rewards[id] = e.magic.DependencyReward
		}
	}
}

// updateRewards folds the outcome of one trace into the rewards table. An
// empty or non-positive-probability trace receives a flat -TraceReward
// penalty on every transition it contains. Otherwise, a
// log-ratio of the trace's probability against a moving average over the
// last 20% of trace history (floored at SmallestHistoryWindow) is clamped to
// [-Clamp, Clamp] and distributed across the trace's transitions.
func (e *Engine) updateRewards(ids []int, prob float64, history []float64) {
	if len(ids) == 0 || prob <= 0 {
		for _, id := range ids {
			e.rewards[id] -= e.magic.TraceReward
		}
		return
	}

	n := len(history)
	window := n / 5
	if window < e.magic.SmallestHistoryWindow {
		window = e.magic.SmallestHistoryWindow
	}
	if window > n {
		window = n
	}

	avg := prob
	if window > 0 {
		start := n - window
		var sum float64
		for _, p := range history[start:] {
			sum += p
		}
		if sum > 0 {
			avg = sum / float64(window)
		}
	}

	logRatio := math.Log(prob / avg)
	if logRatio > e.magic.Clamp {
		logRatio = e.magic.Clamp
	} else if logRatio < -e.magic.Clamp {
		logRatio = -e.magic.Clamp
	}

	delta := logRatio / float64(len(ids)) * e.magic.TraceReward
	for _, id := range ids {
		e.rewards[id] += delta
	}
}
