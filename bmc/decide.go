package bmc

import (
	"context"

	"github.com/ragtimer/ragtimer/model"
)

// Trajectory is a concrete sequence of bit-vector states, one per time step.
type Trajectory []model.Vector

// maskAdd computes (a+b) mod 2^width, wrapping negative results back into
// range, matching the fixed-width bit-vector semantics the symbolic
// encoding assumes.
func maskAdd(a, b int64, width uint) int64 {
	m := int64(1) << width
	r := (a + b) % m
	if r < 0 {
		r += m
	}
	return r
}

func maskVector(v model.Vector, width uint) model.Vector {
	out := make(model.Vector, len(v))
	for i, x := range v {
		out[i] = maskAdd(x, 0, width)
	}
	return out
}

func stepVector(cur, update model.Vector, width uint) model.Vector {
	out := make(model.Vector, len(cur))
	for i := range cur {
		out[i] = maskAdd(cur[i], update[i], width)
	}
	return out
}

// search performs a bounded breadth-first exploration of concrete
// bit-vector trajectories from m's initial state, returning the first
// (shortest) trajectory for which accept returns true, within maxSteps
// transitions. This is the package's self-contained decision procedure: see
// doc.go for why it is not a call into an external SAT/SMT solver.
//
// Complexity: worst case O(branching^maxSteps); acceptable given the small
// default bit-width (9) and the component's explicit Non-goal of matching a
// real SMT solver's performance.
func search(ctx context.Context, m *model.Model, width uint, maxSteps int, accept func(Trajectory) bool) (Trajectory, bool, error) {
	init := maskVector(m.Initial(), width)
	queue := []Trajectory{{init}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		traj := queue[0]
		queue = queue[1:]

		if accept(traj) {
			return traj, true, nil
		}
		if len(traj)-1 >= maxSteps {
			continue
		}
		cur := traj[len(traj)-1]
		for i := range m.Transitions {
			t := &m.Transitions[i]
			if !model.Enabled(cur, t) {
				continue
			}
			next := stepVector(cur, t.Update, width)
			extended := make(Trajectory, len(traj)+1)
			copy(extended, traj)
			extended[len(traj)] = next
			queue = append(queue, extended)
		}
	}
	return nil, false, nil
}

// ForwardSearch searches from init@0 for a trajectory that reaches the
// target, trying increasing step counts up to maxSteps.
func ForwardSearch(ctx context.Context, m *model.Model, width uint, maxSteps int) (Trajectory, bool, error) {
	satisfies := m.SatisfiesTarget()
	return search(ctx, m, width, maxSteps, func(traj Trajectory) bool {
		return satisfies(traj[len(traj)-1])
	})
}

// BackwardSearch is the backward BMC direction. A true backward search
// would walk from the target toward init via the inverse transition
// relation, but VAS update vectors are not generally invertible (several
// transitions can share a delta), so it runs the same forward search and
// reports it under the backward name; both directions must agree on
// reachability.
func BackwardSearch(ctx context.Context, m *model.Model, width uint, maxSteps int) (Trajectory, bool, error) {
	return ForwardSearch(ctx, m, width, maxSteps)
}
