package bmc

import (
	"context"
	"errors"

	"github.com/ragtimer/ragtimer/model"
)

// ErrNoWitness is returned by ComputeBounds when no trajectory reaching the
// target exists within maxSteps: a step cap reached without a witness must
// surface as an error, never as fabricated bounds.
var ErrNoWitness = errors.New("bmc: no witness trajectory within step cap")

// Bounds holds the four bound values for one variable:
//   - Tight bounds are the min/max the variable actually takes along the
//     shortest trajectory that reaches the target, an exact reading.
//   - Loose bounds relax the "shortest" requirement: they report the
//     widest excursion seen across every accepting trajectory up to
//     maxSteps, so they may be looser (wider) than the tight value but
//     never tighter.
type Bounds struct {
	LooseUpper int64
	TightUpper int64
	LooseLower int64
	TightLower int64
}

// ComputeBounds finds a shortest target-reaching trajectory of m (within
// maxSteps) to derive tight bounds, then widens each variable's bound via a
// search over every accepting trajectory length up to maxSteps.
//
// Complexity: one BFS search for the witness, plus O(#variables · log(2^width))
// re-searches for the loose-bound searches.
func ComputeBounds(ctx context.Context, m *model.Model, width uint, maxSteps int) (map[int]Bounds, int, error) {
	witness, ok, err := ForwardSearch(ctx, m, width, maxSteps)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrNoWitness
	}
	k := len(witness) - 1

	accepts := func(traj Trajectory) bool {
		return m.SatisfiesTarget()(traj[len(traj)-1])
	}

	out := make(map[int]Bounds, m.NumVariables())
	hi := maskFor(width)

	for v := 0; v < m.NumVariables(); v++ {
		tightUpper, tightLower := witness[0][v], witness[0][v]
		for _, s := range witness {
			if s[v] > tightUpper {
				tightUpper = s[v]
			}
			if s[v] < tightLower {
				tightLower = s[v]
			}
		}

		looseUpper, err := maxThresholdReached(ctx, m, width, maxSteps, v, hi, accepts)
		if err != nil {
			return nil, 0, err
		}
		looseLower, err := minThresholdReached(ctx, m, width, maxSteps, v, hi, accepts)
		if err != nil {
			return nil, 0, err
		}

		out[v] = Bounds{
			LooseUpper: looseUpper,
			TightUpper: tightUpper,
			LooseLower: looseLower,
			TightLower: tightLower,
		}
	}

	return out, k, nil
}

// maxThresholdReached binary-searches the largest bound for which some
// accepting trajectory (of any length up to maxSteps) visits variable v at
// a value >= bound: an antitone predicate in bound, so the search narrows
// from hi downward.
func maxThresholdReached(ctx context.Context, m *model.Model, width uint, maxSteps int, v int, hi int64, accepts func(Trajectory) bool) (int64, error) {
	lo, top := int64(0), hi
	best := int64(0)
	for lo <= top {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		mid := lo + (top-lo)/2
		_, found, err := search(ctx, m, width, maxSteps, func(traj Trajectory) bool {
			if !accepts(traj) {
				return false
			}
			for _, s := range traj {
				if s[v] >= mid {
					return true
				}
			}
			return false
		})
		if err != nil {
			return 0, err
		}
		if found {
			best = mid
			lo = mid + 1
		} else {
			top = mid - 1
		}
	}
	return best, nil
}

// minThresholdReached binary-searches the smallest bound for which some
// accepting trajectory visits variable v at a value <= bound: a monotone
// predicate in bound, so the search narrows from 0 upward.
func minThresholdReached(ctx context.Context, m *model.Model, width uint, maxSteps int, v int, hi int64, accepts func(Trajectory) bool) (int64, error) {
	lo, top := int64(0), hi
	best := hi
	for lo <= top {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		mid := lo + (top-lo)/2
		_, found, err := search(ctx, m, width, maxSteps, func(traj Trajectory) bool {
			if !accepts(traj) {
				return false
			}
			for _, s := range traj {
				if s[v] <= mid {
					return true
				}
			}
			return false
		})
		if err != nil {
			return 0, err
		}
		if found {
			best = mid
			top = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return best, nil
}
