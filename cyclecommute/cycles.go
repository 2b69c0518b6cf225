package cyclecommute

import (
	"context"

	"github.com/ragtimer/ragtimer/explicit"
	"github.com/ragtimer/ragtimer/model"
)

// isZeroSumCycle reports whether the elementwise sum of the member
// transitions' update vectors is exactly zero: firing the whole multiset
// returns the system to its starting state.
func isZeroSumCycle(m *model.Model, multiset []int) bool {
	nvars := m.NumVariables()
	sum := make(model.Vector, nvars)
	for _, idx := range multiset {
		t := &m.Transitions[idx]
		for i := 0; i < nvars; i++ {
			sum[i] += t.Update[i]
		}
	}
	for _, v := range sum {
		if v != 0 {
			return false
		}
	}
	return true
}

// preEnabled reports whether firing perm step-by-step from s never drives
// any variable negative, by computing the running prefix sum of update
// vectors and requiring s + min_i(prefix_i) ≥ 0 elementwise. This is a
// necessary pre-check, cheaper than actually firing.
func preEnabled(m *model.Model, s model.Vector, perm []int) bool {
	nvars := len(s)
	prefix := make(model.Vector, nvars)
	minPrefix := make(model.Vector, nvars)
	for _, idx := range perm {
		t := &m.Transitions[idx]
		for i := 0; i < nvars; i++ {
			prefix[i] += t.Update[i]
			if prefix[i] < minPrefix[i] {
				minPrefix[i] = prefix[i]
			}
		}
	}
	for i := 0; i < nvars; i++ {
		if s[i]+minPrefix[i] < 0 {
			return false
		}
	}
	return true
}

// ExpandCycles enumerates cycles of length L down to 2 and, for every
// pre-enabled permutation and every non-absorbing state present in the
// explicit CTMC at the time ExpandCycles begins, fires the permutation
// step-by-step, interning new states and adding new transitions at their own
// pre-state SCK rates.
//
// Only states present at the start of the call are used as firing origins:
// states discovered while firing cycles are added to the CTMC (so later
// analyses see them) but are not themselves re-examined as cycle origins in
// the same call, bounding the work to the explored region at call time.
func (e *Expander) ExpandCycles(ctx context.Context) error {
	n := len(e.m.Transitions)
	originalStateCount := len(e.ctmc.States())

	for length := e.maxCycleLength; length >= 2; length-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		found := false
		for _, multiset := range combinationsWithReplacement(n, length) {
			if !isZeroSumCycle(e.m, multiset) {
				continue
			}
			for _, perm := range distinctPermutations(multiset) {
				for stateIdx := explicit.InitialIndex; stateIdx < originalStateCount; stateIdx++ {
					s := e.ctmc.States()[stateIdx].Vector
					if !preEnabled(e.m, s, perm) {
						continue
					}
					if err := e.fireCyclePermutation(stateIdx, perm); err != nil {
						return err
					}
					found = true
				}
			}
		}
		if !found {
			e.logger.Info().Int("cycle_length", length).Msg("no cycles found at this length")
		}
	}
	return nil
}

// fireCyclePermutation fires perm step-by-step from stateIdx's vector. The
// prefix-sum pre-check is necessary but not sufficient (an enabled bound can
// exceed a transition's net consumption), so each step re-checks real
// enabledness and abandons the rest of the permutation when it fails; the
// steps already folded stay, each having been enabled at its own pre-state.
func (e *Expander) fireCyclePermutation(stateIdx int, perm []int) error {
	curVec := e.ctmc.States()[stateIdx].Vector
	for _, idx := range perm {
		t := &e.m.Transitions[idx]
		if !model.Enabled(curVec, t) {
			return nil
		}
		next := curVec.Add(t.Update)
		if _, _, err := e.ctmc.FoldStep(curVec, t, next); err != nil {
			return err
		}
		curVec = next
	}
	return nil
}
