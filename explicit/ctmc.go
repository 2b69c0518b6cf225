package explicit

import (
	"errors"
	"fmt"

	"github.com/ragtimer/ragtimer/model"
)

// Eps is the floating-point tolerance used by the used_rate/total_rate
// invariant.
const Eps = 1e-6

// AbsorbingIndex is the reserved index of the synthetic absorbing state.
const AbsorbingIndex = 0

// InitialIndex is the index the initial state is guaranteed to occupy.
const InitialIndex = 1

// absorbingSourceID marks an absorbing-placeholder transition; it never
// corresponds to a real model transition id.
const absorbingSourceID = -1

// ErrRateInvariant reports that used_rate exceeded total_rate + Eps for some
// state.
var ErrRateInvariant = errors.New("explicit: used_rate exceeds total_rate")

// RateInvariantError identifies the state whose used rate exceeded its
// total. It unwraps to ErrRateInvariant.
type RateInvariantError struct {
	State       int
	Used, Total float64
}

func (e *RateInvariantError) Error() string {
	return fmt.Sprintf("explicit: state %d: used_rate %.9g exceeds total_rate %.9g",
		e.State, e.Used, e.Total)
}

func (e *RateInvariantError) Unwrap() error { return ErrRateInvariant }

// State is one explicit CTMC state.
type State struct {
	Vector    model.Vector
	Label     string // "init", "absorbing", "target", or ""
	TotalRate float64
	UsedRate  float64
}

// Transition is one explicit CTMC transition.
type Transition struct {
	From, To           int
	Rate               float64
	SourceTransitionID int
}

// CTMC is the explicit, incrementally-grown Markov chain. The zero value is
// not usable; construct with New.
type CTMC struct {
	m    *model.Model
	trie *model.StateTrie

	states      []State
	transitions []Transition

	transitionMap map[[2]int]int // (from,to) -> index into transitions
	absorbingIdx  map[int]int    // state index -> index into transitions of its absorbing placeholder, or -1
}

// New constructs a CTMC for m with the absorbing state pre-seeded at index 0
// and the initial state pre-seeded at index 1.
func New(m *model.Model) *CTMC {
	c := &CTMC{
		m:             m,
		trie:          model.NewStateTrie(),
		transitionMap: map[[2]int]int{},
		absorbingIdx:  map[int]int{},
	}

	absorbingVector := make(model.Vector, m.NumVariables())
	for i := range absorbingVector {
		absorbingVector[i] = -1
	}
	c.states = append(c.states, State{Vector: absorbingVector, Label: "absorbing"})
	c.absorbingIdx[AbsorbingIndex] = -1

	c.internLabeled(m.Initial(), "init")
	return c
}

// Model returns the underlying VAS model.
func (c *CTMC) Model() *model.Model { return c.m }

// States returns the explicit states discovered so far, indexed by
// explicit-state index.
func (c *CTMC) States() []State { return c.states }

// Transitions returns the explicit transitions discovered so far.
func (c *CTMC) Transitions() []Transition { return c.transitions }

// Intern returns v's explicit-state index, creating a new state if v has not
// been seen before.
func (c *CTMC) Intern(v model.Vector) int {
	return c.internLabeled(v, "")
}

func (c *CTMC) internLabeled(v model.Vector, label string) int {
	candidate := len(c.states)
	idx, existed := c.trie.InsertIfNotExists(v, candidate)
	if existed {
		return idx
	}
	c.newState(v, label)
	return idx
}

func (c *CTMC) newState(v model.Vector, label string) {
	total := c.m.TotalOutgoingRate(v)
	idx := len(c.states)
	c.states = append(c.states, State{Vector: v, Label: label, TotalRate: total})
	if total > 0 {
		absTxIdx := c.appendTransition(idx, AbsorbingIndex, total, absorbingSourceID)
		c.absorbingIdx[idx] = absTxIdx
	} else {
		c.absorbingIdx[idx] = -1
	}
}

func (c *CTMC) appendTransition(from, to int, rate float64, sourceTransitionID int) int {
	idx := len(c.transitions)
	c.transitions = append(c.transitions, Transition{From: from, To: to, Rate: rate, SourceTransitionID: sourceTransitionID})
	c.transitionMap[[2]int{from, to}] = idx
	return idx
}

// HasTransition reports whether a transition from -> to already exists.
func (c *CTMC) HasTransition(from, to int) bool {
	_, ok := c.transitionMap[[2]int{from, to}]
	return ok
}

// FoldStep interns fromVec and toVec and, if no transition yet exists
// between their explicit indices, materialises one at t's SCK rate at
// fromVec, decrementing the from-state's absorbing placeholder by the same
// amount. It is idempotent: a revisit of an already-materialised (from,to)
// pair is a no-op.
//
// Complexity: O(#variables) (state interning) + O(#transitions ·
// #variables) (total-rate computation, only on first visit to a state).
func (c *CTMC) FoldStep(fromVec model.Vector, t *model.Transition, toVec model.Vector) (fromIdx, toIdx int, err error) {
	fromIdx = c.Intern(fromVec)
	toIdx = c.Intern(toVec)

	if c.HasTransition(fromIdx, toIdx) {
		return fromIdx, toIdx, nil
	}

	rate, ok := model.RateAt(fromVec, t)
	if !ok {
		return fromIdx, toIdx, fmt.Errorf("explicit: transition %q not enabled at its own pre-step state", t.Name)
	}

	c.appendTransition(fromIdx, toIdx, rate, t.ID)
	c.states[fromIdx].UsedRate += rate
	if absTxIdx, ok := c.absorbingIdx[fromIdx]; ok && absTxIdx >= 0 {
		c.transitions[absTxIdx].Rate -= rate
	}
	return fromIdx, toIdx, nil
}

// SealAbsorbing checks, for every non-absorbing state, that used_rate ≤
// total_rate + Eps, and reports ErrRateInvariant identifying the offending
// state otherwise. It is idempotent: the absorbing placeholder rate is
// maintained as a derived total−used value on every FoldStep, so sealing
// never needs to materialise anything new.
func (c *CTMC) SealAbsorbing() error {
	for i := 1; i < len(c.states); i++ {
		s := &c.states[i]
		if s.UsedRate > s.TotalRate+Eps {
			return &RateInvariantError{State: i, Used: s.UsedRate, Total: s.TotalRate}
		}
	}
	return nil
}

// EmittedTransitions returns the transitions as they appear in emitted
// output: every materialised transition, plus each state's absorbing
// placeholder only while its residual rate is still positive. A placeholder
// whose residual has been fully consumed is omitted.
func (c *CTMC) EmittedTransitions() []Transition {
	out := make([]Transition, 0, len(c.transitions))
	for _, t := range c.transitions {
		if t.SourceTransitionID == absorbingSourceID && t.Rate < Eps {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Outgoing returns the indices into Transitions() of every transition
// leaving state index stateIdx.
//
// Complexity: O(#transitions) (linear scan; acceptable given the explicit
// CTMC is itself bounded by trace/cycle generation budgets, not by the full
// reachable state space).
func (c *CTMC) Outgoing(stateIdx int) []int {
	var out []int
	for i, tr := range c.transitions {
		if tr.From == stateIdx {
			out = append(out, i)
		}
	}
	return out
}

// AbsorbingRate returns the current rate of stateIdx's absorbing placeholder
// transition (0 if the state has no outgoing rate at all).
func (c *CTMC) AbsorbingRate(stateIdx int) float64 {
	idx, ok := c.absorbingIdx[stateIdx]
	if !ok || idx < 0 {
		return 0
	}
	return c.transitions[idx].Rate
}
