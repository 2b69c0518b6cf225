package cyclecommute

import (
	"context"

	"github.com/ragtimer/ragtimer/explicit"
	"github.com/ragtimer/ragtimer/model"
	"github.com/rs/zerolog"
)

// Option configures an Expander before use.
type Option func(*Expander)

// WithMaxCommuteDepth sets D, the maximum commute recursion depth.
func WithMaxCommuteDepth(d int) Option {
	return func(e *Expander) { e.maxCommuteDepth = d }
}

// WithMaxCycleLength sets L, the maximum cycle length.
func WithMaxCycleLength(l int) Option {
	return func(e *Expander) { e.maxCycleLength = l }
}

// WithLogger attaches a logger for per-cycle-length outcome events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Expander) { e.logger = l }
}

// Expander is the cycle-and-commute expander. The zero value is not usable;
// construct with New.
type Expander struct {
	m    *model.Model
	ctmc *explicit.CTMC

	maxCommuteDepth int
	maxCycleLength  int
	logger          zerolog.Logger

	transitionByID map[int]*model.Transition
}

// New constructs an Expander over ctmc with the defaults maxCommuteDepth=1,
// maxCycleLength=2.
func New(m *model.Model, ctmc *explicit.CTMC, opts ...Option) *Expander {
	e := &Expander{
		m:               m,
		ctmc:            ctmc,
		maxCommuteDepth: 1,
		maxCycleLength:  2,
		logger:          zerolog.Nop(),
		transitionByID:  make(map[int]*model.Transition, len(m.Transitions)),
	}
	for i := range m.Transitions {
		e.transitionByID[m.Transitions[i].ID] = &m.Transitions[i]
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand runs commute over every trace, then cycles over the whole explicit
// CTMC: commute always precedes cycles.
func (e *Expander) Expand(ctx context.Context, traces [][]int) error {
	if err := e.ExpandCommute(ctx, traces); err != nil {
		return err
	}
	return e.ExpandCycles(ctx)
}

// statesAlongTrace returns the len(trace)+1 states visited when firing trace
// from the model's initial state.
func (e *Expander) statesAlongTrace(trace []int) []model.Vector {
	states := make([]model.Vector, 0, len(trace)+1)
	cur := e.m.Initial()
	states = append(states, cur)
	for _, id := range trace {
		t := e.transitionByID[id]
		cur = cur.Add(t.Update)
		states = append(states, cur)
	}
	return states
}

// universallyEnabled returns the indices into e.m.Transitions enabled at
// every one of the given states.
func universallyEnabled(m *model.Model, states []model.Vector) []int {
	if len(states) == 0 {
		return nil
	}
	enabled := make([]bool, len(m.Transitions))
	for i := range enabled {
		enabled[i] = true
	}
	for _, s := range states {
		for i := range m.Transitions {
			if enabled[i] && !model.Enabled(s, &m.Transitions[i]) {
				enabled[i] = false
			}
		}
	}
	var out []int
	for i, ok := range enabled {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// ExpandCommute enriches the explicit CTMC with commuted interleavings of
// each given trace, up to maxCommuteDepth.
func (e *Expander) ExpandCommute(ctx context.Context, traces [][]int) error {
	for _, trace := range traces {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.commute(trace, 1); err != nil {
			return err
		}
	}
	return nil
}

func (e *Expander) commute(trace []int, depth int) error {
	if depth > e.maxCommuteDepth || len(trace) == 0 {
		return nil
	}
	states := e.statesAlongTrace(trace)
	universal := universallyEnabled(e.m, states)
	if len(universal) == 0 {
		return nil
	}

	var parallelTraces [][]int
	for i, transID := range trace {
		preState := states[i]
		original := e.transitionByID[transID]

		for _, c := range universal {
			ct := &e.m.Transitions[c]
			if ct.ID == transID {
				continue
			}

			vertical := preState.Add(ct.Update)
			if _, _, err := e.ctmc.FoldStep(preState, ct, vertical); err != nil {
				return err
			}

			// The commutable may have consumed something the original step
			// needs; skip this interleaving rather than materialise a
			// transition at a state where it is not enabled.
			if !model.Enabled(vertical, original) {
				continue
			}
			horizontal := vertical.Add(original.Update)
			if _, _, err := e.ctmc.FoldStep(vertical, original, horizontal); err != nil {
				return err
			}

			parallel := make([]int, 0, len(trace)+1)
			parallel = append(parallel, trace[:i]...)
			parallel = append(parallel, ct.ID)
			parallel = append(parallel, trace[i:]...)
			parallelTraces = append(parallelTraces, parallel)
		}
	}

	for _, pt := range parallelTraces {
		if err := e.commute(pt, depth+1); err != nil {
			return err
		}
	}
	return nil
}
