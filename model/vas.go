package model

// Enabled reports whether transition t is enabled at state s, the elementwise
// s ≥ t.EnabledBound rule.
//
// Complexity: O(#variables).
func Enabled(s Vector, t *Transition) bool {
	return s.GreaterEqual(t.EnabledBound)
}

// RateAt returns the SCK rate of transition t at state s and true, or (0,
// false) if t is not enabled at s. Under SCK, the rate is the rate constant
// times the product of s[i] for every variable i with a positive enabled
// bound.
//
// Complexity: O(#variables).
func RateAt(s Vector, t *Transition) (float64, bool) {
	if !Enabled(s, t) {
		return 0, false
	}
	rate := t.Rate
	for i, bound := range t.EnabledBound {
		if bound > 0 {
			rate *= float64(s[i])
		}
	}
	return rate, true
}

// Successor is one (next-state, rate, transition) outcome from Successors.
type Successor struct {
	Next       Vector
	Rate       float64
	Transition *Transition
}

// Successors returns every enabled transition at s paired with its resulting
// state and SCK rate.
//
// Complexity: O(#transitions · #variables).
func (m *Model) Successors(s Vector) []Successor {
	out := make([]Successor, 0, len(m.Transitions))
	for i := range m.Transitions {
		t := &m.Transitions[i]
		rate, ok := RateAt(s, t)
		if !ok {
			continue
		}
		out = append(out, Successor{Next: s.Add(t.Update), Rate: rate, Transition: t})
	}
	return out
}

// TotalOutgoingRate returns the sum of SCK rates of every transition enabled
// at s. Computed once per explicit state by the trace engine and never
// mutated afterward.
//
// Complexity: O(#transitions · #variables).
func (m *Model) TotalOutgoingRate(s Vector) float64 {
	var total float64
	for i := range m.Transitions {
		if rate, ok := RateAt(s, &m.Transitions[i]); ok {
			total += rate
		}
	}
	return total
}

// EnabledTransitions returns the indices into m.Transitions of every
// transition enabled at s, in declaration order.
//
// Complexity: O(#transitions · #variables).
func (m *Model) EnabledTransitions(s Vector) []int {
	out := make([]int, 0, len(m.Transitions))
	for i := range m.Transitions {
		if Enabled(s, &m.Transitions[i]) {
			out = append(out, i)
		}
	}
	return out
}
