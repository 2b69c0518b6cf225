package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the model package. Error message strings follow the
// "model: message" convention used throughout this module.
var (
	ErrUnknownVariable        = errors.New("model: unknown variable")
	ErrDuplicateVariable      = errors.New("model: duplicate variable declaration")
	ErrDuplicateTransition    = errors.New("model: duplicate transition name")
	ErrNoActiveTransition     = errors.New("model: no active transition for this keyword")
	ErrUnsupportedOperator    = errors.New("model: unsupported relational operator")
	ErrTargetUnset            = errors.New("model: target property not declared")
	ErrInitialSatisfiesTarget = errors.New("model: initial state already satisfies target")
	ErrNonPositiveRate        = errors.New("model: rate constant must be strictly positive")
	ErrDimensionMismatch      = errors.New("model: vector length does not match variable count")
)

// Vector is a VAS state, or an update/bounds vector over the same variable
// ordering as Model.Variables. Its length always equals the model's variable
// count for vectors that participate in enabledness/update computations.
type Vector []int64

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Equal reports whether v and other have identical length and elements.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// GreaterEqual reports whether v ≥ bound elementwise, the enabledness predicate.
func (v Vector) GreaterEqual(bound Vector) bool {
	for i := range bound {
		if v[i] < bound[i] {
			return false
		}
	}
	return true
}

// Add returns v + delta elementwise, allocating a new Vector.
func (v Vector) Add(delta Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + delta[i]
	}
	return out
}

// Operator is a target-property relational operator as parsed from the input
// model file. Every value other than OpEqual is parsed but rejected at
// Parse time (see ErrUnsupportedOperator): only equality is honoured
// downstream, and silently mishandling a comparison operator would
// misrepresent the checked property.
type Operator int

const (
	OpEqual Operator = iota
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual
	OpNotEqual
)

// Variable is a declared VAS variable: its name and its position in every
// Vector for this Model.
type Variable struct {
	Name  string
	Index int
}

// Transition is a single VAS transition: an update vector, an enabled-bounds
// vector, and a rate constant under the SCK rate law (see RateAt).
type Transition struct {
	ID           int
	Name         string
	Update       Vector
	EnabledBound Vector
	Rate         float64
}

// Target is the single property this Model is analysed against: the
// proposition "Variables[Variable].Name == Value".
type Target struct {
	Variable int
	Operator Operator
	Value    int64
}

// Model is the immutable VAS: variables, transitions, initial state(s), and
// target property. InitialStates is a slice because the data model allows
// multiple initial states, but every operation in this module uses
// InitialStates[0]; multi-initial support is reserved.
type Model struct {
	Variables     []Variable
	InitialStates []Vector
	Transitions   []Transition
	Target        Target
}

// Validate checks the structural invariants every Model must satisfy: each
// transition's update and enabled-bound vectors match the variable count,
// enabled bounds are non-negative, rate constants are strictly positive,
// and the target variable index is in range. Parse always returns a valid
// Model; hand-built Models should be validated before use.
func (m *Model) Validate() error {
	nvars := len(m.Variables)
	for i := range m.Transitions {
		t := &m.Transitions[i]
		if len(t.Update) != nvars || len(t.EnabledBound) != nvars {
			return fmt.Errorf("model: transition <%s>: %w", t.Name, ErrDimensionMismatch)
		}
		for _, b := range t.EnabledBound {
			if b < 0 {
				return fmt.Errorf("model: transition <%s>: negative enabled bound", t.Name)
			}
		}
		if t.Rate <= 0 {
			return fmt.Errorf("model: transition <%s>: %w", t.Name, ErrNonPositiveRate)
		}
	}
	for _, init := range m.InitialStates {
		if len(init) != nvars {
			return fmt.Errorf("model: initial state: %w", ErrDimensionMismatch)
		}
	}
	if m.Target.Variable < 0 || m.Target.Variable >= nvars {
		return fmt.Errorf("model: target variable index %d out of range", m.Target.Variable)
	}
	return nil
}

// Initial returns the model's (sole, in practice) initial state vector.
func (m *Model) Initial() Vector {
	return m.InitialStates[0]
}

// NumVariables returns the number of declared variables.
func (m *Model) NumVariables() int {
	return len(m.Variables)
}

// SatisfiesTarget reports whether state s satisfies the model's target
// property. Only equality is implemented; Parse rejects every other operator.
func (m *Model) SatisfiesTarget() func(s Vector) bool {
	idx := m.Target.Variable
	val := m.Target.Value
	return func(s Vector) bool { return s[idx] == val }
}
