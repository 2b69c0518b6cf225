// Package model defines the Vector Addition System (VAS) data model: variables,
// transitions, the stochastic-chemical-kinetics (SCK) rate law, the text-file
// parser, and the state trie used to intern discovered state vectors.
//
// A Model is immutable once built: Parse returns a fully populated value
// and nothing in this package ever mutates a Model's fields afterward. Mutable
// exploration state (which vectors have been discovered, what index each maps
// to) lives in StateTrie, not in Model.
//
// Complexity: Enabled and RateAt are O(#variables). Successors is
// O(#transitions · #variables).
//
// Concurrency: Model is safe for concurrent reads by multiple goroutines once
// construction has finished, since it is never mutated afterward. StateTrie is
// not safe for concurrent use; callers serialize access to it (the trace engine
// and cycle-and-commute expander both do this by construction).
//
// Errors:
//
//	ErrUnknownVariable      - a transition or target refers to an undeclared variable.
//	ErrDuplicateVariable    - a variable name is declared twice.
//	ErrDuplicateTransition  - a transition name is declared twice.
//	ErrNoActiveTransition   - a per-transition keyword appears before any "transition" line.
//	ErrUnsupportedOperator  - a target uses a relational operator other than equality.
//	ErrTargetUnset          - no target property was declared.
//	ErrInitialSatisfiesTarget - the initial state already satisfies the target.
//	ErrNonPositiveRate      - a transition's rate constant is not strictly positive.
package model
