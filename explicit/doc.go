// Package explicit implements the incrementally-grown explicit CTMC: the
// materialised finite-state Markov chain whose states are VAS vectors
// discovered during exploration and whose transitions carry stochastic-
// chemical-kinetics rates, plus one synthetic absorbing state at index 0.
//
// All mutation goes through CTMC.Intern and CTMC.FoldStep. FoldStep interns
// both endpoints of a (state, transition, next-state) step via the shared
// state trie and performs the used-rate/absorbing-placeholder ledger update
// as one atomic operation; both append transitions through one helper, so
// the transitions slice and its (from,to) index can never drift out of sync.
//
// Concurrency: CTMC is the single writer within any one component (trace
// engine, cycle-and-commute); it is not safe for concurrent mutation from
// multiple goroutines.
//
// Errors:
//
//	ErrRateInvariant - used_rate exceeded total_rate + ε for some state.
package explicit
