// Package cyclecommute implements the cycle-and-commute expander: given a
// set of already-discovered traces and the explicit CTMC they produced, it
// enriches the explored region with concurrently-enabled interleavings
// (commute) and closed cycles (cycles) up to user-chosen bounds, while
// keeping every added transition's rate exact.
//
// Commute inserts a universally-enabled transition at each position of a
// trace and fires the displaced step from the new intermediate state, so
// every added edge corresponds to an actually-enabled firing at its own
// pre-state. Cycles enumerates transition multisets whose update vectors
// sum to zero and fires each distinct permutation from every explored
// state that can sustain it.
//
// Concurrency: Expander is the single writer of its underlying explicit.CTMC
// for the duration of one Expand call.
package cyclecommute
