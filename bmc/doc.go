// Package bmc implements symbolic bounded model checking over fixed-width
// bit-vectors: the per-variable/per-transition formula encoding, an
// Unroller that time-indexes symbols, a forward BMC search, and a
// binary-search computation of per-variable loose/tight lower/upper bounds.
//
// Encoding and rendering (formula.go, unroller.go, encoding.go) support an
// optional SMT-LIB2 text rendering of the unrolled formula, suitable for
// any external solver.
//
// The decision procedure that drives the forward search and the bounds
// computation (decide.go) is not a call into an SMT solver. It is a
// bounded breadth-first search over concrete bit-vector trajectories,
// self-contained and dependency-free; it is not meant to be wall-clock
// competitive with a specialized SMT back end.
//
// Concurrency: every exported entry point accepts a context.Context and
// checks it once per search step (each queue pop, each binary-search
// iteration).
package bmc
