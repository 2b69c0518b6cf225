// Package ragtimer models Vector Addition Systems under Stochastic Chemical
// Kinetics and builds a truncated explicit CTMC from them: a dependency
// graph estimates which transitions must fire and how often, a trace engine
// generates unique terminating traces (random-dependency or reward-learning
// guided) that fold incrementally into the explicit CTMC, a cycle-and-commute
// expander enriches it with parallel interleavings and zero-sum cycles, and a
// bounded-model-checking package computes reachability witnesses and
// per-variable value bounds.
//
// Subpackages:
//
//	model/        - the VAS type, its SCK rate law, and the input parser
//	dependency/    - the heuristic dependency graph
//	explicit/      - the incrementally-grown explicit CTMC
//	trace/         - guided trace generation
//	cyclecommute/  - commute and cycle expansion
//	bmc/           - bounded model checking
//	prism/         - the PRISM explicit-model (.sta/.tra/.lab) file format
//	cmd/ragtimer/  - the CLI tying every stage together
package ragtimer
