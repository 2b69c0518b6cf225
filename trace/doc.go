// Package trace implements the trace-generation engine: its two variants
// (reward-learning and random-dependency), the trace-trie deduplication of
// generated transition-id sequences, and the fold of accepted traces into an
// explicit.CTMC.
//
// Both variants share a common trace-generation skeleton parameterized by a
// pick function; only the per-step selection rule differs between them.
//
// The random source is an injected dependency (an *rand.Rand passed via
// WithRNG), not a process-global: this makes trace generation deterministic
// and therefore testable.
//
// Concurrency: Engine is not safe for concurrent use; it owns the rewards
// map and the trace trie for the duration of one run.
package trace
