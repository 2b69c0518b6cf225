// Package dependency builds a heuristic structural witness, the dependency
// graph, of which transitions must fire, and how many times, to carry a VAS
// model from its initial state to its target property.
//
// The graph need not be sound or complete for reachability: it seeds reward
// shaping in package trace and drives model trimming (Trim), which shrinks
// a model to the variables and transitions the graph references. It is stored as
// an arena (a flat []Node slice with children as index lists and the
// ancestor transition names of each path as a set) rather than an owning
// tree with parent back-pointers: this
// keeps deduplication trivial and recursion cheap.
//
// Concurrency: Graph is immutable after Build returns and is safe for
// concurrent reads.
package dependency
