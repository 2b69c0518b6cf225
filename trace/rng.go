package trace

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when callers pass seed==0,
// so the zero value never selects a nondeterministic source.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 selects
// defaultRNGSeed so that the zero value of Option never produces a
// nondeterministic engine.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
