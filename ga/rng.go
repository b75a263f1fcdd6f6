// Package ga - RNG utilities shared by the search loop and the strategies.
//
// Goals:
//   - Determinism: same seed ⇒ identical chromosomes, fitness and records.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every SearchLoop owns its stream;
//     units running in parallel get independent seeds via DeriveSeed.
package ga

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed, so that batch units without an explicit seed still get distinct,
// reproducible streams.
//
// SplitMix64 finalizer constants.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// pick returns a uniformly chosen element of s; s must be non-empty.
func pick(s []int, rng *rand.Rand) int {
	return s[rng.Intn(len(s))]
}
