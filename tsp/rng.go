// Package tsp — deterministic random generation shared by all engines.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Independence: DeriveSeed produces decorrelated per-trial streams so
//     repeated runs of one configuration are independently random yet
//     reproducible from a single base seed.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. Each engine run owns its
// own *rand.Rand; parallel trials must derive one stream per trial.
package tsp

import "math/rand"

// defaultSeed is the fixed seed substituted when callers pass seed==0, so a
// zero-valued configuration stays deterministic instead of silently sharing
// global state.
const defaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for the given seed.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014). Small input changes
// produce large, well-distributed output changes, which keeps per-trial
// streams decorrelated even for consecutive stream ids.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
