// Package tsp — memetic search: the genetic engine with a bounded 2-opt
// refinement applied to every offspring. This is the laboratory's custom
// engine; it shares the GA contract and differs only in the per-offspring
// local-search step.
package tsp

import "math/rand"

// MemeticConfig parameterizes Memetic.
type MemeticConfig struct {
	// GA is the underlying genetic configuration.
	GA GAConfig
	// RefineMaxMoves caps accepted 2-opt moves per offspring (≥ 1). The cap
	// keeps generation cost bounded: offspring are polished, not optimized
	// to their local optimum.
	RefineMaxMoves int
}

// Memetic runs the hybrid engine and returns the best tour ever seen, its
// length, and the number of generations executed.
func Memetic(m *Matrix, cfg MemeticConfig, rng *rand.Rand) ([]int, float64, int, error) {
	refine := func(tour []int, length float64) float64 {
		return twoOptRefine(m, tour, length, cfg.RefineMaxMoves)
	}
	return evolve(m, cfg.GA, rng, refine)
}

// twoOptRefine runs first-improvement 2-opt on tour in place, accepting at
// most maxMoves improving reversals, and returns the resulting length.
//
// Complexity: O(maxMoves · n²) worst case; each accepted move is O(n).
func twoOptRefine(m *Matrix, tour []int, length float64, maxMoves int) float64 {
	var (
		n        = len(tour)
		accepted int
		i, j     int
		d        float64
	)
	for accepted < maxMoves {
		improved := false
		for i = 0; i < n-1 && !improved; i++ {
			for j = i + 1; j < n; j++ {
				mv := Move{Kind: MoveReverse, I: i, J: j}
				d = reverseDelta(m, tour, i, j, n)
				if d < -deltaEps {
					mv.Apply(tour)
					length += d
					accepted++
					improved = true
					break // first improvement: restart the scan
				}
			}
		}
		if !improved {
			break // local optimum
		}
	}
	return length
}
