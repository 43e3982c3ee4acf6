// Package tsp — genetic search.
//
// The population is a fixed-capacity arena: two backing arrays of popsize
// tours are swapped between generations, so the population never grows or
// shrinks and no per-generation allocation occurs. Fitness is the tour
// length (lower is better). The best individual ever seen is tracked for
// reporting regardless of the replacement policy.
package tsp

import (
	"math/rand"
	"sort"
)

// Replacement names the offspring-population construction methods.
type Replacement uint8

const (
	// RepGenerational replaces the whole population with offspring.
	RepGenerational Replacement = iota
	// RepElitist copies the Elite best parents verbatim, then fills with offspring.
	RepElitist
	// RepSteadyState inserts each offspring only if it beats the current worst.
	RepSteadyState
)

// GAConfig parameterizes Evolve.
type GAConfig struct {
	// Population is the constant population size (≥ 2).
	Population int
	// Generations caps the number of generations (≥ 1).
	Generations int
	// MaxNoImprove stops the run after this many generations without a new
	// best-ever individual; 0 disables the stagnation stop.
	MaxNoImprove int

	// Selection picks the parent-selection method.
	Selection Selection
	// TournamentSize is the draw count for SelTournament (≥ 2).
	TournamentSize int

	// Crossover picks the recombination operator.
	Crossover Crossover
	// CrossoverRate is the probability a parent pair recombines; otherwise
	// the offspring are plain copies of the parents. In [0,1].
	CrossoverRate float64

	// Replacement picks the next-generation construction method.
	Replacement Replacement
	// Elite is the number of best parents preserved by RepElitist (≥ 1 when used).
	Elite int

	// MutationKind is the move kind applied by mutation.
	MutationKind MoveKind
	// MutationRate is the per-offspring probability of one random move. In [0,1].
	MutationRate float64
}

// refineFunc optionally post-processes an offspring in place, returning the
// new length. The memetic engine plugs a bounded 2-opt descent in here; plain
// GA passes nil.
type refineFunc func(tour []int, length float64) float64

// Evolve runs the genetic engine and returns the best tour ever seen, its
// length, and the number of generations executed.
func Evolve(m *Matrix, cfg GAConfig, rng *rand.Rand) ([]int, float64, int, error) {
	return evolve(m, cfg, rng, nil)
}

func evolve(m *Matrix, cfg GAConfig, rng *rand.Rand, refine refineFunc) ([]int, float64, int, error) {
	var (
		n       = m.Size()
		popSize = cfg.Population
	)

	makeArena := func() [][]int {
		backing := make([]int, popSize*n)
		tours := make([][]int, popSize)
		for i := 0; i < popSize; i++ {
			tours[i] = backing[i*n : (i+1)*n]
		}
		return tours
	}

	var (
		popA  = makeArena()
		popB  = makeArena()
		lensA = make([]float64, popSize)
		lensB = make([]float64, popSize)
	)

	// Initial population: random permutations.
	for i := 0; i < popSize; i++ {
		copy(popA[i], RandomTour(n, rng))
		lensA[i] = m.tourLength(popA[i])
	}

	var (
		best    = make([]int, n)
		bestLen = lensA[0]
	)
	copy(best, popA[0])
	for i := 1; i < popSize; i++ {
		if lensA[i] < bestLen {
			bestLen = lensA[i]
			copy(best, popA[i])
		}
	}

	var (
		sel         = &selector{method: cfg.Selection, tsize: cfg.TournamentSize}
		scratch     = make([]int, n) // second child when only one slot remains
		order       = make([]int, popSize)
		generations int
		noImprove   int
		gen         int
	)

	// produce fills child from parents popA[p1], popA[p2] (first of the pair)
	// applying crossover, mutation, and the optional refinement, and returns
	// the child's length. Updates best-ever.
	finishChild := func(child []int, length float64) float64 {
		if rng.Float64() < cfg.MutationRate {
			mv := RandomMove(cfg.MutationKind, n, rng)
			length += mv.Delta(m, child)
			mv.Apply(child)
		}
		if refine != nil {
			length = refine(child, length)
		}
		if length < bestLen {
			bestLen = length
			copy(best, child)
		}
		return length
	}

	for gen = 0; gen < cfg.Generations; gen++ {
		generations = gen + 1
		sel.prepare(lensA)
		improvedBefore := bestLen

		if cfg.Replacement == RepSteadyState {
			// popSize offspring per generation; each enters only by beating
			// the current worst individual.
			for k := 0; k < popSize; k++ {
				p1 := sel.pick(rng)
				p2 := sel.pick(rng)
				if popSize > 1 {
					for p2 == p1 {
						p2 = sel.pick(rng)
					}
				}
				child := scratch
				if rng.Float64() < cfg.CrossoverRate {
					crossoverPair(cfg.Crossover, popA[p1], popA[p2], child, popB[0], rng)
				} else {
					copy(child, popA[p1])
				}
				childLen := finishChild(child, m.tourLength(child))

				worst := 0
				for i := 1; i < popSize; i++ {
					if lensA[i] > lensA[worst] {
						worst = i
					}
				}
				if childLen < lensA[worst] {
					copy(popA[worst], child)
					lensA[worst] = childLen
				}
			}
		} else {
			write := 0

			if cfg.Replacement == RepElitist {
				for i := range order {
					order[i] = i
				}
				sort.Slice(order, func(a, b int) bool { return lensA[order[a]] < lensA[order[b]] })
				for e := 0; e < cfg.Elite && write < popSize; e++ {
					src := order[e]
					copy(popB[write], popA[src])
					lensB[write] = lensA[src]
					write++
				}
			}

			for write < popSize {
				p1 := sel.pick(rng)
				p2 := sel.pick(rng)
				if popSize > 1 {
					for p2 == p1 {
						p2 = sel.pick(rng)
					}
				}

				child1 := popB[write]
				hasSecond := write+1 < popSize
				child2 := scratch
				if hasSecond {
					child2 = popB[write+1]
				}

				if rng.Float64() < cfg.CrossoverRate {
					crossoverPair(cfg.Crossover, popA[p1], popA[p2], child1, child2, rng)
				} else {
					copy(child1, popA[p1])
					copy(child2, popA[p2])
				}

				lensB[write] = finishChild(child1, m.tourLength(child1))
				write++
				if hasSecond {
					lensB[write] = finishChild(child2, m.tourLength(child2))
					write++
				}
			}

			popA, popB = popB, popA
			lensA, lensB = lensB, lensA
		}

		if bestLen < improvedBefore {
			noImprove = 0
		} else {
			noImprove++
			if cfg.MaxNoImprove > 0 && noImprove >= cfg.MaxNoImprove {
				break
			}
		}
	}

	if err := ValidateTour(best, n); err != nil {
		return nil, 0, 0, err
	}
	return best, round1e9(bestLen), generations, nil
}
