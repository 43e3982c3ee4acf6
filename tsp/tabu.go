// Package tsp — tabu search.
//
// Each iteration scans the full (or sampled) neighborhood, skips moves whose
// signature sits in the tabu list unless the aspiration rule fires (the move
// would yield a new global best), and applies the best admissible move even
// when it worsens the current tour; that is how the search escapes local
// optima. The undo signature of the applied move is then pushed onto a
// fixed-capacity FIFO list, evicting the oldest entry on overflow, which
// forbids immediately reverting the move for exactly `tenure` iterations.
package tsp

import "math/rand"

// TabuConfig parameterizes TabuSearch.
type TabuConfig struct {
	// Tenure is the tabu list capacity (≥ 1).
	Tenure int
	// MaxIters caps the number of iterations (≥ 1).
	MaxIters int
	// MaxNoImprove stops the run after this many iterations without a new
	// global best; 0 disables the stagnation stop.
	MaxNoImprove int
	// Kind is the neighborhood move kind.
	Kind MoveKind
	// MaxCandidates, when > 0, samples that many unique moves per iteration
	// instead of scanning the full neighborhood (runtime control on large n).
	MaxCandidates int
}

// TabuSearch runs tabu search from initial (nil ⇒ a random tour drawn from
// rng; rng is also used for candidate sampling). Returns the best tour seen,
// its length, and the number of iterations performed.
func TabuSearch(m *Matrix, cfg TabuConfig, initial []int, rng *rand.Rand) ([]int, float64, int, error) {
	n := m.Size()

	var cur []int
	if initial == nil {
		cur = RandomTour(n, rng)
	} else {
		if err := ValidateTour(initial, n); err != nil {
			return nil, 0, 0, err
		}
		cur = CopyTour(initial)
	}

	var (
		curLen  = m.tourLength(cur)
		best    = CopyTour(cur)
		bestLen = curLen

		list       = newTabuList(cfg.Tenure)
		noImprove  int
		iterations int

		candidates []Move
		k          int
		d          float64
		candLen    float64
		chosen     int
		chosenLen  float64
		isTabu     bool
		iter       int
	)

	for iter = 0; iter < cfg.MaxIters; iter++ {
		iterations = iter + 1

		if cfg.MaxCandidates > 0 {
			candidates = SampleMoves(cfg.Kind, n, cfg.MaxCandidates, rng)
		} else {
			candidates = Neighborhood(cfg.Kind, n)
		}

		// Best admissible move: tabu candidates pass only via aspiration.
		chosen = -1
		for k = 0; k < len(candidates); k++ {
			d = candidates[k].Delta(m, cur)
			candLen = curLen + d
			isTabu = list.contains(moveSignature(candidates[k]))
			if isTabu && candLen >= bestLen {
				continue
			}
			if chosen == -1 || candLen < chosenLen {
				chosen = k
				chosenLen = candLen
			}
		}
		if chosen == -1 {
			break // every candidate is tabu and none aspirates
		}

		candidates[chosen].Apply(cur)
		curLen = chosenLen
		list.push(moveSignature(candidates[chosen].undo()))

		if curLen < bestLen {
			bestLen = curLen
			copy(best, cur)
			noImprove = 0
		} else {
			noImprove++
			if cfg.MaxNoImprove > 0 && noImprove >= cfg.MaxNoImprove {
				break
			}
		}
	}

	return best, round1e9(bestLen), iterations, nil
}

// moveSignature packs (kind, i, j) into a single comparable key.
// Positions are < 2^28 in practice, so the packing is collision free.
func moveSignature(mv Move) uint64 {
	return (uint64(mv.Kind) << 56) | (uint64(uint32(mv.I)) << 28) | uint64(uint32(mv.J))
}

// tabuList is a fixed-capacity insertion-ordered set of move signatures:
// a ring buffer for FIFO eviction plus a reference-counted map for O(1)
// membership. Its size never exceeds the configured tenure.
type tabuList struct {
	refs map[uint64]int
	ring []uint64
	head int
	used int
}

func newTabuList(capacity int) *tabuList {
	return &tabuList{
		refs: make(map[uint64]int, capacity*2),
		ring: make([]uint64, capacity),
	}
}

// contains reports whether sig is currently tabu.
func (t *tabuList) contains(sig uint64) bool {
	return t.refs[sig] > 0
}

// push appends sig, evicting the oldest entry when the list is full.
func (t *tabuList) push(sig uint64) {
	if t.used == len(t.ring) {
		old := t.ring[t.head]
		if t.refs[old] > 1 {
			t.refs[old]--
		} else {
			delete(t.refs, old)
		}
	} else {
		t.used++
	}
	t.ring[t.head] = sig
	t.refs[sig]++
	t.head++
	if t.head == len(t.ring) {
		t.head = 0
	}
}

// size returns the current number of entries (≤ capacity at all times).
func (t *tabuList) size() int { return t.used }
