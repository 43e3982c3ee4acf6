// Package tsp — genetic operators: parent selection and permutation crossover.
//
// Every crossover writes valid permutations into the destination buffers; the
// permutation invariant is the operators' contract, not something repaired
// afterwards.
package tsp

import (
	"math/rand"
	"sort"
)

// Selection names the parent-selection methods.
type Selection uint8

const (
	// SelTournament picks the fittest of TournamentSize uniform draws.
	SelTournament Selection = iota
	// SelRoulette draws proportionally to fitness 1/length.
	SelRoulette
	// SelRank draws proportionally to linear rank (best rank = popsize).
	SelRank
)

// Crossover names the recombination operators.
type Crossover uint8

const (
	// CxOrder is order crossover (OX).
	CxOrder Crossover = iota
	// CxPartiallyMapped is partially-mapped crossover (PMX).
	CxPartiallyMapped
	// CxCycle is cycle crossover (CX).
	CxCycle
)

// selector prepares per-generation selection state once, so each pick is
// O(TournamentSize) or O(log n).
type selector struct {
	method Selection
	tsize  int
	lens   []float64
	cum    []float64 // cumulative weights for roulette/rank
	order  []int     // indices sorted by ascending length (rank)
}

// prepare rebuilds the selection state for the current population fitness.
func (s *selector) prepare(lens []float64) {
	s.lens = lens
	n := len(lens)

	switch s.method {
	case SelRoulette:
		if cap(s.cum) < n {
			s.cum = make([]float64, n)
		}
		s.cum = s.cum[:n]
		total := 0.0
		for i := 0; i < n; i++ {
			total += 1.0 / (lens[i] + 1.0) // +1 guards degenerate zero lengths
			s.cum[i] = total
		}

	case SelRank:
		if cap(s.order) < n {
			s.order = make([]int, n)
		}
		s.order = s.order[:n]
		for i := range s.order {
			s.order[i] = i
		}
		sort.Slice(s.order, func(a, b int) bool { return lens[s.order[a]] < lens[s.order[b]] })
		if cap(s.cum) < n {
			s.cum = make([]float64, n)
		}
		s.cum = s.cum[:n]
		total := 0.0
		for i := 0; i < n; i++ {
			// order[i] has rank i (0 = best); linear weight n-i.
			total += float64(n - i)
			s.cum[i] = total
		}
	}
}

// pick returns the index of one selected parent.
func (s *selector) pick(rng *rand.Rand) int {
	n := len(s.lens)
	switch s.method {
	case SelRoulette:
		r := rng.Float64() * s.cum[n-1]
		return searchCum(s.cum, r)
	case SelRank:
		r := rng.Float64() * s.cum[n-1]
		return s.order[searchCum(s.cum, r)]
	default:
		best := rng.Intn(n)
		for k := 1; k < s.tsize; k++ {
			c := rng.Intn(n)
			if s.lens[c] < s.lens[best] {
				best = c
			}
		}
		return best
	}
}

// searchCum returns the first index whose cumulative weight exceeds r.
func searchCum(cum []float64, r float64) int {
	lo, hi := 0, len(cum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cum[mid] > r {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// crossoverPair produces two offspring from parents p1, p2 into c1, c2.
func crossoverPair(method Crossover, p1, p2, c1, c2 []int, rng *rand.Rand) {
	switch method {
	case CxPartiallyMapped:
		a, b := cutPoints(len(p1), rng)
		pmxInto(c1, p1, p2, a, b)
		pmxInto(c2, p2, p1, a, b)
	case CxCycle:
		cxInto(c1, p1, p2)
		cxInto(c2, p2, p1)
	default:
		a, b := cutPoints(len(p1), rng)
		oxInto(c1, p1, p2, a, b)
		oxInto(c2, p2, p1, a, b)
	}
}

// cutPoints draws a non-empty segment [a..b] with 0 ≤ a ≤ b ≤ n-1, a < b
// unless n < 2.
func cutPoints(n int, rng *rand.Rand) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}
	if a == b {
		if b < n-1 {
			b++
		} else {
			a--
		}
	}
	return a, b
}

// oxInto writes order crossover into dst: the segment [a..b] is copied from
// p1; the remaining positions are filled with p2's cities in p2 order,
// scanning cyclically from b+1.
func oxInto(dst, p1, p2 []int, a, b int) {
	n := len(p1)
	inSeg := make([]bool, n)

	var i int
	for i = a; i <= b; i++ {
		dst[i] = p1[i]
		inSeg[p1[i]] = true
	}

	pos := (b + 1) % n
	var g int
	for i = 0; i < n; i++ {
		g = p2[(b+1+i)%n]
		if inSeg[g] {
			continue
		}
		dst[pos] = g
		pos = (pos + 1) % n
	}
}

// pmxInto writes partially-mapped crossover into dst: the segment [a..b]
// comes from p1; each displaced city of p2's segment is relocated through the
// p1→p2 position mapping; remaining positions copy p2.
func pmxInto(dst, p1, p2 []int, a, b int) {
	n := len(p1)

	posInP2 := make([]int, n) // city → position in p2
	var i int
	for i = 0; i < n; i++ {
		posInP2[p2[i]] = i
	}

	inSeg := make([]bool, n)
	for i = a; i <= b; i++ {
		dst[i] = p1[i]
		inSeg[p1[i]] = true
	}
	filled := make([]bool, n)
	for i = a; i <= b; i++ {
		filled[i] = true
	}

	// Relocate p2's segment cities that were displaced by p1's segment.
	var g, pos int
	for i = a; i <= b; i++ {
		g = p2[i]
		if inSeg[g] {
			continue
		}
		pos = i
		for filled[pos] {
			pos = posInP2[p1[pos]]
		}
		dst[pos] = g
		filled[pos] = true
		inSeg[g] = true
	}

	// Everything else comes straight from p2.
	for i = 0; i < n; i++ {
		if !filled[i] {
			dst[i] = p2[i]
		}
	}
}

// cxInto writes cycle crossover into dst: positions are partitioned into
// cycles of the p1/p2 mapping; even cycles copy p1, odd cycles copy p2.
func cxInto(dst, p1, p2 []int) {
	n := len(p1)

	posInP1 := make([]int, n) // city → position in p1
	var i int
	for i = 0; i < n; i++ {
		posInP1[p1[i]] = i
	}

	visited := make([]bool, n)
	fromP1 := true
	var j int
	for i = 0; i < n; i++ {
		if visited[i] {
			continue
		}
		j = i
		for !visited[j] {
			visited[j] = true
			if fromP1 {
				dst[j] = p1[j]
			} else {
				dst[j] = p2[j]
			}
			j = posInP1[p2[j]]
		}
		fromP1 = !fromP1
	}
}
