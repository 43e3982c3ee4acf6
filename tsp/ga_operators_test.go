package tsp

import (
	"math/rand"
	"testing"
)

// randomPerm returns a random permutation of [0..n).
func randomPerm(n int, rng *rand.Rand) []int {
	p := identityTour(n)
	shuffleInPlace(p, rng)
	return p
}

// TestCrossovers_ProduceValidPermutations is the operator contract: for any
// pair of parent permutations and any cut points, every crossover writes a
// valid permutation into both offspring buffers.
func TestCrossovers_ProduceValidPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		n := 4 + rng.Intn(12)
		p1 := randomPerm(n, rng)
		p2 := randomPerm(n, rng)
		c1 := make([]int, n)
		c2 := make([]int, n)

		for _, method := range []Crossover{CxOrder, CxPartiallyMapped, CxCycle} {
			crossoverPair(method, p1, p2, c1, c2, rng)
			if err := ValidateTour(c1, n); err != nil {
				t.Fatalf("method=%d n=%d child1 invalid: %v\np1=%v\np2=%v\nc1=%v", method, n, err, p1, p2, c1)
			}
			if err := ValidateTour(c2, n); err != nil {
				t.Fatalf("method=%d n=%d child2 invalid: %v\np1=%v\np2=%v\nc2=%v", method, n, err, p1, p2, c2)
			}
		}
	}
}

func TestCrossovers_IdenticalParentsYieldParent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p := randomPerm(8, rng)
	c1 := make([]int, 8)
	c2 := make([]int, 8)

	for _, method := range []Crossover{CxOrder, CxPartiallyMapped, CxCycle} {
		crossoverPair(method, p, p, c1, c2, rng)
		for i := range p {
			if c1[i] != p[i] || c2[i] != p[i] {
				t.Fatalf("method=%d: identical parents must reproduce themselves\np=%v\nc1=%v\nc2=%v", method, p, c1, c2)
			}
		}
	}
}

func TestPMX_ClassicExample(t *testing.T) {
	// The standard nine-element worked example.
	p1 := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	p2 := []int{8, 3, 7, 4, 2, 6, 5, 1, 0}
	dst := make([]int, 9)

	pmxInto(dst, p1, p2, 3, 6)

	want := []int{8, 2, 7, 3, 4, 5, 6, 1, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("pmx = %v, want %v", dst, want)
		}
	}
}

func TestOX_KeepsSegmentAndP2Order(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5, 6, 7}
	p2 := []int{7, 6, 5, 4, 3, 2, 1, 0}
	dst := make([]int, 8)

	oxInto(dst, p1, p2, 2, 4)

	// Segment [2..4] from p1; the rest filled from p2 starting after the
	// segment, skipping segment cities: 1, 0, 7, 6, 5.
	want := []int{6, 5, 2, 3, 4, 1, 0, 7}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("ox = %v, want %v", dst, want)
		}
	}
}

func TestCX_AlternatesCycles(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5, 6, 7}
	p2 := []int{1, 0, 3, 2, 5, 4, 7, 6}
	dst := make([]int, 8)

	cxInto(dst, p1, p2)

	// Cycles are the position pairs {0,1},{2,3},{4,5},{6,7}; even cycles copy
	// p1, odd cycles copy p2.
	want := []int{0, 1, 3, 2, 4, 5, 7, 6}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("cx = %v, want %v", dst, want)
		}
	}
}

func TestSelector_TournamentPrefersFitter(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	lens := []float64{100, 1, 100, 100}
	s := &selector{method: SelTournament, tsize: 4}
	s.prepare(lens)

	hits := 0
	for k := 0; k < 200; k++ {
		if s.pick(rng) == 1 {
			hits++
		}
	}
	// Four draws of four indices include index 1 with probability 1-(3/4)^4 ≈ 0.68.
	if hits < 100 {
		t.Fatalf("fittest picked only %d/200 times", hits)
	}
}

func TestSelector_RankAndRouletteStayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	lens := []float64{10, 20, 30, 40, 50}

	for _, method := range []Selection{SelRoulette, SelRank} {
		s := &selector{method: method}
		s.prepare(lens)
		for k := 0; k < 100; k++ {
			idx := s.pick(rng)
			if idx < 0 || idx >= len(lens) {
				t.Fatalf("method=%d pick out of range: %d", method, idx)
			}
		}
	}
}

func TestCutPoints_NonEmptySegment(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for k := 0; k < 200; k++ {
		a, b := cutPoints(6, rng)
		if a < 0 || b > 5 || a >= b {
			t.Fatalf("cutPoints produced [%d..%d]", a, b)
		}
	}
}
