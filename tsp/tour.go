// Package tsp — tour utilities shared by all engines.
//
// A Tour is an open permutation of the city indices 0..n-1; the cycle is
// implicitly closed by the edge from the last city back to the first. These
// helpers operate purely on tour structure, without distance lookups.
package tsp

import "math/rand"

// ValidateTour checks that tour is a permutation of {0..n-1} of length n.
// Returns ErrInvalidTour otherwise. A failure after a move, crossover, or
// mutation indicates an engine bug and must be treated as fatal.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}
	return nil
}

// RandomTour returns a uniformly random permutation of 0..n-1 drawn from rng.
//
// Complexity: O(n) time, O(n) space.
func RandomTour(n int, rng *rand.Rand) []int {
	t := identityTour(n)
	shuffleInPlace(t, rng)
	return t
}

// CopyTour returns an independent copy of the input tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// identityTour returns [0, 1, …, n-1].
func identityTour(n int) []int {
	t := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}
	return t
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(t []int, rng *rand.Rand) {
	var (
		i int
		j int
	)
	for i = len(t) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		t[i], t[j] = t[j], t[i]
	}
}
