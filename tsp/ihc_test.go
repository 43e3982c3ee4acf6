package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/tsp"
)

// TestHillClimb_UncrossesPentagon starts from a self-crossing pentagon tour;
// one swap of adjacent boundary vertices reaches the optimal perimeter, and
// steepest descent must find it.
func TestHillClimb_UncrossesPentagon(t *testing.T) {
	m, opt := pentagon(t)

	tour := []int{0, 1, 3, 2, 4}
	length, iters := tsp.HillClimb(m, tour, tsp.MoveSwap, 0)

	require.NoError(t, tsp.ValidateTour(tour, 5))
	require.GreaterOrEqual(t, iters, 1)
	require.InDelta(t, opt, length, 1e-9)
}

func TestHillClimb_OptimumIsFixedPoint(t *testing.T) {
	m, opt := pentagon(t)

	tour := []int{0, 1, 2, 3, 4}
	length, iters := tsp.HillClimb(m, tour, tsp.MoveReverse, 0)

	require.Equal(t, 0, iters)
	require.Equal(t, []int{0, 1, 2, 3, 4}, tour)
	require.InDelta(t, opt, length, 1e-9)
}

// TestHillClimb_TerminatesOnTwoCities: with zero-delta moves only, descent
// must stop immediately instead of chasing a phantom improvement.
func TestHillClimb_TerminatesOnTwoCities(t *testing.T) {
	m, err := tsp.NewMatrix([][]float64{
		{0, 5},
		{5, 0},
	})
	require.NoError(t, err)

	for _, kind := range []tsp.MoveKind{tsp.MoveSwap, tsp.MoveInsert, tsp.MoveReverse} {
		tour := []int{0, 1}
		length, iters := tsp.HillClimb(m, tour, kind, 0)

		require.Equal(t, 0, iters, "kind=%s", kind)
		require.Equal(t, 10.0, length, "kind=%s", kind)
		require.Equal(t, []int{0, 1}, tour, "kind=%s", kind)
	}
}

func TestHillClimb_MonotoneDescent(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	pts := make([][2]float64, 10)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
	}
	m := euclid(t, pts)

	tour := tsp.RandomTour(10, rng)
	before := mustLength(t, m, tour)
	length, _ := tsp.HillClimb(m, tour, tsp.MoveReverse, 0)

	require.LessOrEqual(t, length, before)
	require.InDelta(t, mustLength(t, m, tour), length, 1e-9)
	require.NoError(t, tsp.ValidateTour(tour, 10))
}

func TestIteratedHillClimb_FindsPentagonOptimum(t *testing.T) {
	m, opt := pentagon(t)
	cfg := tsp.IHCConfig{Starts: 10, Kind: tsp.MoveReverse, Init: tsp.InitRandom}

	tour, length, iters, err := tsp.IteratedHillClimb(m, cfg, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(tour, 5))
	require.GreaterOrEqual(t, iters, 0)
	require.InDelta(t, opt, length, 1e-6)
}

func TestIteratedHillClimb_Deterministic(t *testing.T) {
	m, _ := pentagon(t)
	cfg := tsp.IHCConfig{Starts: 5, Kind: tsp.MoveSwap, Init: tsp.InitRandom}

	ta, la, ia, err := tsp.IteratedHillClimb(m, cfg, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	tb, lb, ib, err := tsp.IteratedHillClimb(m, cfg, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)

	require.Equal(t, ta, tb)
	require.Equal(t, la, lb)
	require.Equal(t, ia, ib)
}

func TestIteratedHillClimb_NearestNeighborInit(t *testing.T) {
	m := chainMatrix(t)
	cfg := tsp.IHCConfig{
		Starts:   1,
		Kind:     tsp.MoveSwap,
		Init:     tsp.InitNearestNeighbor,
		InitCity: 0,
	}

	tour, length, _, err := tsp.IteratedHillClimb(m, cfg, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(tour, 4))
	// The NN tour is already the optimum of this instance.
	require.Equal(t, 12.0, length)
}
