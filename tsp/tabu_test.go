package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/tsp"
)

func TestTabuSearch_ImprovesPentagon(t *testing.T) {
	m, opt := pentagon(t)
	cfg := tsp.TabuConfig{
		Tenure:       5,
		MaxIters:     100,
		MaxNoImprove: 30,
		Kind:         tsp.MoveReverse,
	}

	tour, length, iters, err := tsp.TabuSearch(m, cfg, []int{0, 1, 3, 2, 4}, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(tour, 5))
	require.GreaterOrEqual(t, iters, 1)
	require.InDelta(t, opt, length, 1e-6)
}

func TestTabuSearch_NeverWorseThanStart(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	pts := make([][2]float64, 12)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
	}
	m := euclid(t, pts)

	initial := tsp.RandomTour(12, rng)
	startLen := mustLength(t, m, initial)

	cfg := tsp.TabuConfig{
		Tenure:       7,
		MaxIters:     200,
		MaxNoImprove: 50,
		Kind:         tsp.MoveSwap,
	}
	tour, length, _, err := tsp.TabuSearch(m, cfg, initial, rng)
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(tour, 12))
	// The reported best can only tie or beat the starting tour.
	require.LessOrEqual(t, length, startLen)
	require.InDelta(t, mustLength(t, m, tour), length, 1e-9)
}

func TestTabuSearch_Deterministic(t *testing.T) {
	m, _ := pentagon(t)
	cfg := tsp.TabuConfig{
		Tenure:        4,
		MaxIters:      60,
		Kind:          tsp.MoveInsert,
		MaxCandidates: 8,
	}

	ta, la, ia, err := tsp.TabuSearch(m, cfg, nil, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	tb, lb, ib, err := tsp.TabuSearch(m, cfg, nil, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)

	require.Equal(t, ta, tb)
	require.Equal(t, la, lb)
	require.Equal(t, ia, ib)
}

func TestTabuSearch_IterationCap(t *testing.T) {
	m, _ := pentagon(t)
	cfg := tsp.TabuConfig{
		Tenure:   3,
		MaxIters: 9,
		Kind:     tsp.MoveReverse,
	}

	_, _, iters, err := tsp.TabuSearch(m, cfg, nil, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	require.LessOrEqual(t, iters, 9)
}

func TestTabuSearch_RejectsBrokenInitialTour(t *testing.T) {
	m, _ := pentagon(t)
	cfg := tsp.TabuConfig{Tenure: 3, MaxIters: 10, Kind: tsp.MoveSwap}

	_, _, _, err := tsp.TabuSearch(m, cfg, []int{4, 3, 2, 1}, rand.New(rand.NewSource(seedDet)))
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
}
