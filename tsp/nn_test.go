package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/tsp"
)

func TestNearestNeighbor_ChainInstance(t *testing.T) {
	m := chainMatrix(t)

	tour, length, err := tsp.NearestNeighbor(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, tour)
	require.Equal(t, 12.0, length)
}

func TestNearestNeighbor_Deterministic(t *testing.T) {
	m := chainMatrix(t)

	for start := 0; start < 4; start++ {
		a, la, err := tsp.NearestNeighbor(m, start)
		require.NoError(t, err)
		b, lb, err := tsp.NearestNeighbor(m, start)
		require.NoError(t, err)

		require.Equal(t, a, b, "start=%d", start)
		require.Equal(t, la, lb, "start=%d", start)
		require.Equal(t, start, a[0])
		require.NoError(t, tsp.ValidateTour(a, 4))
	}
}

func TestNearestNeighbor_TieBreaksToLowestIndex(t *testing.T) {
	// Cities 1 and 2 are equidistant from 0; the greedy step must pick 1.
	m, err := tsp.NewMatrix([][]float64{
		{0, 2, 2, 5},
		{2, 0, 3, 4},
		{2, 3, 0, 1},
		{5, 4, 1, 0},
	})
	require.NoError(t, err)

	tour, _, err := tsp.NearestNeighbor(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, tour)
}

func TestNearestNeighbor_BadStart(t *testing.T) {
	m := chainMatrix(t)

	_, _, err := tsp.NearestNeighbor(m, -1)
	require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)

	_, _, err = tsp.NearestNeighbor(m, 4)
	require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
}
