// Package tsp_test — shared fixtures for the engine tests.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tsplab/tsp"
)

// seedDet is the fixed seed used by determinism-sensitive tests.
const seedDet int64 = 42

// chainMatrix is the 4-city instance from the NN determinism contract:
// nearest-neighbor from city 0 must produce [0 1 2 3] with length 12.
func chainMatrix(t *testing.T) *tsp.Matrix {
	t.Helper()
	m, err := tsp.NewMatrix([][]float64{
		{0, 1, 9, 9},
		{1, 0, 1, 9},
		{9, 1, 0, 1},
		{9, 9, 1, 0},
	})
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	return m
}

// euclid builds a symmetric zero-diagonal matrix of pairwise Euclidean
// distances between the given points.
func euclid(t *testing.T, pts [][2]float64) *tsp.Matrix {
	t.Helper()
	n := len(pts)
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			rows[i][j] = math.Hypot(dx, dy)
		}
	}
	m, err := tsp.NewMatrix(rows)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	return m
}

// pentagon returns the 5 vertices of a regular pentagon on the unit circle,
// indexed in boundary order, plus the optimal (perimeter) tour length.
func pentagon(t *testing.T) (*tsp.Matrix, float64) {
	t.Helper()
	pts := make([][2]float64, 5)
	for k := 0; k < 5; k++ {
		theta := 2 * math.Pi * float64(k) / 5
		pts[k] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}
	m := euclid(t, pts)
	opt, err := m.TourLength([]int{0, 1, 2, 3, 4})
	if err != nil {
		t.Fatalf("TourLength: %v", err)
	}
	return m, opt
}

// mustLength recomputes the closed-cycle length of tour, failing the test on
// any oracle error.
func mustLength(t *testing.T, m *tsp.Matrix, tour []int) float64 {
	t.Helper()
	l, err := m.TourLength(tour)
	if err != nil {
		t.Fatalf("TourLength: %v", err)
	}
	return l
}
