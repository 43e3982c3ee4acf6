// Package tsp — distance oracle.
//
// Matrix wraps a square, symmetric, zero-diagonal distance matrix in a dense
// row-major float64 slice and answers distance and tour-length queries. The
// matrix is validated once at construction (fail fast, §NewMatrix) and is
// immutable afterwards, so it may be shared read-only across concurrent runs.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - Hot-path access goes through the unchecked at() accessor; the exported
//     API validates indices and returns ErrIndexOutOfRange.
//   - Returned lengths are rounded to 1e-9 to avoid cross-platform FP noise.
package tsp

import "math"

// matrixTol is the absolute tolerance for the symmetry and zero-diagonal
// checks at construction time.
const matrixTol = 1e-9

// lengthScale controls final length stabilization precision (1e-9).
const lengthScale = 1e9

// Matrix is an immutable n×n symmetric distance matrix.
type Matrix struct {
	n int
	w []float64 // row-major: w[i*n+j] == distance(i,j)
}

// NewMatrix validates rows and builds an immutable Matrix.
//
// Validation (all fail fast, before any engine runs):
//   - non-empty and square (ErrNonSquare),
//   - finite entries, no NaN/±Inf (ErrNonSquare for ill-posed shape values),
//   - zero diagonal within matrixTol (ErrNonZeroDiagonal),
//   - non-negative entries (ErrNegativeDistance),
//   - symmetric within matrixTol (ErrAsymmetry).
//
// The input rows are copied; callers may reuse them freely.
//
// Complexity: O(n²) time, O(n²) space.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	// A non-trivial TSP instance needs at least two cities.
	if n < 2 {
		return nil, ErrNonSquare
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
	}

	w := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonSquare
			}
			if v < 0 {
				return nil, ErrNegativeDistance
			}
			w[i*n+j] = v
		}
	}

	// Diagonal must be (approximately) zero.
	for i = 0; i < n; i++ {
		if math.Abs(w[i*n+i]) > matrixTol {
			return nil, ErrNonZeroDiagonal
		}
	}

	// Symmetry over the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(w[i*n+j]-w[j*n+i]) > matrixTol {
				return nil, ErrAsymmetry
			}
		}
	}

	return &Matrix{n: n, w: w}, nil
}

// Size returns the number of cities n.
func (m *Matrix) Size() int { return m.n }

// Distance returns the distance between cities i and j.
// Returns ErrIndexOutOfRange when either index is outside [0..n-1].
//
// Complexity: O(1).
func (m *Matrix) Distance(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfRange
	}
	return m.w[i*m.n+j], nil
}

// at is the unchecked hot-path accessor used by engines after their inputs
// have been validated.
func (m *Matrix) at(i, j int) float64 { return m.w[i*m.n+j] }

// TourLength returns the total length of the closed cycle described by tour:
// the sum of distance(tour[k], tour[(k+1) mod n]) over all k.
//
// The tour must have length n with every index in range; a full permutation
// check is ValidateTour's job. No state is read besides the matrix, so
// repeated calls on an unchanged tour return the identical value.
//
// Complexity: O(n).
func (m *Matrix) TourLength(tour []int) (float64, error) {
	if len(tour) != m.n {
		return 0, ErrInvalidTour
	}
	var (
		i int
		v int
	)
	for i = 0; i < m.n; i++ {
		v = tour[i]
		if v < 0 || v >= m.n {
			return 0, ErrIndexOutOfRange
		}
	}
	return round1e9(m.tourLength(tour)), nil
}

// tourLength is the unchecked accumulation used in hot loops.
func (m *Matrix) tourLength(tour []int) float64 {
	var (
		sum float64
		i   int
		n   = m.n
	)
	for i = 0; i < n; i++ {
		sum += m.w[tour[i]*n+tour[(i+1)%n]]
	}
	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision. This keeps reported
// lengths stable across platforms without affecting move acceptance, which
// operates on raw deltas.
func round1e9(x float64) float64 {
	return math.Round(x*lengthScale) / lengthScale
}
