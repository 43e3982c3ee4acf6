package tsp

import (
	"errors"
	"time"
)

// Sentinel errors. Library code returns these (possibly wrapped with detail
// via fmt.Errorf + %w); it never logs and never panics on user input.
var (
	// ErrNonSquare is returned when the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrAsymmetry is returned when matrix[i][j] != matrix[j][i] beyond tolerance.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrNonZeroDiagonal is returned when some matrix[i][i] != 0 beyond tolerance.
	ErrNonZeroDiagonal = errors.New("tsp: distance matrix has a non-zero diagonal")

	// ErrNegativeDistance is returned when the matrix contains a negative entry.
	ErrNegativeDistance = errors.New("tsp: negative distance")

	// ErrIndexOutOfRange is returned by the distance oracle for city indices ≥ n or < 0.
	ErrIndexOutOfRange = errors.New("tsp: city index out of range")

	// ErrInvalidTour is returned when a sequence is not a permutation of all
	// city indices. Inside an engine this indicates an algorithmic bug in a
	// move or crossover implementation; it is fatal and never repaired.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of all cities")

	// ErrInvalidParameter is returned before a run starts when a configured
	// parameter is outside its valid domain.
	ErrInvalidParameter = errors.New("tsp: parameter outside valid domain")

	// ErrUnknownAlgorithm is returned by Solve for an algorithm name outside
	// the closed set below.
	ErrUnknownAlgorithm = errors.New("tsp: unknown algorithm")
)

// MoveKind selects one of the three supported neighborhood structures.
type MoveKind uint8

const (
	// MoveSwap exchanges the cities at two distinct positions.
	MoveSwap MoveKind = iota
	// MoveInsert removes the city at one position and reinserts it at another.
	MoveInsert
	// MoveReverse reverses the contiguous segment between two positions (2-opt).
	MoveReverse
)

// String returns the stable textual name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case MoveSwap:
		return "swap"
	case MoveInsert:
		return "insert"
	case MoveReverse:
		return "two_opt"
	default:
		return "unknown"
	}
}

// ParseMoveKind maps a textual name back to a MoveKind.
func ParseMoveKind(s string) (MoveKind, error) {
	switch s {
	case "swap":
		return MoveSwap, nil
	case "insert":
		return MoveInsert, nil
	case "two_opt":
		return MoveReverse, nil
	default:
		return 0, ErrInvalidParameter
	}
}

// Algorithm names the closed set of engines routable through Solve.
type Algorithm string

const (
	AlgoNearestNeighbor Algorithm = "nn"
	AlgoHillClimb       Algorithm = "ihc"
	AlgoAnneal          Algorithm = "sa"
	AlgoTabu            Algorithm = "tabu"
	AlgoGenetic         Algorithm = "ga"
	AlgoMemetic         Algorithm = "memetic"
)

// Result is the outcome of one completed engine run. It is owned by the
// caller once returned; engines never retain or mutate it afterwards.
type Result struct {
	// Algorithm is the engine that produced the result.
	Algorithm Algorithm

	// Params records the effective parameterization as key-value strings.
	Params map[string]string

	// Tour is the best tour found: a permutation of 0..n-1, implicitly closed.
	Tour []int

	// Length is the total distance of Tour, rounded to 1e-9.
	Length float64

	// Iterations counts engine steps: descent moves for IHC, candidate
	// evaluations for SA, iterations for tabu, generations for GA/memetic.
	Iterations int

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}
