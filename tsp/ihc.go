// Package tsp — iterated multistart hill climbing.
//
// Each start descends by steepest descent: the full neighborhood of the
// configured move kind is scanned, deltas are computed incrementally, and the
// best strictly improving move is applied. A start terminates at the first
// iteration with no improving neighbor (or at the iteration cap); the best
// tour across all starts wins. Move selection is fully deterministic; the
// only randomness is the choice of initial tours.
package tsp

import "math/rand"

// deltaEps guards steepest descent against FP ping-pong: a move must improve
// by more than this to be accepted.
const deltaEps = 1e-12

// InitSource selects how a hill-climbing start obtains its initial tour.
type InitSource uint8

const (
	// InitRandom shuffles a fresh random permutation per start.
	InitRandom InitSource = iota
	// InitNearestNeighbor runs NearestNeighbor from IHCConfig.InitCity.
	InitNearestNeighbor
	// InitNearestNeighborRandom runs NearestNeighbor from a random city per start.
	InitNearestNeighborRandom
)

// IHCConfig parameterizes IteratedHillClimb.
type IHCConfig struct {
	// Starts is the number of independent descents (multistart count).
	Starts int
	// MaxIters caps accepted moves per start; 0 means descend to a local optimum.
	MaxIters int
	// Kind is the neighborhood used for descent.
	Kind MoveKind
	// Init selects the initial-tour source.
	Init InitSource
	// InitCity is the NN start city when Init == InitNearestNeighbor.
	InitCity int
}

// HillClimb runs a single steepest descent from the given tour, mutating it
// in place. Returns the final length and the number of accepted moves.
//
// Complexity: O(iters · n²) time for swap/2-opt neighborhoods.
func HillClimb(m *Matrix, tour []int, kind MoveKind, maxIters int) (float64, int) {
	var (
		length = m.tourLength(tour)
		moves  = Neighborhood(kind, len(tour))
		iters  int
		k      int
		d      float64
		best   float64
		bestK  int
	)
	for {
		bestK = -1
		best = -deltaEps
		for k = 0; k < len(moves); k++ {
			d = moves[k].Delta(m, tour)
			if d < best {
				best = d
				bestK = k
			}
		}
		if bestK == -1 {
			break // local optimum under this neighborhood
		}
		moves[bestK].Apply(tour)
		length += best
		iters++
		if maxIters > 0 && iters >= maxIters {
			break
		}
	}
	return length, iters
}

// IteratedHillClimb runs cfg.Starts independent descents and returns the best
// tour found, its length, and the total number of accepted moves.
//
// The rng is consumed only for initial tours (random shuffles or random NN
// start cities); descent itself is deterministic.
func IteratedHillClimb(m *Matrix, cfg IHCConfig, rng *rand.Rand) ([]int, float64, int, error) {
	n := m.Size()

	var (
		bestTour   []int
		bestLen    float64
		iterations int
		s          int
		tour       []int
		length     float64
		iters      int
		err        error
	)
	for s = 0; s < cfg.Starts; s++ {
		switch cfg.Init {
		case InitNearestNeighbor:
			tour, _, err = NearestNeighbor(m, cfg.InitCity)
		case InitNearestNeighborRandom:
			tour, _, err = NearestNeighbor(m, rng.Intn(n))
		default:
			tour = RandomTour(n, rng)
		}
		if err != nil {
			return nil, 0, 0, err
		}

		length, iters = HillClimb(m, tour, cfg.Kind, cfg.MaxIters)
		iterations += iters

		if bestTour == nil || length < bestLen {
			bestLen = length
			bestTour = CopyTour(tour)
		}
	}

	return bestTour, round1e9(bestLen), iterations, nil
}
