// Package tsp — unified dispatcher.
//
// Solve is the canonical entry point: it validates the configuration for the
// selected algorithm (fail fast, before any work), seeds the run's private
// RNG, routes to the engine, re-validates the returned tour against the
// permutation invariant, and wraps everything in a Result with the effective
// parameter set and the measured wall-clock duration.
//
// The algorithm set is closed: routing happens over the Algorithm constants
// from types.go, never over open-ended registration.
package tsp

import (
	"strconv"
	"time"
)

// Options bundles the algorithm choice, the seed, and the per-engine
// configurations. Only the configuration of the selected algorithm is read.
type Options struct {
	Algo Algorithm

	// Seed drives every stochastic choice of the run. Zero selects the
	// package's fixed default seed; runs remain deterministic either way.
	Seed int64

	NN      NNConfig
	IHC     IHCConfig
	SA      SAConfig
	Tabu    TabuConfig
	GA      GAConfig
	Memetic MemeticConfig
}

// DefaultOptions returns a fully populated Options with the laboratory's
// reference parameterization for every engine.
func DefaultOptions() Options {
	ga := GAConfig{
		Population:     120,
		Generations:    500,
		MaxNoImprove:   100,
		Selection:      SelTournament,
		TournamentSize: 3,
		Crossover:      CxOrder,
		CrossoverRate:  0.9,
		Replacement:    RepElitist,
		Elite:          2,
		MutationKind:   MoveSwap,
		MutationRate:   0.1,
	}
	return Options{
		Algo: AlgoHillClimb,
		NN:   NNConfig{Start: 0},
		IHC: IHCConfig{
			Starts: 50,
			Kind:   MoveSwap,
			Init:   InitRandom,
		},
		SA: SAConfig{
			InitialTemp:  1000.0,
			FinalTemp:    1e-3,
			Alpha:        0.995,
			MovesPerTemp: 100,
			Kind:         MoveSwap,
			Schedule:     CoolGeometric,
		},
		Tabu: TabuConfig{
			Tenure:       20,
			MaxIters:     2000,
			MaxNoImprove: 400,
			Kind:         MoveReverse,
		},
		GA: ga,
		Memetic: MemeticConfig{
			GA:             ga,
			RefineMaxMoves: 20,
		},
	}
}

// Solve validates opts against m, runs the selected engine, and returns its
// Result. Errors: ErrInvalidParameter (wrapped, before the run starts),
// ErrUnknownAlgorithm, or ErrInvalidTour if an engine ever emits a broken
// permutation (an engine bug, never repaired).
func Solve(m *Matrix, opts Options) (Result, error) {
	n := m.Size()
	rng := NewRNG(opts.Seed)
	params := map[string]string{"seed": strconv.FormatInt(opts.Seed, 10)}

	var (
		tour   []int
		length float64
		iters  int
		err    error
	)

	start := time.Now()
	switch opts.Algo {
	case AlgoNearestNeighbor:
		if err = opts.NN.Validate(n); err != nil {
			return Result{}, err
		}
		params["start"] = strconv.Itoa(opts.NN.Start)
		tour, length, err = NearestNeighbor(m, opts.NN.Start)
		iters = n

	case AlgoHillClimb:
		if err = opts.IHC.Validate(n); err != nil {
			return Result{}, err
		}
		cfg := opts.IHC
		params["starts"] = strconv.Itoa(cfg.Starts)
		params["move"] = cfg.Kind.String()
		tour, length, iters, err = IteratedHillClimb(m, cfg, rng)

	case AlgoAnneal:
		if err = opts.SA.Validate(); err != nil {
			return Result{}, err
		}
		cfg := opts.SA
		params["initial_temp"] = formatFloat(cfg.InitialTemp)
		params["final_temp"] = formatFloat(cfg.FinalTemp)
		params["alpha"] = formatFloat(cfg.Alpha)
		params["moves_per_temp"] = strconv.Itoa(cfg.MovesPerTemp)
		params["move"] = cfg.Kind.String()
		tour, length, iters, err = Anneal(m, cfg, nil, rng)

	case AlgoTabu:
		if err = opts.Tabu.Validate(); err != nil {
			return Result{}, err
		}
		cfg := opts.Tabu
		params["tenure"] = strconv.Itoa(cfg.Tenure)
		params["max_iters"] = strconv.Itoa(cfg.MaxIters)
		params["move"] = cfg.Kind.String()
		tour, length, iters, err = TabuSearch(m, cfg, nil, rng)

	case AlgoGenetic:
		if err = opts.GA.Validate(); err != nil {
			return Result{}, err
		}
		cfg := opts.GA
		params["population"] = strconv.Itoa(cfg.Population)
		params["generations"] = strconv.Itoa(cfg.Generations)
		params["crossover_rate"] = formatFloat(cfg.CrossoverRate)
		params["mutation_rate"] = formatFloat(cfg.MutationRate)
		params["mutation"] = cfg.MutationKind.String()
		tour, length, iters, err = Evolve(m, cfg, rng)

	case AlgoMemetic:
		if err = opts.Memetic.Validate(); err != nil {
			return Result{}, err
		}
		cfg := opts.Memetic
		params["population"] = strconv.Itoa(cfg.GA.Population)
		params["generations"] = strconv.Itoa(cfg.GA.Generations)
		params["refine_max_moves"] = strconv.Itoa(cfg.RefineMaxMoves)
		tour, length, iters, err = Memetic(m, cfg, rng)

	default:
		return Result{}, ErrUnknownAlgorithm
	}
	duration := time.Since(start)

	if err != nil {
		return Result{}, err
	}
	// The permutation invariant is every engine's contract; a violation here
	// is a bug, surfaced rather than repaired.
	if err = ValidateTour(tour, n); err != nil {
		return Result{}, err
	}

	return Result{
		Algorithm:  opts.Algo,
		Params:     params,
		Tour:       tour,
		Length:     length,
		Iterations: iters,
		Duration:   duration,
	}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
