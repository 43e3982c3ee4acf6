// Package tsp — configuration validation.
//
// Every parameter is checked against its domain before an engine starts
// (ErrInvalidParameter, wrapped with the offending field and value). Engines
// may therefore assume well-formed configurations in their hot loops.
package tsp

import "fmt"

// invalidParam builds a wrapped ErrInvalidParameter with field detail.
func invalidParam(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, field, fmt.Sprintf(format, args...))
}

func validateMoveKind(field string, k MoveKind) error {
	switch k {
	case MoveSwap, MoveInsert, MoveReverse:
		return nil
	default:
		return invalidParam(field, "unknown move kind %d", k)
	}
}

// Validate checks the NN configuration against a matrix of n cities.
func (cfg NNConfig) Validate(n int) error {
	if cfg.Start < 0 || cfg.Start >= n {
		return invalidParam("nn.start", "%d outside [0..%d]", cfg.Start, n-1)
	}
	return nil
}

// Validate checks the IHC configuration against a matrix of n cities.
func (cfg IHCConfig) Validate(n int) error {
	if cfg.Starts < 1 {
		return invalidParam("ihc.starts", "must be >= 1, got %d", cfg.Starts)
	}
	if cfg.MaxIters < 0 {
		return invalidParam("ihc.max_iters", "must be >= 0, got %d", cfg.MaxIters)
	}
	if err := validateMoveKind("ihc.move", cfg.Kind); err != nil {
		return err
	}
	switch cfg.Init {
	case InitRandom, InitNearestNeighborRandom:
	case InitNearestNeighbor:
		if cfg.InitCity < 0 || cfg.InitCity >= n {
			return invalidParam("ihc.init_city", "%d outside [0..%d]", cfg.InitCity, n-1)
		}
	default:
		return invalidParam("ihc.init", "unknown source %d", cfg.Init)
	}
	return nil
}

// Validate checks the SA configuration.
func (cfg SAConfig) Validate() error {
	if cfg.InitialTemp <= 0 {
		return invalidParam("sa.initial_temp", "must be > 0, got %g", cfg.InitialTemp)
	}
	if cfg.FinalTemp <= 0 || cfg.FinalTemp >= cfg.InitialTemp {
		return invalidParam("sa.final_temp", "must be in (0, initial_temp), got %g", cfg.FinalTemp)
	}
	switch cfg.Schedule {
	case CoolGeometric:
		if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
			return invalidParam("sa.alpha", "must be in (0,1), got %g", cfg.Alpha)
		}
	case CoolLinear:
		if cfg.Step <= 0 {
			return invalidParam("sa.step", "must be > 0, got %g", cfg.Step)
		}
	default:
		return invalidParam("sa.schedule", "unknown schedule %d", cfg.Schedule)
	}
	if cfg.MovesPerTemp < 1 {
		return invalidParam("sa.moves_per_temp", "must be >= 1, got %d", cfg.MovesPerTemp)
	}
	if cfg.MaxIters < 0 {
		return invalidParam("sa.max_iters", "must be >= 0, got %d", cfg.MaxIters)
	}
	return validateMoveKind("sa.move", cfg.Kind)
}

// Validate checks the tabu configuration.
func (cfg TabuConfig) Validate() error {
	if cfg.Tenure < 1 {
		return invalidParam("tabu.tenure", "must be >= 1, got %d", cfg.Tenure)
	}
	if cfg.MaxIters < 1 {
		return invalidParam("tabu.max_iters", "must be >= 1, got %d", cfg.MaxIters)
	}
	if cfg.MaxNoImprove < 0 {
		return invalidParam("tabu.max_no_improve", "must be >= 0, got %d", cfg.MaxNoImprove)
	}
	if cfg.MaxCandidates < 0 {
		return invalidParam("tabu.max_candidates", "must be >= 0, got %d", cfg.MaxCandidates)
	}
	return validateMoveKind("tabu.move", cfg.Kind)
}

// Validate checks the GA configuration.
func (cfg GAConfig) Validate() error {
	if cfg.Population < 2 {
		return invalidParam("ga.population", "must be >= 2, got %d", cfg.Population)
	}
	if cfg.Generations < 1 {
		return invalidParam("ga.generations", "must be >= 1, got %d", cfg.Generations)
	}
	if cfg.MaxNoImprove < 0 {
		return invalidParam("ga.max_no_improve", "must be >= 0, got %d", cfg.MaxNoImprove)
	}
	switch cfg.Selection {
	case SelTournament:
		if cfg.TournamentSize < 2 {
			return invalidParam("ga.tournament_size", "must be >= 2, got %d", cfg.TournamentSize)
		}
	case SelRoulette, SelRank:
	default:
		return invalidParam("ga.selection", "unknown method %d", cfg.Selection)
	}
	switch cfg.Crossover {
	case CxOrder, CxPartiallyMapped, CxCycle:
	default:
		return invalidParam("ga.crossover", "unknown operator %d", cfg.Crossover)
	}
	if cfg.CrossoverRate < 0 || cfg.CrossoverRate > 1 {
		return invalidParam("ga.crossover_rate", "must be in [0,1], got %g", cfg.CrossoverRate)
	}
	switch cfg.Replacement {
	case RepGenerational, RepSteadyState:
	case RepElitist:
		if cfg.Elite < 1 || cfg.Elite >= cfg.Population {
			return invalidParam("ga.elite", "must be in [1..population-1], got %d", cfg.Elite)
		}
	default:
		return invalidParam("ga.replacement", "unknown method %d", cfg.Replacement)
	}
	if cfg.MutationRate < 0 || cfg.MutationRate > 1 {
		return invalidParam("ga.mutation_rate", "must be in [0,1], got %g", cfg.MutationRate)
	}
	return validateMoveKind("ga.mutation", cfg.MutationKind)
}

// Validate checks the memetic configuration.
func (cfg MemeticConfig) Validate() error {
	if err := cfg.GA.Validate(); err != nil {
		return err
	}
	if cfg.RefineMaxMoves < 1 {
		return invalidParam("memetic.refine_max_moves", "must be >= 1, got %d", cfg.RefineMaxMoves)
	}
	return nil
}
