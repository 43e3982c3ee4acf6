// Package bench — YAML experiment definitions.
package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsplab/tsp"
)

// Experiment is a declarative description of a benchmark run.
type Experiment struct {
	// Name labels the experiment in summaries and file names.
	Name string `yaml:"name"`
	// Dataset names the instance the CLI should load (48, 76, or 127).
	Dataset int `yaml:"dataset"`
	// Runs is the number of trials per algorithm (≥ 1).
	Runs int `yaml:"runs"`
	// BaseSeed seeds the whole experiment; every trial derives from it.
	BaseSeed int64 `yaml:"base_seed"`
	// Workers bounds the worker pool; ≤ 0 means one worker per CPU.
	Workers int `yaml:"workers"`
	// Algorithms lists the engine configurations to benchmark.
	Algorithms []AlgorithmSpec `yaml:"algorithms"`
}

// AlgorithmSpec configures one engine. Only the section matching Algo is
// read; a missing section selects the engine's default parameterization.
type AlgorithmSpec struct {
	Algo string `yaml:"algo"`

	NN      *NNSpec      `yaml:"nn,omitempty"`
	IHC     *IHCSpec     `yaml:"ihc,omitempty"`
	SA      *SASpec      `yaml:"sa,omitempty"`
	Tabu    *TabuSpec    `yaml:"tabu,omitempty"`
	GA      *GASpec      `yaml:"ga,omitempty"`
	Memetic *MemeticSpec `yaml:"memetic,omitempty"`
}

// NNSpec mirrors tsp.NNConfig in YAML form.
type NNSpec struct {
	Start int `yaml:"start"`
}

// IHCSpec mirrors tsp.IHCConfig in YAML form.
type IHCSpec struct {
	Starts   int    `yaml:"starts"`
	MaxIters int    `yaml:"max_iters"`
	Move     string `yaml:"move"`
	Init     string `yaml:"init"`
	InitCity int    `yaml:"init_city"`
}

// SASpec mirrors tsp.SAConfig in YAML form.
type SASpec struct {
	InitialTemp  float64 `yaml:"initial_temp"`
	FinalTemp    float64 `yaml:"final_temp"`
	Alpha        float64 `yaml:"alpha"`
	Step         float64 `yaml:"step"`
	MovesPerTemp int     `yaml:"moves_per_temp"`
	MaxIters     int     `yaml:"max_iters"`
	Move         string  `yaml:"move"`
	Schedule     string  `yaml:"schedule"`
}

// TabuSpec mirrors tsp.TabuConfig in YAML form.
type TabuSpec struct {
	Tenure        int    `yaml:"tenure"`
	MaxIters      int    `yaml:"max_iters"`
	MaxNoImprove  int    `yaml:"max_no_improve"`
	Move          string `yaml:"move"`
	MaxCandidates int    `yaml:"max_candidates"`
}

// GASpec mirrors tsp.GAConfig in YAML form.
type GASpec struct {
	Population     int     `yaml:"population"`
	Generations    int     `yaml:"generations"`
	MaxNoImprove   int     `yaml:"max_no_improve"`
	Selection      string  `yaml:"selection"`
	TournamentSize int     `yaml:"tournament_size"`
	Crossover      string  `yaml:"crossover"`
	CrossoverRate  float64 `yaml:"crossover_rate"`
	Replacement    string  `yaml:"replacement"`
	Elite          int     `yaml:"elite"`
	Mutation       string  `yaml:"mutation"`
	MutationRate   float64 `yaml:"mutation_rate"`
}

// MemeticSpec mirrors tsp.MemeticConfig in YAML form.
type MemeticSpec struct {
	GA             GASpec `yaml:"ga"`
	RefineMaxMoves int    `yaml:"refine_max_moves"`
}

// LoadExperiment reads and decodes an experiment file.
func LoadExperiment(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("bench: read experiment %s: %w", path, err)
	}
	var exp Experiment
	if err = yaml.Unmarshal(data, &exp); err != nil {
		return Experiment{}, fmt.Errorf("bench: decode experiment %s: %w", path, err)
	}
	if exp.Runs < 1 {
		exp.Runs = 1
	}
	return exp, nil
}

// Options materializes the spec into engine options for one trial seed.
// Unspecified sections keep the engine defaults.
func (s AlgorithmSpec) Options(seed int64) (tsp.Options, error) {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Algorithm(s.Algo)
	opts.Seed = seed

	var err error
	if s.NN != nil {
		opts.NN.Start = s.NN.Start
	}
	if s.IHC != nil {
		if opts.IHC, err = s.IHC.config(); err != nil {
			return tsp.Options{}, err
		}
	}
	if s.SA != nil {
		if opts.SA, err = s.SA.config(); err != nil {
			return tsp.Options{}, err
		}
	}
	if s.Tabu != nil {
		if opts.Tabu, err = s.Tabu.config(); err != nil {
			return tsp.Options{}, err
		}
	}
	if s.GA != nil {
		if opts.GA, err = s.GA.config(); err != nil {
			return tsp.Options{}, err
		}
	}
	if s.Memetic != nil {
		if opts.Memetic.GA, err = s.Memetic.GA.config(); err != nil {
			return tsp.Options{}, err
		}
		opts.Memetic.RefineMaxMoves = s.Memetic.RefineMaxMoves
	}
	return opts, nil
}

func (s IHCSpec) config() (tsp.IHCConfig, error) {
	kind, err := parseMove("ihc.move", s.Move)
	if err != nil {
		return tsp.IHCConfig{}, err
	}
	init, err := parseInit(s.Init)
	if err != nil {
		return tsp.IHCConfig{}, err
	}
	return tsp.IHCConfig{
		Starts:   s.Starts,
		MaxIters: s.MaxIters,
		Kind:     kind,
		Init:     init,
		InitCity: s.InitCity,
	}, nil
}

func (s SASpec) config() (tsp.SAConfig, error) {
	kind, err := parseMove("sa.move", s.Move)
	if err != nil {
		return tsp.SAConfig{}, err
	}
	sched, err := parseSchedule(s.Schedule)
	if err != nil {
		return tsp.SAConfig{}, err
	}
	return tsp.SAConfig{
		InitialTemp:  s.InitialTemp,
		FinalTemp:    s.FinalTemp,
		Alpha:        s.Alpha,
		Step:         s.Step,
		MovesPerTemp: s.MovesPerTemp,
		MaxIters:     s.MaxIters,
		Kind:         kind,
		Schedule:     sched,
	}, nil
}

func (s TabuSpec) config() (tsp.TabuConfig, error) {
	kind, err := parseMove("tabu.move", s.Move)
	if err != nil {
		return tsp.TabuConfig{}, err
	}
	return tsp.TabuConfig{
		Tenure:        s.Tenure,
		MaxIters:      s.MaxIters,
		MaxNoImprove:  s.MaxNoImprove,
		Kind:          kind,
		MaxCandidates: s.MaxCandidates,
	}, nil
}

func (s GASpec) config() (tsp.GAConfig, error) {
	sel, err := parseSelection(s.Selection)
	if err != nil {
		return tsp.GAConfig{}, err
	}
	cx, err := parseCrossover(s.Crossover)
	if err != nil {
		return tsp.GAConfig{}, err
	}
	rep, err := parseReplacement(s.Replacement)
	if err != nil {
		return tsp.GAConfig{}, err
	}
	mut, err := parseMove("ga.mutation", s.Mutation)
	if err != nil {
		return tsp.GAConfig{}, err
	}
	return tsp.GAConfig{
		Population:     s.Population,
		Generations:    s.Generations,
		MaxNoImprove:   s.MaxNoImprove,
		Selection:      sel,
		TournamentSize: s.TournamentSize,
		Crossover:      cx,
		CrossoverRate:  s.CrossoverRate,
		Replacement:    rep,
		Elite:          s.Elite,
		MutationKind:   mut,
		MutationRate:   s.MutationRate,
	}, nil
}

func parseMove(field, s string) (tsp.MoveKind, error) {
	kind, err := tsp.ParseMoveKind(s)
	if err != nil {
		return 0, fmt.Errorf("bench: %s: unknown move %q", field, s)
	}
	return kind, nil
}

func parseInit(s string) (tsp.InitSource, error) {
	switch s {
	case "", "random":
		return tsp.InitRandom, nil
	case "nearest_neighbor":
		return tsp.InitNearestNeighbor, nil
	case "nearest_neighbor_random":
		return tsp.InitNearestNeighborRandom, nil
	default:
		return 0, fmt.Errorf("bench: ihc.init: unknown source %q", s)
	}
}

func parseSchedule(s string) (tsp.Cooling, error) {
	switch s {
	case "", "geometric":
		return tsp.CoolGeometric, nil
	case "linear":
		return tsp.CoolLinear, nil
	default:
		return 0, fmt.Errorf("bench: sa.schedule: unknown schedule %q", s)
	}
}

func parseSelection(s string) (tsp.Selection, error) {
	switch s {
	case "", "tournament":
		return tsp.SelTournament, nil
	case "roulette":
		return tsp.SelRoulette, nil
	case "rank":
		return tsp.SelRank, nil
	default:
		return 0, fmt.Errorf("bench: ga.selection: unknown method %q", s)
	}
}

func parseCrossover(s string) (tsp.Crossover, error) {
	switch s {
	case "", "ox":
		return tsp.CxOrder, nil
	case "pmx":
		return tsp.CxPartiallyMapped, nil
	case "cx":
		return tsp.CxCycle, nil
	default:
		return 0, fmt.Errorf("bench: ga.crossover: unknown operator %q", s)
	}
}

func parseReplacement(s string) (tsp.Replacement, error) {
	switch s {
	case "", "generational":
		return tsp.RepGenerational, nil
	case "elitist":
		return tsp.RepElitist, nil
	case "steady_state":
		return tsp.RepSteadyState, nil
	default:
		return 0, fmt.Errorf("bench: ga.replacement: unknown method %q", s)
	}
}
