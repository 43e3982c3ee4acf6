package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/tsp"
)

func gaBaseConfig() tsp.GAConfig {
	return tsp.GAConfig{
		Population:     30,
		Generations:    60,
		Selection:      tsp.SelTournament,
		TournamentSize: 3,
		Crossover:      tsp.CxOrder,
		CrossoverRate:  0.9,
		Replacement:    tsp.RepElitist,
		Elite:          2,
		MutationKind:   tsp.MoveSwap,
		MutationRate:   0.2,
	}
}

// TestEvolve_AllOperatorCombinations runs the engine across every selection,
// crossover, and replacement method and checks the shared contract: a valid
// permutation, a length consistent with the tour, and seed determinism.
func TestEvolve_AllOperatorCombinations(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	pts := make([][2]float64, 9)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64() * 50, rng.Float64() * 50}
	}
	m := euclid(t, pts)

	selections := []tsp.Selection{tsp.SelTournament, tsp.SelRoulette, tsp.SelRank}
	crossovers := []tsp.Crossover{tsp.CxOrder, tsp.CxPartiallyMapped, tsp.CxCycle}
	replacements := []tsp.Replacement{tsp.RepGenerational, tsp.RepElitist, tsp.RepSteadyState}

	for _, sel := range selections {
		for _, cx := range crossovers {
			for _, rep := range replacements {
				cfg := gaBaseConfig()
				cfg.Selection = sel
				cfg.Crossover = cx
				cfg.Replacement = rep
				cfg.Generations = 25

				tour, length, gens, err := tsp.Evolve(m, cfg, rand.New(rand.NewSource(seedDet)))
				require.NoError(t, err, "sel=%d cx=%d rep=%d", sel, cx, rep)
				require.NoError(t, tsp.ValidateTour(tour, 9), "sel=%d cx=%d rep=%d", sel, cx, rep)
				require.InDelta(t, mustLength(t, m, tour), length, 1e-9, "sel=%d cx=%d rep=%d", sel, cx, rep)
				require.GreaterOrEqual(t, gens, 1)

				tour2, length2, _, err := tsp.Evolve(m, cfg, rand.New(rand.NewSource(seedDet)))
				require.NoError(t, err)
				require.Equal(t, tour, tour2, "sel=%d cx=%d rep=%d", sel, cx, rep)
				require.Equal(t, length, length2, "sel=%d cx=%d rep=%d", sel, cx, rep)
			}
		}
	}
}

func TestEvolve_SolvesPentagon(t *testing.T) {
	m, opt := pentagon(t)
	cfg := gaBaseConfig()

	tour, length, _, err := tsp.Evolve(m, cfg, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(tour, 5))
	require.InDelta(t, opt, length, 1e-6)
}

// TestEvolve_BestNeverRegresses: the reported best across two runs of
// different generation budgets on the same seed can only improve with budget.
func TestEvolve_BestNeverRegresses(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	pts := make([][2]float64, 11)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
	}
	m := euclid(t, pts)

	short := gaBaseConfig()
	short.Generations = 5
	long := gaBaseConfig()
	long.Generations = 80

	_, lenShort, _, err := tsp.Evolve(m, short, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	_, lenLong, _, err := tsp.Evolve(m, long, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)

	require.LessOrEqual(t, lenLong, lenShort)
}

func TestEvolve_StagnationStop(t *testing.T) {
	m, _ := pentagon(t)
	cfg := gaBaseConfig()
	cfg.Generations = 500
	cfg.MaxNoImprove = 10

	_, _, gens, err := tsp.Evolve(m, cfg, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	require.Less(t, gens, 500)
}

func TestMemetic_SolvesPentagon(t *testing.T) {
	m, opt := pentagon(t)
	cfg := tsp.MemeticConfig{GA: gaBaseConfig(), RefineMaxMoves: 10}
	cfg.GA.Generations = 15

	tour, length, _, err := tsp.Memetic(m, cfg, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(tour, 5))
	require.InDelta(t, opt, length, 1e-6)
}

func TestMemetic_AtLeastAsGoodAsGA(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	pts := make([][2]float64, 13)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
	}
	m := euclid(t, pts)

	// With crossover and mutation disabled, both engines see the same initial
	// population and the GA can only report its best founder. Refinement never
	// consumes rng draws and never lengthens a tour, so the memetic result must
	// tie or beat it.
	ga := gaBaseConfig()
	ga.Generations = 5
	ga.CrossoverRate = 0
	ga.MutationRate = 0

	_, gaLen, _, err := tsp.Evolve(m, ga, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)

	mem := tsp.MemeticConfig{GA: ga, RefineMaxMoves: 15}
	_, memLen, _, err := tsp.Memetic(m, mem, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)

	require.LessOrEqual(t, memLen, gaLen)
}

func TestMemetic_Deterministic(t *testing.T) {
	m, _ := pentagon(t)
	cfg := tsp.MemeticConfig{GA: gaBaseConfig(), RefineMaxMoves: 5}
	cfg.GA.Generations = 10

	ta, la, _, err := tsp.Memetic(m, cfg, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	tb, lb, _, err := tsp.Memetic(m, cfg, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)

	require.Equal(t, ta, tb)
	require.Equal(t, la, lb)
}
