// Package bench — worker-pool trial execution.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/tsplab/record"
	"github.com/katalvlaran/tsplab/tsp"
)

// Trial is the outcome of one (algorithm, run) cell of an experiment.
type Trial struct {
	// Algo is the engine the trial ran.
	Algo tsp.Algorithm
	// Run is the trial index within its algorithm, 0-based.
	Run int
	// Seed is the derived seed the trial was executed with.
	Seed int64
	// Started is the trial's start time.
	Started time.Time
	// Result is the engine's outcome.
	Result tsp.Result
	// Metrics carries engine-specific extras persisted alongside the result,
	// such as SA's closed-form evaluation estimate.
	Metrics map[string]float64
}

// trialSeed derives the seed of run `run` of algorithm index `ai`: the stream
// id packs both coordinates so no two cells share a stream.
func trialSeed(base int64, ai, run int) int64 {
	return tsp.DeriveSeed(base, uint64(ai)<<32|uint64(uint32(run)))
}

// Run executes every (algorithm, run) cell of exp against m on a bounded
// worker pool and returns the trials in deterministic order: algorithms in
// declaration order, runs ascending. The matrix is shared read-only; each
// trial owns its derived seed, so results do not depend on scheduling.
func Run(ctx context.Context, m *tsp.Matrix, exp Experiment) ([]Trial, error) {
	if len(exp.Algorithms) == 0 {
		return nil, fmt.Errorf("bench: experiment %q lists no algorithms", exp.Name)
	}
	runs := exp.Runs
	if runs < 1 {
		runs = 1
	}
	workers := exp.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type job struct {
		idx  int
		spec AlgorithmSpec
		ai   int
		run  int
	}

	var (
		total  = len(exp.Algorithms) * runs
		trials = make([]Trial, total)
		jobs   = make(chan job)

		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				seed := trialSeed(exp.BaseSeed, j.ai, j.run)
				opts, err := j.spec.Options(seed)
				if err != nil {
					fail(err)
					continue
				}

				started := time.Now()
				res, err := tsp.Solve(m, opts)
				if err != nil {
					fail(fmt.Errorf("bench: %s run %d: %w", j.spec.Algo, j.run, err))
					continue
				}

				var metrics map[string]float64
				if opts.Algo == tsp.AlgoAnneal {
					metrics = map[string]float64{
						"estimated_iterations": float64(opts.SA.EstimatedIterations()),
					}
				}

				trials[j.idx] = Trial{
					Algo:    tsp.Algorithm(j.spec.Algo),
					Run:     j.run,
					Seed:    seed,
					Started: started,
					Result:  res,
					Metrics: metrics,
				}
			}
		}()
	}

	idx := 0
dispatch:
	for ai, spec := range exp.Algorithms {
		for run := 0; run < runs; run++ {
			select {
			case jobs <- job{idx: idx, spec: spec, ai: ai, run: run}:
				idx++
			case <-cctx.Done():
				break dispatch
			}
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return trials, nil
}

// Records converts trials into persistable run records for the given dataset,
// carrying over each trial's extra metrics.
func Records(trials []Trial, datasetName string, datasetSize int) []record.RunRecord {
	out := make([]record.RunRecord, len(trials))
	for i, tr := range trials {
		r := record.FromResult(tr.Result, datasetName, datasetSize, tr.Started)
		for key, value := range tr.Metrics {
			r = r.WithMetric(key, value)
		}
		out[i] = r
	}
	return out
}

// Summaries aggregates trials per algorithm, in declaration order.
func Summaries(trials []Trial) []record.Summary {
	var (
		order  []tsp.Algorithm
		groups = make(map[tsp.Algorithm][]record.RunRecord)
	)
	for _, tr := range trials {
		if _, ok := groups[tr.Algo]; !ok {
			order = append(order, tr.Algo)
		}
		groups[tr.Algo] = append(groups[tr.Algo], record.RunRecord{
			RouteLength:     tr.Result.Length,
			ExecutionTimeMs: tr.Result.Duration.Milliseconds(),
		})
	}

	out := make([]record.Summary, 0, len(order))
	for _, algo := range order {
		out = append(out, record.Summary{
			Label: string(algo),
			Stats: record.Summarize(groups[algo]),
		})
	}
	return out
}
