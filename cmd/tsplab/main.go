// Command tsplab runs a YAML-described benchmark experiment against a TSP
// distance matrix and persists the outcomes: one JSON record per trial plus
// an aggregate summary CSV.
//
// Usage:
//
//	tsplab -experiment exp.yaml -data ./data -results ./results
//
// The experiment file selects the built-in dataset by size (48, 76, or 127);
// -matrix overrides it with an explicit CSV file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/katalvlaran/tsplab/bench"
	"github.com/katalvlaran/tsplab/dataset"
	"github.com/katalvlaran/tsplab/record"
	"github.com/katalvlaran/tsplab/tsp"
)

func main() {
	var (
		expPath    = flag.String("experiment", "experiment.yaml", "experiment YAML file")
		dataDir    = flag.String("data", "data", "directory holding the benchmark CSV files")
		matrixPath = flag.String("matrix", "", "explicit distance-matrix CSV (overrides the experiment's dataset)")
		resultsDir = flag.String("results", "results", "directory for JSON run records and the summary CSV")
	)
	flag.Parse()

	if err := run(*expPath, *dataDir, *matrixPath, *resultsDir); err != nil {
		fmt.Fprintln(os.Stderr, "tsplab:", err)
		os.Exit(1)
	}
}

func run(expPath, dataDir, matrixPath, resultsDir string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exp, err := bench.LoadExperiment(expPath)
	if err != nil {
		return err
	}

	m, name, err := loadMatrix(exp, dataDir, matrixPath)
	if err != nil {
		return err
	}
	fmt.Printf("experiment %q: %s (%d cities), %d algorithm(s) x %d run(s), base seed %d\n",
		exp.Name, name, m.Size(), len(exp.Algorithms), exp.Runs, exp.BaseSeed)

	trials, err := bench.Run(ctx, m, exp)
	if err != nil {
		return err
	}

	mon := record.Monitor{Dir: resultsDir}
	for _, r := range bench.Records(trials, name, m.Size()) {
		saved, err := mon.Save(r)
		if err != nil {
			return err
		}
		fmt.Printf("  %-8s run record %s (length %.3f)\n", r.AlgorithmName, saved, r.RouteLength)
	}

	summaries := bench.Summaries(trials)
	summaryPath := filepath.Join(resultsDir, exp.Name+"_summary.csv")
	if err = record.WriteSummaryCSV(summaryPath, summaries); err != nil {
		return err
	}

	fmt.Println("summary:")
	for _, s := range summaries {
		fmt.Printf("  %-8s best %.3f  mean %.3f  std %.3f  (%d runs, %.1f ms avg)\n",
			s.Label, s.Stats.Best, s.Stats.Mean, s.Stats.Std, s.Stats.N, s.Stats.MeanTimeMs)
	}
	fmt.Println("wrote", summaryPath)
	return nil
}

// loadMatrix resolves the instance: an explicit CSV wins, otherwise the
// experiment's built-in dataset is loaded from the data directory.
func loadMatrix(exp bench.Experiment, dataDir, matrixPath string) (*tsp.Matrix, string, error) {
	if matrixPath != "" {
		m, err := dataset.Load(matrixPath)
		if err != nil {
			return nil, "", err
		}
		return m, filepath.Base(matrixPath), nil
	}

	d, err := dataset.ParseDataset(exp.Dataset)
	if err != nil {
		return nil, "", err
	}
	m, err := dataset.LoadDataset(dataDir, d)
	if err != nil {
		return nil, "", err
	}
	return m, d.Label(), nil
}
