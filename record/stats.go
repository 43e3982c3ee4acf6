// Package record — aggregate statistics over repeated runs.
package record

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Stats summarizes the route lengths of repeated runs of one configuration.
type Stats struct {
	// N is the number of runs aggregated.
	N int
	// Best is the minimum route length.
	Best float64
	// Worst is the maximum route length.
	Worst float64
	// Mean is the arithmetic mean of the route lengths.
	Mean float64
	// Std is the sample standard deviation (n-1 denominator); 0 when N < 2.
	Std float64
	// MeanTimeMs is the mean execution time in milliseconds.
	MeanTimeMs float64
}

// Summarize computes Stats over the given records.
func Summarize(records []RunRecord) Stats {
	n := len(records)
	if n == 0 {
		return Stats{}
	}

	var (
		s       = Stats{N: n, Best: records[0].RouteLength, Worst: records[0].RouteLength}
		sum     float64
		sumTime float64
		i       int
	)
	for i = 0; i < n; i++ {
		l := records[i].RouteLength
		sum += l
		sumTime += float64(records[i].ExecutionTimeMs)
		if l < s.Best {
			s.Best = l
		}
		if l > s.Worst {
			s.Worst = l
		}
	}
	s.Mean = sum / float64(n)
	s.MeanTimeMs = sumTime / float64(n)

	if n > 1 {
		var sq float64
		for i = 0; i < n; i++ {
			d := records[i].RouteLength - s.Mean
			sq += d * d
		}
		s.Std = math.Sqrt(sq / float64(n-1))
	}
	return s
}

// Summary is one labeled row of an experiment's aggregate table.
type Summary struct {
	// Label identifies the configuration (algorithm plus dataset, usually).
	Label string
	// Stats are the aggregates over that configuration's runs.
	Stats Stats
}

// WriteSummaryCSV writes summaries as a comma-separated table with a header
// row, one row per configuration.
func WriteSummaryCSV(path string, summaries []Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("record: create summary %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write([]string{"label", "runs", "best", "worst", "mean", "std", "mean_time_ms"}); err != nil {
		return fmt.Errorf("record: write summary header: %w", err)
	}
	for _, s := range summaries {
		row := []string{
			s.Label,
			strconv.Itoa(s.Stats.N),
			formatStat(s.Stats.Best),
			formatStat(s.Stats.Worst),
			formatStat(s.Stats.Mean),
			formatStat(s.Stats.Std),
			formatStat(s.Stats.MeanTimeMs),
		}
		if err = w.Write(row); err != nil {
			return fmt.Errorf("record: write summary row %s: %w", s.Label, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("record: flush summary: %w", err)
	}
	return nil
}

func formatStat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
