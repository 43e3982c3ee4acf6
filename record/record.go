// Package record — run records and their JSON persistence.
package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/tsplab/tsp"
)

// RunRecord is the persisted outcome of one algorithm run.
type RunRecord struct {
	RunID             string             `json:"run_id"`
	AlgorithmName     string             `json:"algorithm_name"`
	Parameters        map[string]string  `json:"parameters"`
	RouteLength       float64            `json:"route_length"`
	Route             []int              `json:"route"`
	ExecutionTimeMs   int64              `json:"execution_time_ms"`
	Iterations        int                `json:"iterations"`
	StartTimestamp    time.Time          `json:"start_timestamp"`
	AdditionalMetrics map[string]float64 `json:"additional_metrics"`
	DatasetSize       int                `json:"dataset_size"`
	DatasetName       string             `json:"dataset_name"`
}

// FromResult builds a RunRecord from a completed engine run. The dataset
// fields describe the instance the run was executed against; started is the
// run's start time.
func FromResult(res tsp.Result, datasetName string, datasetSize int, started time.Time) RunRecord {
	return RunRecord{
		RunID:             uuid.NewString(),
		AlgorithmName:     string(res.Algorithm),
		Parameters:        res.Params,
		RouteLength:       res.Length,
		Route:             res.Tour,
		ExecutionTimeMs:   res.Duration.Milliseconds(),
		Iterations:        res.Iterations,
		StartTimestamp:    started.UTC(),
		AdditionalMetrics: map[string]float64{},
		DatasetSize:       datasetSize,
		DatasetName:       datasetName,
	}
}

// WithMetric attaches an additional named metric and returns the record.
func (r RunRecord) WithMetric(key string, value float64) RunRecord {
	if r.AdditionalMetrics == nil {
		r.AdditionalMetrics = map[string]float64{}
	}
	r.AdditionalMetrics[key] = value
	return r
}

// FileName returns the record's conventional file name:
// {algorithm}_{N}cities_{YYYYMMDD_HHMMSS_mmm}.json.
func (r RunRecord) FileName() string {
	ts := r.StartTimestamp.Format("20060102_150405") +
		fmt.Sprintf("_%03d", r.StartTimestamp.Nanosecond()/1e6)
	return fmt.Sprintf("%s_%dcities_%s.json", r.AlgorithmName, r.DatasetSize, ts)
}

// Monitor writes run records into a results directory.
type Monitor struct {
	// Dir is the results directory; created on first save if absent.
	Dir string
}

// Save writes the record as indented JSON and returns the file name used.
func (mon Monitor) Save(r RunRecord) (string, error) {
	if err := os.MkdirAll(mon.Dir, 0o755); err != nil {
		return "", fmt.Errorf("record: create results dir: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("record: marshal run %s: %w", r.RunID, err)
	}

	name := r.FileName()
	if err = os.WriteFile(filepath.Join(mon.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("record: write %s: %w", name, err)
	}
	return name, nil
}

// List returns the JSON record file names in the results directory, sorted
// alphabetically. A missing directory yields an empty list.
func (mon Monitor) List() ([]string, error) {
	entries, err := os.ReadDir(mon.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("record: read results dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Read loads a previously saved record by file name.
func (mon Monitor) Read(name string) (RunRecord, error) {
	data, err := os.ReadFile(filepath.Join(mon.Dir, name))
	if err != nil {
		return RunRecord{}, fmt.Errorf("record: read %s: %w", name, err)
	}
	var r RunRecord
	if err = json.Unmarshal(data, &r); err != nil {
		return RunRecord{}, fmt.Errorf("record: decode %s: %w", name, err)
	}
	return r, nil
}
