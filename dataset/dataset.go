// Package dataset — CSV loading and the benchmark-instance registry.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/tsplab/tsp"
)

// ErrUnknownDataset is returned for a Dataset value outside the registry.
var ErrUnknownDataset = errors.New("dataset: unknown dataset")

// Dataset identifies one of the built-in benchmark instances.
type Dataset uint8

const (
	// TSP48 is the 48-city benchmark instance.
	TSP48 Dataset = iota
	// TSP76 is the 76-city benchmark instance.
	TSP76
	// TSP127 is the 127-city benchmark instance.
	TSP127
)

// Cities returns the instance size.
func (d Dataset) Cities() int {
	switch d {
	case TSP48:
		return 48
	case TSP76:
		return 76
	case TSP127:
		return 127
	default:
		return 0
	}
}

// FileName returns the conventional file name of the instance. The 76-city
// file historically uses a hyphen where the others use an underscore.
func (d Dataset) FileName() string {
	switch d {
	case TSP48:
		return "TSP_48.csv"
	case TSP76:
		return "TSP-76.csv"
	case TSP127:
		return "TSP_127.csv"
	default:
		return ""
	}
}

// Label returns the human-readable instance name.
func (d Dataset) Label() string {
	switch d {
	case TSP48:
		return "TSP 48 Cities"
	case TSP76:
		return "TSP 76 Cities"
	case TSP127:
		return "TSP 127 Cities"
	default:
		return ""
	}
}

// ParseDataset maps an instance size to its Dataset.
func ParseDataset(cities int) (Dataset, error) {
	switch cities {
	case 48:
		return TSP48, nil
	case 76:
		return TSP76, nil
	case 127:
		return TSP127, nil
	default:
		return 0, fmt.Errorf("%w: %d cities", ErrUnknownDataset, cities)
	}
}

// Load reads a distance matrix from a CSV file: fields separated by ';',
// decimal commas normalized to dots. The parsed rows are validated through
// tsp.NewMatrix, so the returned matrix honors the full oracle contract.
func Load(path string) (*tsp.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1 // square-ness is NewMatrix's concern

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}

	rows := make([][]float64, len(records))
	var (
		i int
		j int
		v float64
	)
	for i = 0; i < len(records); i++ {
		rows[i] = make([]float64, len(records[i]))
		for j = 0; j < len(records[i]); j++ {
			field := strings.ReplaceAll(strings.TrimSpace(records[i][j]), ",", ".")
			v, err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: %s row %d field %d: parse %q: %w",
					path, i+1, j+1, records[i][j], err)
			}
			rows[i][j] = v
		}
	}

	m, err := tsp.NewMatrix(rows)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return m, nil
}

// LoadDataset loads a built-in instance from its conventional file under dir.
func LoadDataset(dir string, d Dataset) (*tsp.Matrix, error) {
	name := d.FileName()
	if name == "" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDataset, d)
	}
	m, err := Load(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	if m.Size() != d.Cities() {
		return nil, fmt.Errorf("dataset: %s holds %d cities, want %d", name, m.Size(), d.Cities())
	}
	return m, nil
}
