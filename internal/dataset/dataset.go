// Package dataset loads station/temperature inputs from YAML or JSON files.
// A dataset either lists paired station records or two parallel arrays of
// names and temperatures that are zipped by position when the report is
// built.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/pvderate/core/model"
)

// ErrDataset wraps every load or decode failure.
var ErrDataset = errors.New("dataset")

//go:embed builtin.yaml
var builtinYAML []byte

// Dataset is a set of station inputs plus an optional cell technology.
type Dataset struct {
	Technology   *model.CellType       `json:"technology,omitempty" yaml:"technology,omitempty"`
	Stations     []model.StationSample `json:"stations,omitempty" yaml:"stations,omitempty"`
	Names        []string              `json:"names,omitempty" yaml:"names,omitempty"`
	Temperatures []float64             `json:"temperatures,omitempty" yaml:"temperatures,omitempty"`
}

// Paired reports whether the dataset carries explicit station records.
// Records take precedence over the parallel arrays.
func (d Dataset) Paired() bool { return len(d.Stations) > 0 }

// Len returns the number of usable entries.
func (d Dataset) Len() int {
	if d.Paired() {
		return len(d.Stations)
	}
	return min(len(d.Names), len(d.Temperatures))
}

// Builtin returns the embedded reference dataset.
func Builtin() (Dataset, error) {
	return Decode(bytes.NewReader(builtinYAML), "yaml")
}

// Load reads a dataset from a .yaml, .yml or .json file.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", ErrDataset, err)
	}
	defer func() { _ = f.Close() }()
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	ds, err := Decode(f, ext)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode reads a dataset from r in the given format ("yaml", "yml" or "json").
func Decode(r io.Reader, format string) (Dataset, error) {
	var ds Dataset
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&ds); err != nil && err != io.EOF {
			return Dataset{}, fmt.Errorf("%w: decode yaml: %v", ErrDataset, err)
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&ds); err != nil {
			return Dataset{}, fmt.Errorf("%w: decode json: %v", ErrDataset, err)
		}
	default:
		return Dataset{}, fmt.Errorf("%w: unsupported format: %s", ErrDataset, format)
	}
	return ds, nil
}
