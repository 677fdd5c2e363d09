package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kilianp07/pvderate/core/model"
	"github.com/kilianp07/pvderate/core/report"
)

var (
	// ErrOutputOpen reports that the output file could not be created.
	ErrOutputOpen = errors.New("cannot open output file")
	// ErrOutputWrite reports that writing or finalizing the output failed.
	ErrOutputWrite = errors.New("cannot write output file")
)

// OutputError describes a failure on the report write path. It matches
// ErrOutputOpen or ErrOutputWrite with errors.Is, as well as the underlying
// cause.
type OutputError struct {
	Path string
	Kind error
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%v %s: %v", e.Kind, e.Path, e.Err)
}

func (e *OutputError) Unwrap() []error { return []error{e.Kind, e.Err} }

// WriteFile writes the output produced by fn to path. Data goes to a
// temporary file in the same directory which is renamed over path only once
// it is fully written and closed, so path never holds a partial report.
func WriteFile(path string, fn func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &OutputError{Path: path, Kind: ErrOutputOpen, Err: err}
	}
	closed := false
	defer func() {
		if !closed {
			_ = tmp.Close()
		}
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if err := fn(tmp); err != nil {
		return &OutputError{Path: path, Kind: ErrOutputWrite, Err: err}
	}
	if err := tmp.Chmod(0o644); err != nil {
		return &OutputError{Path: path, Kind: ErrOutputWrite, Err: err}
	}
	closed = true
	if err := tmp.Close(); err != nil {
		return &OutputError{Path: path, Kind: ErrOutputWrite, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &OutputError{Path: path, Kind: ErrOutputOpen, Err: err}
	}
	return nil
}

// WriteCSVFile writes rows to path in the report CSV format.
func WriteCSVFile(path string, rows []model.ResultRow, precision int) error {
	return WriteFile(path, func(w io.Writer) error { return WriteCSV(w, rows, precision) })
}

// WriteJSONFile writes the report to path as JSON.
func WriteJSONFile(path string, r *report.Report) error {
	return WriteFile(path, func(w io.Writer) error { return WriteJSON(w, r) })
}
