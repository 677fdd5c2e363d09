package export

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/pvderate/core/model"
	"github.com/kilianp07/pvderate/core/report"
)

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	rows := []model.ResultRow{{Station: "COM", CellTemperature: 25, Efficiency: 0.21, Power: 210}}
	require.NoError(t, WriteCSVFile(path, rows, 4))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	recs, err := ReadCSV(f)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "COM", recs[0].Station)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteFileOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "results.csv")
	err := WriteCSVFile(path, nil, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutputOpen))
	assert.False(t, errors.Is(err, ErrOutputWrite))
	var oe *OutputError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, path, oe.Path)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFileWriteErrorKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o644))

	boom := errors.New("boom")
	err := WriteFile(path, func(w io.Writer) error {
		if _, err := w.Write([]byte("partial")); err != nil {
			return err
		}
		return boom
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutputWrite))
	assert.True(t, errors.Is(err, boom))

	data, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, "previous\n", string(data))
	entries, rerr := os.ReadDir(dir)
	require.NoError(t, rerr)
	assert.Len(t, entries, 1)
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	rpt := report.NewBuilder(model.DefaultParameters(), report.WithTechnology("mono")).
		BuildParallel([]string{"A", "B"}, []float64{25, 125})
	require.NoError(t, WriteJSONFile(path, rpt))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, rpt.ID, doc.ReportID)
	assert.Equal(t, "mono", doc.Technology)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "A", doc.Rows[0].Station)
	assert.Equal(t, 2, doc.Summary.Count)
}
