package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/pvderate/pkg/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootWritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	out, err := execute(t, "--dataset=", "--out", path, "--precision", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "68 stations written to "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	recs, err := export.ReadCSV(f)
	require.NoError(t, err)
	assert.Len(t, recs, 68)
	assert.Equal(t, "SIA", recs[0].Station)
}

func TestRootOutputError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "results.csv")
	_, err := execute(t, "--dataset=", "--out", path)
	assert.Error(t, err)
}

func TestCompute(t *testing.T) {
	out, err := execute(t, "compute", "25", "125", "500")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Tcell=25.0000°C efficiency=21.0000% power=210.0000 W", lines[0])
	assert.Equal(t, "Tcell=125.0000°C efficiency=11.5500% power=115.5000 W", lines[1])
	assert.Equal(t, "Tcell=500.0000°C efficiency=0.0000% power=0.0000 W", lines[2])
}

func TestComputeInvalid(t *testing.T) {
	_, err := execute(t, "compute", "hot")
	assert.Error(t, err)
}

func TestStations(t *testing.T) {
	ds := filepath.Join(t.TempDir(), "stations.yaml")
	require.NoError(t, os.WriteFile(ds, []byte("names: [A, B]\ntemperatures: [10.0]\n"), 0o644))
	out, err := execute(t, "stations", "--dataset", ds)
	require.NoError(t, err)
	assert.Contains(t, out, "1 stations")
	assert.Contains(t, out, "A\t10.0000")
	assert.NotContains(t, out, "B\t")
}
