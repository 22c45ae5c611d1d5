package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestSimulateCommand_WritesCSV(t *testing.T) {
	dir := t.TempDir()
	samples := filepath.Join(dir, "out", "samples.csv")
	paths := filepath.Join(dir, "out", "paths.csv")

	out := execute(t, "simulate", "--scenarios", "40", "--horizon", "1", "--allocation", "global",
		"--out", samples, "--paths-out", paths)
	assert.Contains(t, out, "global")

	f, err := os.Open(samples)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 41)
	assert.Equal(t, []string{"scenario", "terminal_rate", "domestic_equity", "global_equity", "housing", "funding_ratio"}, rows[0])

	g, err := os.Open(paths)
	require.NoError(t, err)
	defer g.Close()
	rows, err = csv.NewReader(g).ReadAll()
	require.NoError(t, err)
	// 40 scenarios x 13 grid points plus header
	assert.Len(t, rows, 40*13+1)
}

func TestCompareCommand(t *testing.T) {
	out := execute(t, "compare", "--scenarios", "60", "balanced", "tilt=0.8")
	assert.Contains(t, out, "balanced")
	assert.Contains(t, out, "tilt")
}

func TestDefaultsAndCurvesCommands(t *testing.T) {
	out := execute(t, "defaults")
	assert.Contains(t, out, "mean_reversion")
	assert.Contains(t, out, "housing.volatility")

	out = execute(t, "curves", filepath.Join("..", "..", "examples", "curves"))
	assert.Contains(t, out, "base")
	assert.Contains(t, out, "steep")
}

func TestParseAllocations(t *testing.T) {
	allocs, err := parseAllocations(nil)
	require.NoError(t, err)
	assert.Len(t, allocs, 2)

	allocs, err = parseAllocations([]string{"domestic", "x=0.25"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, allocs[0].DomesticWeight)
	assert.Equal(t, "x", allocs[1].Name)
	assert.Equal(t, 0.25, allocs[1].DomesticWeight)

	_, err = parseAllocations([]string{"x=abc"})
	assert.Error(t, err)
	_, err = parseAllocations([]string{"unknown"})
	assert.Error(t, err)
}
