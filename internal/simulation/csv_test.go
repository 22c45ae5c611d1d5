package simulation

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funding-sim/internal/model"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteSamplesCSV(t *testing.T) {
	p := model.DefaultParams()
	p.Scenarios = 5
	res, err := New().Run(p)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "samples.csv")
	require.NoError(t, WriteSamplesCSV(path, res))

	rows := readCSV(t, path)
	require.Len(t, rows, 6)
	assert.Equal(t, "funding_ratio", rows[0][5])
	for i, row := range rows[1:] {
		assert.Equal(t, strconv.Itoa(i), row[0])
		fr, err := strconv.ParseFloat(row[5], 64)
		require.NoError(t, err)
		assert.InDelta(t, res.FundingRatios[i], fr, 1e-6)
	}
}

func TestWritePathsCSV(t *testing.T) {
	p := model.DefaultParams()
	p.Scenarios = 3
	p.HorizonYears = 0.5
	res, err := New().Run(p)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "paths.csv")
	require.NoError(t, WritePathsCSV(path, res))

	rows := readCSV(t, path)
	require.Len(t, rows, 1+3*7)
	assert.Equal(t, []string{"scenario", "step", "t", "rate", "domestic_equity", "global_equity", "housing"}, rows[0])
	// first grid point of every scenario is the initial state
	assert.Equal(t, []string{"0", "0", "0.000000", "0.043500", "100.000000", "100.000000", "100.000000"}, rows[1])
	assert.Equal(t, "1", rows[8][0])
	assert.Equal(t, "0", rows[8][1])
}

func TestWriteSamplesCSV_BadPath(t *testing.T) {
	res := &Result{}
	err := WriteSamplesCSV(filepath.Join(t.TempDir(), "missing", "x.csv"), res)
	assert.Error(t, err)
}
