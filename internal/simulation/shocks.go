package simulation

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"funding-sim/internal/correlation"
)

// shockSource produces one correlated shock batch per time step.
// Buffers are owned and reused across steps; the returned columns are only
// valid until the next call to next.
type shockSource struct {
	corr   *correlation.Engine
	normal distuv.Normal
	sqrtDt float64

	draws      *mat.Dense // scenarios × factors, independent N(0,1)
	correlated *mat.Dense // draws · Lᵀ · sqrt(dt)
	columns    [][]float64
}

func newShockSource(corr *correlation.Engine, scenarios int, dt float64, seed uint64) *shockSource {
	n := corr.Size()
	cols := make([][]float64, n)
	for j := range cols {
		cols[j] = make([]float64, scenarios)
	}
	return &shockSource{
		corr:       corr,
		normal:     distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)},
		sqrtDt:     math.Sqrt(dt),
		draws:      mat.NewDense(scenarios, n, nil),
		correlated: mat.NewDense(scenarios, n, nil),
		columns:    cols,
	}
}

// next draws a fresh batch and returns it split by factor column.
func (s *shockSource) next() [][]float64 {
	raw := s.draws.RawMatrix()
	for i := range raw.Data {
		raw.Data[i] = s.normal.Rand()
	}

	s.corr.Correlate(s.correlated, s.draws)
	s.correlated.Scale(s.sqrtDt, s.correlated)

	for j := range s.columns {
		mat.Col(s.columns[j], j, s.correlated)
	}
	return s.columns
}
