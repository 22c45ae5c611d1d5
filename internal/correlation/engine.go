// Package correlation turns independent standard-normal draws into draws with a
// target correlation structure using the Cholesky factor of the correlation matrix.
package correlation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNonPositiveSemiDefinite is returned when the Cholesky factorization fails.
	ErrNonPositiveSemiDefinite = errors.New("correlation matrix is not positive semi-definite")

	// ErrMalformed is returned for matrices that are not square, not symmetric,
	// or do not carry a unit diagonal.
	ErrMalformed = errors.New("malformed correlation matrix")
)

const tolerance = 1e-12

// Engine holds the lower-triangular factor L with L·Lᵀ = C.
// It is read-only after construction and safe for concurrent use.
type Engine struct {
	n      int
	factor *mat.TriDense
}

// New factorizes a correlation matrix.
func New(c mat.Symmetric) (*Engine, error) {
	n := c.Symmetric()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrMalformed)
	}
	for i := 0; i < n; i++ {
		if d := c.At(i, i); math.Abs(d-1) > tolerance {
			return nil, fmt.Errorf("%w: diagonal element (%d,%d) is %v, want 1", ErrMalformed, i, i, d)
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(c); !ok {
		return nil, ErrNonPositiveSemiDefinite
	}

	var l mat.TriDense
	chol.LTo(&l)
	return &Engine{n: n, factor: &l}, nil
}

// NewFromRows builds the engine from a dense row representation.
func NewFromRows(rows [][]float64) (*Engine, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrMalformed)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformed, i, len(row), n)
		}
	}

	data := make([]float64, 0, n*n)
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: element (%d,%d) is not finite", ErrMalformed, i, j)
			}
			if math.Abs(v-rows[j][i]) > tolerance {
				return nil, fmt.Errorf("%w: element (%d,%d)=%v differs from (%d,%d)=%v",
					ErrMalformed, i, j, v, j, i, rows[j][i])
			}
		}
		data = append(data, row...)
	}
	return New(mat.NewSymDense(n, data))
}

// Size is the number of factors.
func (e *Engine) Size() int { return e.n }

// Factor returns a copy of the lower-triangular Cholesky factor.
func (e *Engine) Factor() *mat.TriDense {
	out := mat.NewTriDense(e.n, mat.Lower, nil)
	out.Copy(e.factor)
	return out
}

// Correlate writes z·Lᵀ into dst.
// z holds one row per scenario and one column per factor; dst must be
// empty or have the same shape as z and must not alias it.
func (e *Engine) Correlate(dst, z *mat.Dense) {
	if _, c := z.Dims(); c != e.n {
		panic(fmt.Sprintf("correlation: draw matrix has %d columns, want %d", c, e.n))
	}
	dst.Mul(z, e.factor.T())
}
