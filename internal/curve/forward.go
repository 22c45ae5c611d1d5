package curve

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCurve is returned for malformed or degenerate forward-curve input.
var ErrInvalidCurve = errors.New("invalid forward curve")

// Point is one pillar of the market curve.
// Tenor is in years, Rate is an annualized instantaneous forward rate (0.04 = 4%).
type Point struct {
	Tenor float64
	Rate  float64
}

// ForwardCurve is an immutable piecewise-linear instantaneous forward curve f(0, t).
type ForwardCurve struct {
	tenors []float64
	rates  []float64
}

// New builds a forward curve from parallel tenor/rate slices.
// Tenors must start at 0 and be strictly increasing; at least two points are required.
// The input slices are copied.
func New(tenors, rates []float64) (*ForwardCurve, error) {
	if len(tenors) != len(rates) {
		return nil, fmt.Errorf("%w: %d tenors but %d rates", ErrInvalidCurve, len(tenors), len(rates))
	}
	if len(tenors) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidCurve, len(tenors))
	}
	if tenors[0] != 0 {
		return nil, fmt.Errorf("%w: first tenor must be 0, got %v", ErrInvalidCurve, tenors[0])
	}
	for i := range tenors {
		if math.IsNaN(tenors[i]) || math.IsInf(tenors[i], 0) {
			return nil, fmt.Errorf("%w: tenor[%d] is not finite", ErrInvalidCurve, i)
		}
		if math.IsNaN(rates[i]) || math.IsInf(rates[i], 0) {
			return nil, fmt.Errorf("%w: rate[%d] is not finite", ErrInvalidCurve, i)
		}
		if i > 0 && tenors[i] <= tenors[i-1] {
			return nil, fmt.Errorf("%w: tenors not strictly increasing at index %d (%v <= %v)",
				ErrInvalidCurve, i, tenors[i], tenors[i-1])
		}
	}

	c := &ForwardCurve{
		tenors: make([]float64, len(tenors)),
		rates:  make([]float64, len(rates)),
	}
	copy(c.tenors, tenors)
	copy(c.rates, rates)
	return c, nil
}

// FromPoints builds a curve from pillar points, in order.
func FromPoints(points []Point) (*ForwardCurve, error) {
	tenors := make([]float64, len(points))
	rates := make([]float64, len(points))
	for i, p := range points {
		tenors[i] = p.Tenor
		rates[i] = p.Rate
	}
	return New(tenors, rates)
}

// Rate evaluates f(0, t).
// Inside the pillar range the two bracketing points are interpolated linearly;
// outside it the slope of the nearest boundary segment is continued.
func (c *ForwardCurve) Rate(t float64) float64 {
	i := c.segment(t)
	t1, t2 := c.tenors[i], c.tenors[i+1]
	r1, r2 := c.rates[i], c.rates[i+1]
	return r1 + (r2-r1)*(t-t1)/(t2-t1)
}

// Slope is the forward-difference estimate of df/dt over [t, t+h].
func (c *ForwardCurve) Slope(t, h float64) float64 {
	return (c.Rate(t+h) - c.Rate(t)) / h
}

// Points returns a copy of the curve pillars.
func (c *ForwardCurve) Points() []Point {
	out := make([]Point, len(c.tenors))
	for i := range c.tenors {
		out[i] = Point{Tenor: c.tenors[i], Rate: c.rates[i]}
	}
	return out
}

// Pillars returns copies of the tenor and rate columns.
func (c *ForwardCurve) Pillars() (tenors, rates []float64) {
	return append([]float64(nil), c.tenors...), append([]float64(nil), c.rates...)
}

// MaxTenor is the last pillar tenor.
func (c *ForwardCurve) MaxTenor() float64 {
	return c.tenors[len(c.tenors)-1]
}

// segment returns the index i of the segment [tenors[i], tenors[i+1]] used for t.
// Values below the first pillar use segment 0, values above the last use the final segment.
func (c *ForwardCurve) segment(t float64) int {
	last := len(c.tenors) - 2
	if t <= c.tenors[0] {
		return 0
	}
	if t >= c.tenors[last+1] {
		return last
	}
	// binary search for the largest i with tenors[i] <= t
	lo, hi := 0, last+1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if c.tenors[mid] <= t {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
