package simulation

import (
	"math"

	"funding-sim/internal/curve"
)

// HullWhite is the one-factor short-rate model
//
//	dr = (theta(t) - a·r) dt + sigma dW
//
// with theta calibrated so the expected short-rate path reproduces the market
// forward curve. Stepping is Euler–Maruyama, so the step size should stay small
// relative to 1/a.
type HullWhite struct {
	Curve          *curve.ForwardCurve
	MeanReversion  float64
	RateVolatility float64
}

// Theta is the calibration drift at t, with df/dt estimated by a forward
// difference over [t, t+dt].
func (hw HullWhite) Theta(t, dt float64) float64 {
	a, sigma := hw.MeanReversion, hw.RateVolatility
	convexity := sigma * sigma / (2 * a) * (1 - math.Exp(-2*a*t))
	return hw.Curve.Slope(t, dt) + a*hw.Curve.Rate(t) + convexity
}

// Alpha is the analytical expected short rate E[r(t)] = f(0,t) + sigma²/(2a²)·(1-exp(-a·t))².
func (hw HullWhite) Alpha(t float64) float64 {
	a, sigma := hw.MeanReversion, hw.RateVolatility
	x := 1 - math.Exp(-a*t)
	return hw.Curve.Rate(t) + sigma*sigma/(2*a*a)*x*x
}

// Step advances every scenario from t to t+dt.
// shock holds the rate-factor column of the correlated batch, already scaled by sqrt(dt).
// next must not alias current.
func (hw HullWhite) Step(next, current, shock []float64, t, dt float64) {
	theta := hw.Theta(t, dt)
	a, sigma := hw.MeanReversion, hw.RateVolatility
	for i, r := range current {
		next[i] = r + (theta-a*r)*dt + sigma*shock[i]
	}
}
