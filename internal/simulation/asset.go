package simulation

import (
	"math"

	"funding-sim/internal/model"
)

// AssetLeg is a geometric drift-diffusion index whose drift is the current
// short rate plus a fixed premium.
type AssetLeg struct {
	Asset      model.Asset
	Premium    float64
	Volatility float64
}

func newAssetLeg(a model.Asset, p model.AssetParams) AssetLeg {
	return AssetLeg{Asset: a, Premium: p.Premium, Volatility: p.Volatility}
}

// Step advances every scenario one step:
//
//	S' = S·exp[(r + premium - ½σ²)dt + σ·dW]
//
// rate must hold the pre-step short rate of each scenario; shock is the
// leg's correlated column scaled by sqrt(dt). next must not alias current.
func (l AssetLeg) Step(next, current, rate, shock []float64, dt float64) {
	drift := (l.Premium - 0.5*l.Volatility*l.Volatility) * dt
	for i, s := range current {
		next[i] = s * math.Exp(rate[i]*dt+drift+l.Volatility*shock[i])
	}
}
