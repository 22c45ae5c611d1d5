package simulation

// FundingRatios combines terminal index values per scenario:
//
//	portfolio = wD·domestic + (1-wD)·global
//	ratio     = portfolio / housing
//
// Non-positive housing values are not guarded; they surface as non-finite
// or negative ratios.
func FundingRatios(domestic, global, housing []float64, wD float64) []float64 {
	wG := 1 - wD
	out := make([]float64, len(housing))
	for i := range out {
		out[i] = (wD*domestic[i] + wG*global[i]) / housing[i]
	}
	return out
}
