package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a funding-ratio distribution.
// Moments and quantiles are taken over the finite samples only; NonFinite
// counts the scenarios that were excluded (e.g. a housing index that
// underflowed to zero).
type Summary struct {
	Label string `json:"label,omitempty"`

	Count     int `json:"count"`
	NonFinite int `json:"non_finite"`

	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P05    float64 `json:"p05"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`

	// ShortfallProbability is the share of finite scenarios ending underfunded (ratio < 1).
	ShortfallProbability float64 `json:"shortfall_probability"`
}

// Summarize computes a Summary for samples. StdDev is the population standard
// deviation. The input slice is not modified.
func Summarize(samples []float64) Summary {
	s := Summary{Count: len(samples)}

	vals := make([]float64, 0, len(samples))
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.NonFinite++
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return s
	}
	sort.Float64s(vals)

	s.Mean = stat.Mean(vals, nil)
	s.StdDev = math.Sqrt(stat.Moment(2, vals, nil))
	s.Min = vals[0]
	s.Max = vals[len(vals)-1]
	s.P05 = percentileSorted(vals, 0.05)
	s.P50 = percentileSorted(vals, 0.50)
	s.P95 = percentileSorted(vals, 0.95)

	// vals is sorted, so everything below 1 is a prefix
	under := sort.SearchFloat64s(vals, 1)
	s.ShortfallProbability = float64(under) / float64(len(vals))
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
