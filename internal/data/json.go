package data

import (
	"encoding/json"
	"fmt"
	"os"

	"funding-sim/internal/config"
	"funding-sim/internal/curve"
)

// LoadCurveJSON reads a curve from JSON, either as {"tenors": [...], "rates": [...]}
// or as a list of {"tenor": t, "rate": r} points.
func LoadCurveJSON(path string) (*curve.ForwardCurve, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCurveJSON(raw)
}

func ParseCurveJSON(raw []byte) (*curve.ForwardCurve, error) {
	var points []curve.Point
	if err := json.Unmarshal(raw, &points); err == nil {
		return curve.FromPoints(points)
	}

	var c config.CurveConfig
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode curve: %w", err)
	}
	return curve.New(c.Tenors, c.Rates)
}
