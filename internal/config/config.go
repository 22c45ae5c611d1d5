package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"funding-sim/internal/curve"
	"funding-sim/internal/model"
	"funding-sim/internal/strategy"
)

// Config is the on-disk configuration shape (YAML).
// Fields missing from the file keep the values of Default.
type Config struct {
	// Optional: load the forward curve from a separate YAML (e.g. examples/curves/*.yaml).
	// If both CurveFile and Curve are provided, Curve overrides CurveFile.
	CurveFile   string           `yaml:"curve_file"`
	Curve       CurveConfig      `yaml:"curve"`
	Simulation  SimulationConfig `yaml:"simulation"`
	HullWhite   HullWhiteConfig  `yaml:"hull_white"`
	Assets      AssetsConfig     `yaml:"assets"`
	Correlation [][]float64      `yaml:"correlation"`
	Allocation  AllocationConfig `yaml:"allocation"`
}

type CurveConfig struct {
	Name        string    `yaml:"name,omitempty"`
	Description string    `yaml:"description,omitempty"`
	Tenors      []float64 `yaml:"tenors"`
	Rates       []float64 `yaml:"rates"`
}

type SimulationConfig struct {
	HorizonYears float64 `yaml:"horizon_years"`
	StepYears    float64 `yaml:"step_years"`
	Scenarios    int     `yaml:"scenarios"`
	Seed         uint64  `yaml:"seed"`
}

type HullWhiteConfig struct {
	MeanReversion float64 `yaml:"mean_reversion"`
	Volatility    float64 `yaml:"volatility"`
}

type AssetConfig struct {
	Premium    float64 `yaml:"premium"`
	Volatility float64 `yaml:"volatility"`
}

type AssetsConfig struct {
	DomesticEquity AssetConfig `yaml:"domestic_equity"`
	GlobalEquity   AssetConfig `yaml:"global_equity"`
	Housing        AssetConfig `yaml:"housing"`
}

// AllocationConfig selects the portfolio split. An explicit DomesticWeight
// wins over the preset named by Preset.
type AllocationConfig struct {
	Preset         string   `yaml:"preset"`
	DomesticWeight *float64 `yaml:"domestic_weight"`
}

// Default mirrors model.DefaultParams. The curve is left empty so a
// curve_file can fill it; ToModelParams falls back to the default curve.
func Default() Config {
	p := model.DefaultParams()
	return Config{
		Simulation: SimulationConfig{
			HorizonYears: p.HorizonYears,
			StepYears:    p.StepYears,
			Scenarios:    p.Scenarios,
			Seed:         p.Seed,
		},
		HullWhite: HullWhiteConfig{
			MeanReversion: p.MeanReversion,
			Volatility:    p.RateVolatility,
		},
		Assets: AssetsConfig{
			DomesticEquity: AssetConfig(p.Domestic),
			GlobalEquity:   AssetConfig(p.Global),
			Housing:        AssetConfig(p.Housing),
		},
		Correlation: p.CorrelationRows(),
		Allocation:  AllocationConfig{Preset: "balanced"},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If curve_file is set, load it and merge in any explicit overrides from c.Curve.
	if c.CurveFile != "" {
		curvePath := c.CurveFile
		if !filepath.IsAbs(curvePath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), curvePath)
			if _, err := os.Stat(cand); err == nil {
				curvePath = cand
			}
		}
		loaded, err := LoadCurveFile(curvePath)
		if err != nil {
			return nil, err
		}
		c.Curve = MergeCurve(loaded, c.Curve)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Correlation) != model.NumFactors {
		return fmt.Errorf("correlation: %w", &model.ParamError{
			Field:  "correlation",
			Reason: fmt.Sprintf("must have %d rows, got %d", model.NumFactors, len(c.Correlation)),
		})
	}
	for i, row := range c.Correlation {
		if len(row) != model.NumFactors {
			return fmt.Errorf("correlation: %w", &model.ParamError{
				Field:  fmt.Sprintf("correlation[%d]", i),
				Reason: fmt.Sprintf("must have %d columns, got %d", model.NumFactors, len(row)),
			})
		}
	}
	params, err := c.ToModelParams()
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	if _, err := curve.New(params.CurveTenors, params.CurveRates); err != nil {
		return fmt.Errorf("curve config invalid: %w", err)
	}
	return nil
}

// ToModelParams resolves the allocation preset and copies the config into
// simulation parameters. Correlation rows beyond 4×4 are ignored; Validate
// rejects them.
func (c *Config) ToModelParams() (model.Params, error) {
	p := model.DefaultParams()

	p.HorizonYears = c.Simulation.HorizonYears
	p.StepYears = c.Simulation.StepYears
	p.Scenarios = c.Simulation.Scenarios
	p.Seed = c.Simulation.Seed
	p.MeanReversion = c.HullWhite.MeanReversion
	p.RateVolatility = c.HullWhite.Volatility
	p.Domestic = model.AssetParams(c.Assets.DomesticEquity)
	p.Global = model.AssetParams(c.Assets.GlobalEquity)
	p.Housing = model.AssetParams(c.Assets.Housing)

	if len(c.Curve.Tenors) > 0 || len(c.Curve.Rates) > 0 {
		p.CurveTenors = append([]float64(nil), c.Curve.Tenors...)
		p.CurveRates = append([]float64(nil), c.Curve.Rates...)
	}

	for i := 0; i < model.NumFactors && i < len(c.Correlation); i++ {
		for j := 0; j < model.NumFactors && j < len(c.Correlation[i]); j++ {
			p.Correlation[i][j] = c.Correlation[i][j]
		}
	}

	switch {
	case c.Allocation.DomesticWeight != nil:
		p.DomesticWeight = *c.Allocation.DomesticWeight
	case c.Allocation.Preset != "":
		a, err := strategy.Lookup(c.Allocation.Preset)
		if err != nil {
			return model.Params{}, fmt.Errorf("allocation: %w", err)
		}
		p.DomesticWeight = a.DomesticWeight
	}
	return p, nil
}

type curveFileWrapper struct {
	Curve CurveConfig `yaml:"curve"`
}

// LoadCurveFile reads a curve preset file with a top-level `curve:` key.
func LoadCurveFile(path string) (CurveConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return CurveConfig{}, err
	}
	var w curveFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return CurveConfig{}, err
	}
	return w.Curve, nil
}

// MergeCurve overlays non-empty fields from override onto base.
// Tenors and rates are replaced as a whole, never element-wise.
func MergeCurve(base, override CurveConfig) CurveConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Description != "" {
		out.Description = override.Description
	}
	if len(override.Tenors) > 0 {
		out.Tenors = override.Tenors
	}
	if len(override.Rates) > 0 {
		out.Rates = override.Rates
	}
	return out
}
