package simulation

import (
	"encoding/csv"
	"os"
	"strconv"

	"funding-sim/internal/model"
)

// WriteSamplesCSV writes one row per scenario with the terminal state and funding ratio.
func WriteSamplesCSV(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"scenario",
		"terminal_rate",
		"domestic_equity",
		"global_equity",
		"housing",
		"funding_ratio",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	rates := res.TerminalRates()
	domestic := res.Terminal(model.AssetDomesticEquity)
	global := res.Terminal(model.AssetGlobalEquity)
	housing := res.Terminal(model.AssetHousing)

	for i, fr := range res.FundingRatios {
		row := []string{
			strconv.Itoa(i),
			fmtFloat(rates[i]),
			fmtFloat(domestic[i]),
			fmtFloat(global[i]),
			fmtFloat(housing[i]),
			fmtFloat(fr),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WritePathsCSV writes the full grid in long format: one row per (scenario, step).
func WritePathsCSV(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"scenario",
		"step",
		"t",
		"rate",
		"domestic_equity",
		"global_equity",
		"housing",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	p := res.Paths
	for i := 0; i < res.Scenarios(); i++ {
		for k, t := range res.TimeGrid {
			row := []string{
				strconv.Itoa(i),
				strconv.Itoa(k),
				fmtFloat(t),
				fmtFloat(p.Rate.At(i, k)),
				fmtFloat(p.Domestic.At(i, k)),
				fmtFloat(p.Global.At(i, k)),
				fmtFloat(p.Housing.At(i, k)),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
