package model

import "fmt"

// Asset identifies one of the three simulated price indices.
// Keep these values stable; they are used as CSV column prefixes and JSON keys.
type Asset string

const (
	AssetDomesticEquity Asset = "domestic_equity"
	AssetGlobalEquity   Asset = "global_equity"
	AssetHousing        Asset = "housing"
)

// Assets lists the simulated assets in factor order.
var Assets = []Asset{AssetDomesticEquity, AssetGlobalEquity, AssetHousing}

// Factor columns of the correlation matrix and of every shock batch.
const (
	FactorRate = iota
	FactorDomesticEquity
	FactorGlobalEquity
	FactorHousing

	NumFactors
)

// Factor returns the correlation/shock column driving the asset.
func (a Asset) Factor() int {
	switch a {
	case AssetDomesticEquity:
		return FactorDomesticEquity
	case AssetGlobalEquity:
		return FactorGlobalEquity
	case AssetHousing:
		return FactorHousing
	default:
		panic(unknownAsset(a))
	}
}

func unknownAsset(a Asset) string {
	return fmt.Sprintf("model: unknown asset %q", string(a))
}

// AssetParams parameterizes one geometric asset leg.
// Drift per step is the current short rate plus Premium.
type AssetParams struct {
	Premium    float64
	Volatility float64
}
