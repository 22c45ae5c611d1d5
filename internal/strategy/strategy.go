package strategy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"funding-sim/internal/model"
)

// Allocation splits the invested portfolio between domestic and global equity.
// The global share is always 1 - DomesticWeight.
type Allocation struct {
	Name           string  `json:"name" yaml:"name"`
	Description    string  `json:"description,omitempty" yaml:"description,omitempty"`
	DomesticWeight float64 `json:"domestic_weight" yaml:"domestic_weight"`
}

func (a Allocation) GlobalWeight() float64 { return 1 - a.DomesticWeight }

func (a Allocation) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("allocation name is required")
	}
	if !(a.DomesticWeight >= 0 && a.DomesticWeight <= 1) {
		return &model.ParamError{
			Field:  "allocations." + a.Name + ".domestic_weight",
			Reason: fmt.Sprintf("must be in [0, 1], got %v", a.DomesticWeight),
		}
	}
	return nil
}

var presets = map[string]Allocation{
	"balanced": {
		Name:           "balanced",
		Description:    "50/50 split between domestic and global equity.",
		DomesticWeight: 0.5,
	},
	"global": {
		Name:           "global",
		Description:    "Fully invested in global equity.",
		DomesticWeight: 0,
	},
	"domestic": {
		Name:           "domestic",
		Description:    "Fully invested in domestic equity.",
		DomesticWeight: 1,
	},
}

// Presets returns the built-in allocations sorted by name.
func Presets() []Allocation {
	out := make([]Allocation, 0, len(presets))
	for _, a := range presets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a preset by name (case-insensitive).
func Lookup(name string) (Allocation, error) {
	a, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Allocation{}, fmt.Errorf("unknown allocation: %s", name)
	}
	return a, nil
}

// DemoAllocations is the reference comparison: 50/50 against fully global.
func DemoAllocations() []Allocation {
	return []Allocation{presets["balanced"], presets["global"]}
}
