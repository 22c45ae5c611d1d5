package data

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"funding-sim/internal/config"
	"funding-sim/internal/curve"
)

var log = logrus.WithField("component", "data")

// CurvePreset is a named forward curve found on disk.
type CurvePreset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	File        string    `json:"file"`
	Tenors      []float64 `json:"tenors"`
	Rates       []float64 `json:"rates"`
}

// ResolveCurveDir turns dir into an absolute path, defaulting to examples/curves
// under the working directory when dir is empty.
func ResolveCurveDir(dir string) string {
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, "examples", "curves")
		} else {
			dir = "./examples/curves"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// ListCurves loads every *.yaml curve preset in dir, sorted by ID.
// Files that fail to parse or describe an invalid curve are skipped.
// A missing directory yields an empty list.
func ListCurves(dir string) ([]CurvePreset, error) {
	presets := []CurvePreset{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("curve directory does not exist: %s", dir)
			return presets, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		p, err := loadCurvePreset(path, entry.Name())
		if err != nil {
			log.WithError(err).Warnf("skipping curve file %s", path)
			continue
		}
		presets = append(presets, *p)
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	log.Debugf("found %d curve presets in %s", len(presets), dir)
	return presets, nil
}

// FindCurve returns the preset whose ID is id.
func FindCurve(dir, id string) (*CurvePreset, error) {
	path := filepath.Join(dir, filepath.Base(id)+".yaml")
	return loadCurvePreset(path, filepath.Base(path))
}

func loadCurvePreset(path, filename string) (*CurvePreset, error) {
	cc, err := config.LoadCurveFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := curve.New(cc.Tenors, cc.Rates); err != nil {
		return nil, err
	}

	// "base.yaml" -> "base"
	id := strings.TrimSuffix(filename, ".yaml")
	name := cc.Name
	if name == "" {
		name = id
	}
	return &CurvePreset{
		ID:          id,
		Name:        name,
		Description: cc.Description,
		File:        path,
		Tenors:      cc.Tenors,
		Rates:       cc.Rates,
	}, nil
}
