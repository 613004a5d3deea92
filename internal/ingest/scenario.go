// Package ingest converts building scenario files into screening model
// inputs. Scenario files are YAML; they describe one building each and may
// carry a small block of model-coefficient overrides.
//
// Enum-like fields (system boundary, structural system) are hard errors
// when unrecognized: this is the input boundary where contract violations
// fail fast, before the pure engine runs.
package ingest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/klimatkalk/klimatkalk/internal/screening"
)

// Defaults applied when a scenario omits the field, matching the model's
// calibration assumptions.
const (
	defaultMethod        = screening.MethodPrefabConcrete
	defaultParkingRatio  = 0.5
	defaultAtempToBTA    = 0.90
	defaultApplicability = 1.0
)

// Scenario is the on-disk shape of one building description.
type Scenario struct {
	// Name labels the scenario in comparison output. Defaults to the file
	// name (without extension) when loaded from disk.
	Name string `yaml:"name"`

	// Boundary is "early-scope" or "extended-scope". Required.
	Boundary string `yaml:"boundary"`

	Geometry struct {
		FormFactor      float64 `yaml:"form_factor"`
		WindowRatio     float64 `yaml:"window_ratio"`
		Floors          int     `yaml:"floors"`
		BuildingHeightM float64 `yaml:"building_height_m"`
	} `yaml:"geometry"`

	Structure struct {
		// System is "concrete", "timber" or "steel". Defaults to concrete.
		System string `yaml:"system"`

		// Method names a construction method; unknown names fall back to
		// multiplier 1.0 inside the engine. Defaults to prefab-concrete.
		Method string `yaml:"method"`

		HeavyDesign bool `yaml:"heavy_design"`
	} `yaml:"structure"`

	Materials struct {
		ClimateImproved bool `yaml:"climate_improved"`

		// Applicability defaults to 1.0 when omitted.
		Applicability *float64 `yaml:"applicability"`
	} `yaml:"materials"`

	BelowGrade struct {
		Basement          bool `yaml:"basement"`
		UndergroundGarage bool `yaml:"underground_garage"`

		// ParkingRatio defaults to 0.5, AtempToBTA to 0.90.
		ParkingRatio *float64 `yaml:"parking_ratio"`
		AtempToBTA   *float64 `yaml:"atemp_to_bta"`
	} `yaml:"below_grade"`

	// TimberTPerM2 overrides the structural system's default timber mass
	// intensity (ton/m² BTA) when present.
	TimberTPerM2 *float64 `yaml:"timber_t_per_m2"`

	// Model overrides individual reference coefficients, the knobs the
	// model exposes for calibration.
	Model *ModelOverrides `yaml:"model"`
}

// ModelOverrides adjusts individual coefficients of the default model
// configuration. Only the set fields are applied.
type ModelOverrides struct {
	WindowToWallIntensityRatio *float64 `yaml:"window_to_wall_intensity_ratio"`
	GarageAddKgPerM2Atemp      *float64 `yaml:"garage_add_kg_per_m2_atemp"`
	BasementAddKgPerM2         *float64 `yaml:"basement_add_kg_per_m2"`
}

// ParseScenario decodes one scenario from YAML. Unknown top-level keys are
// rejected to catch typos in hand-written files.
func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// LoadScenario reads and decodes a scenario file. The scenario name
// defaults to the file's base name.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		base := filepath.Base(path)
		sc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sc, nil
}

// Inputs converts the scenario into engine inputs, applying defaults and
// rejecting unknown enum values.
func (s *Scenario) Inputs() (screening.ModelInputs, error) {
	boundary, err := screening.ParseBoundary(s.Boundary)
	if err != nil {
		return screening.ModelInputs{}, err
	}

	systemName := s.Structure.System
	if systemName == "" {
		systemName = string(screening.SystemConcrete)
	}
	system, err := screening.ParseStructuralSystem(systemName)
	if err != nil {
		return screening.ModelInputs{}, err
	}

	method := s.Structure.Method
	if method == "" {
		method = defaultMethod
	}

	in := screening.ModelInputs{
		SystemBoundary:               boundary,
		FormFactor:                   s.Geometry.FormFactor,
		WindowRatio:                  s.Geometry.WindowRatio,
		Floors:                       s.Geometry.Floors,
		BuildingHeightM:              s.Geometry.BuildingHeightM,
		StructuralSystem:             system,
		Method:                       method,
		HeavyStructuralDesign:        s.Structure.HeavyDesign,
		ClimateImprovedMaterials:     s.Materials.ClimateImproved,
		ClimateImprovedApplicability: valueOr(s.Materials.Applicability, defaultApplicability),
		Basement:                     s.BelowGrade.Basement,
		UndergroundGarage:            s.BelowGrade.UndergroundGarage,
		ParkingRatio:                 valueOr(s.BelowGrade.ParkingRatio, defaultParkingRatio),
		AtempToBTA:                   valueOr(s.BelowGrade.AtempToBTA, defaultAtempToBTA),
		TimberTPerM2Override:         s.TimberTPerM2,
	}
	return in, nil
}

// Config builds the model configuration for this scenario: the defaults
// with any overrides applied, re-validated afterwards.
func (s *Scenario) Config() (screening.ModelConfig, error) {
	cfg := screening.DefaultConfig()
	if s.Model != nil {
		if s.Model.WindowToWallIntensityRatio != nil {
			cfg = cfg.WithWindowToWallRatio(*s.Model.WindowToWallIntensityRatio)
		}
		if s.Model.GarageAddKgPerM2Atemp != nil {
			cfg = cfg.WithGarageAdd(*s.Model.GarageAddKgPerM2Atemp)
		}
		if s.Model.BasementAddKgPerM2 != nil {
			cfg = cfg.WithBasementAdd(*s.Model.BasementAddKgPerM2)
		}
	}
	if err := cfg.Validate(); err != nil {
		return screening.ModelConfig{}, fmt.Errorf("scenario model overrides: %w", err)
	}
	return cfg, nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
