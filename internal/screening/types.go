// Package screening implements a parametric screening model for the
// embodied-carbon footprint (life-cycle modules A1-A5) of multi-family
// residential buildings, expressed per m² gross floor area (BTA).
//
// The model starts from a reference baseline intensity for the chosen
// system boundary, splits it across coarse building-part categories, and
// scales the relevant categories by geometry, structural system, and
// material choices. It is a fast early-design approximation, not a
// substitute for a project LCA or a certified climate declaration.
//
// Estimate is a pure function: it performs no I/O, holds no state between
// calls, and is safe to invoke concurrently from multiple goroutines.
package screening

import "fmt"

// SystemBoundary selects which reference baseline and category-share table
// applies. It is fixed for the lifetime of one estimate.
type SystemBoundary string

const (
	// BoundaryEarly is the narrower system boundary (2022 declaration rules).
	BoundaryEarly SystemBoundary = "early-scope"

	// BoundaryExtended is the wider system boundary (2027 declaration rules),
	// which additionally covers interior finishes and installations.
	BoundaryExtended SystemBoundary = "extended-scope"
)

// StructuralSystem identifies the load-bearing frame material. It determines
// the default timber mass intensity and a structural multiplier.
type StructuralSystem string

const (
	SystemConcrete StructuralSystem = "concrete"
	SystemTimber   StructuralSystem = "timber"
	SystemSteel    StructuralSystem = "steel"
)

// Category is a coarse building-part category in the emissions breakdown.
type Category string

const (
	CategoryStructure     Category = "structure"
	CategoryFoundation    Category = "foundation"
	CategoryEnvelope      Category = "envelope"
	CategoryInteriorWalls Category = "interior-walls"

	// CategoryFinishes covers interior finishes and installations. It only
	// appears in the extended system boundary.
	CategoryFinishes Category = "finishes-installations"
)

// CategoryOrder returns the canonical display order for breakdown categories.
// Breakdown maps iterate in arbitrary order; renderers use this to keep
// output stable.
func CategoryOrder() []Category {
	return []Category{
		CategoryStructure,
		CategoryFoundation,
		CategoryEnvelope,
		CategoryInteriorWalls,
		CategoryFinishes,
	}
}

// ParseBoundary converts a scenario string into a SystemBoundary.
// Unknown values are a contract violation at the input boundary and are
// rejected rather than defaulted.
func ParseBoundary(s string) (SystemBoundary, error) {
	switch SystemBoundary(s) {
	case BoundaryEarly, BoundaryExtended:
		return SystemBoundary(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBoundary, s)
	}
}

// ParseStructuralSystem converts a scenario string into a StructuralSystem.
func ParseStructuralSystem(s string) (StructuralSystem, error) {
	switch StructuralSystem(s) {
	case SystemConcrete, SystemTimber, SystemSteel:
		return StructuralSystem(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSystem, s)
	}
}

// ModelInputs describes one building for one estimate. Values are used
// as given; out-of-range values produce advisory notes but never abort
// the computation.
type ModelInputs struct {
	SystemBoundary SystemBoundary `json:"system_boundary" yaml:"system_boundary"`

	// FormFactor is the envelope-to-floor-area ratio (Aom/BTA).
	FormFactor float64 `json:"form_factor" yaml:"form_factor"`

	// WindowRatio is the glazed share of the facade area (0-1).
	WindowRatio float64 `json:"window_ratio" yaml:"window_ratio"`

	// Floors is the number of floors above ground.
	Floors int `json:"floors" yaml:"floors"`

	// BuildingHeightM is the total building height in meters. Zero means
	// unknown; the floor-height adjustment is then skipped.
	BuildingHeightM float64 `json:"building_height_m,omitempty" yaml:"building_height_m,omitempty"`

	StructuralSystem StructuralSystem `json:"structural_system" yaml:"structural_system"`

	// Method is the construction method, matched against the config's
	// multiplier table. Unrecognized methods fall back to factor 1.0.
	Method string `json:"method" yaml:"method"`

	// HeavyStructuralDesign marks e.g. massive shell walls (+10% on the
	// structure-related categories).
	HeavyStructuralDesign bool `json:"heavy_structural_design" yaml:"heavy_structural_design"`

	ClimateImprovedMaterials bool `json:"climate_improved_materials" yaml:"climate_improved_materials"`

	// ClimateImprovedApplicability (0-1) scales how much of the generic vs.
	// climate-improved baseline gap the project can actually realize.
	ClimateImprovedApplicability float64 `json:"climate_improved_applicability" yaml:"climate_improved_applicability"`

	Basement          bool    `json:"basement" yaml:"basement"`
	UndergroundGarage bool    `json:"underground_garage" yaml:"underground_garage"`
	ParkingRatio      float64 `json:"parking_ratio" yaml:"parking_ratio"`

	// AtempToBTA converts the garage schedule from heated floor area to
	// gross floor area.
	AtempToBTA float64 `json:"atemp_to_bta" yaml:"atemp_to_bta"`

	// TimberTPerM2Override replaces the structural system's default timber
	// mass intensity (ton/m² BTA) when set. Negative overrides clamp to 0.
	TimberTPerM2Override *float64 `json:"timber_t_per_m2_override,omitempty" yaml:"timber_t_per_m2_override,omitempty"`
}

// ModelResult is the outcome of one estimate. It is fully populated on
// every call; Notes may be empty.
type ModelResult struct {
	// TotalKgPerM2 is total emissions in kg CO2e per m² BTA.
	TotalKgPerM2 float64 `json:"total_kg_per_m2_bta"`

	// TotalTonPerM2 is TotalKgPerM2 expressed in metric tons.
	TotalTonPerM2 float64 `json:"total_t_per_m2_bta"`

	// ReferenceKgPerM2 is the fixed reference threshold the total is
	// compared against.
	ReferenceKgPerM2 float64 `json:"reference_kg_per_m2_bta"`

	// DeltaKg is total minus reference; negative means below the threshold.
	DeltaKg float64 `json:"delta_vs_reference_kg"`

	// DeltaPercent is DeltaKg relative to the reference, in percent.
	DeltaPercent float64 `json:"delta_vs_reference_percent"`

	// Breakdown maps each building-part category to its kg CO2e/m² BTA
	// contribution.
	Breakdown map[Category]float64 `json:"breakdown_kg_per_m2_bta"`

	// TimberTonPerM2 is the estimated timber mass in ton/m² BTA.
	TimberTonPerM2 float64 `json:"timber_t_per_m2_bta"`

	// Notes holds advisory diagnostics in the order they were produced.
	Notes []string `json:"notes,omitempty"`
}
