package screening

// Pipeline constants. These are fixed model behavior, not calibration
// knobs, so they live here rather than in ModelConfig.
const (
	// ReferenceThresholdKgPerM2 is the rounded reference/limit value for
	// multi-family buildings (kg CO2e/m² BTA) that every estimate is
	// compared against. Boverket rounds the KTH median 373 up to 375.
	ReferenceThresholdKgPerM2 = 375.0

	// refFloorHeightM is the assumed typical floor-to-floor height used to
	// derive the envelope floor-height factor.
	refFloorHeightM = 2.8

	// floorHeightFactorMin and floorHeightFactorMax clamp the floor-height
	// factor so an unusual height input cannot dominate the envelope term.
	floorHeightFactorMin = 0.8
	floorHeightFactorMax = 1.3

	// lowRisePivotFloors is the floor count below which the low-rise
	// correction applies; lowRiseStep is the per-missing-floor surcharge on
	// the foundation and envelope categories.
	lowRisePivotFloors = 4
	lowRiseStep        = 0.05

	// heavyDesignMultiplier is the surcharge for heavy structural design,
	// e.g. massive shell walls.
	heavyDesignMultiplier = 1.10

	// refParkingRatio is the parking ratio the garage add-on schedule is
	// calibrated at.
	refParkingRatio = 0.5

	// kgPerTon converts kg CO2e to metric tons.
	kgPerTon = 1000.0
)

// Structural-system multipliers applied to the structure-related categories.
// Timber frames score clearly lower than concrete/steel in the KTH reference
// study; the size of the reduction differs per system boundary.
const (
	timberStructMultEarly    = 0.47
	timberStructMultExtended = 0.51
	steelStructMult          = 1.05
	concreteStructMult       = 1.00
)

// Construction-method identifiers matching the keys of the default method
// multiplier table.
const (
	MethodPrefabConcrete           = "prefab-concrete"
	MethodCastInPlaceInfill        = "cast-in-place-infill"
	MethodCastInPlacePermanentForm = "cast-in-place-permanent-form"
	MethodTimberVolumeElement      = "timber-volume-element"
	MethodCLTMassiveFrame          = "clt-massive-frame"
)
