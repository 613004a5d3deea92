package screening

// Estimate runs the screening pipeline for one building and returns the
// fully populated result. cfg may be nil, in which case DefaultConfig is
// used.
//
// The pipeline is deterministic and order-dependent: baseline split,
// envelope scaling, low-rise correction, structural method scaling,
// below-grade add-ons, climate-improved reduction, then totals and the
// reference comparison. Out-of-range inputs never abort the computation;
// they are clamped or flagged via advisory notes.
func Estimate(in ModelInputs, cfg *ModelConfig) ModelResult {
	if cfg == nil {
		defaults := DefaultConfig()
		cfg = &defaults
	}
	notes := ValidateInputs(in)

	boundary := in.SystemBoundary
	baseline := cfg.BaselineKgPerM2[boundary]
	shares := cfg.Shares[boundary]

	// 1) Baseline contribution per building part (kg CO2e/m² BTA).
	// Local accumulator, rebuilt fresh per call and mutated step by step.
	breakdown := make(map[Category]float64, len(shares))
	for category, share := range shares {
		breakdown[category] = baseline * share
	}

	// 2) Geometry: the form factor governs the envelope (incl. insulation).
	if _, ok := breakdown[CategoryEnvelope]; ok {
		formFactorScale := in.FormFactor / cfg.RefFormFactor

		// Taller floors mean more facade area per m² BTA. Only applied when
		// the building height is known.
		heightFactor := 1.0
		if in.BuildingHeightM > 0 && in.Floors > 0 {
			floorHeight := in.BuildingHeightM / float64(in.Floors)
			heightFactor = clamp(floorHeight/refFloorHeightM, floorHeightFactorMin, floorHeightFactorMax)
		}

		// Glazing is assumed r times more carbon-intensive per m² than
		// opaque wall; rescale the envelope for the glazed share relative
		// to the reference mix.
		r := cfg.WindowToWallIntensityRatio
		w := in.WindowRatio
		w0 := cfg.RefWindowRatio
		windowMixFactor := (w*r + (1-w)*1.0) / (w0*r + (1-w0)*1.0)

		breakdown[CategoryEnvelope] *= formFactorScale * heightFactor * windowMixFactor
	}

	// 3) Low buildings carry more foundation and envelope area per m² BTA;
	// apply a mild correction below the pivot floor count.
	if in.Floors < lowRisePivotFloors {
		lowRiseFactor := 1.0 + lowRiseStep*float64(lowRisePivotFloors-in.Floors)
		if _, ok := breakdown[CategoryFoundation]; ok {
			breakdown[CategoryFoundation] *= lowRiseFactor
		}
		if _, ok := breakdown[CategoryEnvelope]; ok {
			breakdown[CategoryEnvelope] *= lowRiseFactor
		}
	}

	// 4) Frame and method choice dominate the structure-related parts.
	methodMult := 1.0
	if factor, ok := cfg.MethodMultiplier[in.Method]; ok {
		methodMult = factor
	}
	heavyMult := 1.0
	if in.HeavyStructuralDesign {
		heavyMult = heavyDesignMultiplier
	}
	systemMult := structuralSystemMultiplier(in.StructuralSystem, boundary)

	for _, category := range []Category{CategoryStructure, CategoryFoundation, CategoryInteriorWalls} {
		if _, ok := breakdown[category]; ok {
			breakdown[category] *= methodMult * heavyMult * systemMult
		}
	}

	// 5) Below grade: basement and underground garage are additive
	// schedules on the foundation.
	if in.Basement {
		breakdown[CategoryFoundation] += cfg.BasementAddKgPerM2
	}
	if in.UndergroundGarage {
		addKg := cfg.GarageAddKgPerM2Atemp * in.AtempToBTA * (in.ParkingRatio / refParkingRatio)
		breakdown[CategoryFoundation] += addKg
	}

	// 6) Climate-improved materials reduce the concrete/metal-dominated
	// parts, scaled by how far the current total has drifted from the
	// baseline and by the applicability fraction.
	if in.ClimateImprovedMaterials {
		applyClimateImprovement(breakdown, in, cfg, boundary, &notes)
	}

	// 7) Totals.
	total := 0.0
	for _, v := range breakdown {
		total += v
	}

	// 8) Timber mass: override wins when provided, floor at zero.
	var timberTon float64
	if in.TimberTPerM2Override != nil {
		timberTon = max(0.0, *in.TimberTPerM2Override)
	} else {
		timberTon = cfg.TimberTonPerM2Default[in.StructuralSystem]
	}

	// 9) Reference comparison.
	delta := total - ReferenceThresholdKgPerM2
	deltaPct := delta / ReferenceThresholdKgPerM2 * 100.0

	return ModelResult{
		TotalKgPerM2:     total,
		TotalTonPerM2:    total / kgPerTon,
		ReferenceKgPerM2: ReferenceThresholdKgPerM2,
		DeltaKg:          delta,
		DeltaPercent:     deltaPct,
		Breakdown:        breakdown,
		TimberTonPerM2:   timberTon,
		Notes:            notes,
	}
}

// structuralSystemMultiplier returns the factor applied to the
// structure-related categories for the chosen frame material.
func structuralSystemMultiplier(system StructuralSystem, boundary SystemBoundary) float64 {
	switch system {
	case SystemTimber:
		if boundary == BoundaryExtended {
			return timberStructMultExtended
		}
		return timberStructMultEarly
	case SystemSteel:
		return steelStructMult
	default:
		return concreteStructMult
	}
}

// applyClimateImprovement distributes the generic-vs-improved baseline gap
// as a reduction across the structure, foundation and envelope categories,
// proportional to each one's current share of their combined sum. Reduced
// categories floor at zero. When the guards fail the reduction is skipped
// and an advisory note is appended instead.
func applyClimateImprovement(
	breakdown map[Category]float64,
	in ModelInputs,
	cfg *ModelConfig,
	boundary SystemBoundary,
	notes *[]string,
) {
	genericBaseline := cfg.BaselineKgPerM2[boundary]
	improvedBaseline := cfg.ImprovedBaselineKgPerM2[boundary]
	diff := max(0.0, genericBaseline-improvedBaseline)

	affected := []Category{CategoryStructure, CategoryFoundation, CategoryEnvelope}
	affectedSum := 0.0
	for _, category := range affected {
		affectedSum += breakdown[category]
	}
	totalPre := 0.0
	for _, v := range breakdown {
		totalPre += v
	}

	if totalPre <= 0 || affectedSum <= 0 || genericBaseline <= 0 {
		*notes = append(*notes, "could not apply climate-improved reduction (zero or negative part contributions)")
		return
	}

	scale := totalPre / genericBaseline
	targetReduction := diff * scale * in.ClimateImprovedApplicability

	for _, category := range affected {
		if current, ok := breakdown[category]; ok {
			reduced := current - targetReduction*(current/affectedSum)
			breakdown[category] = max(0.0, reduced)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
