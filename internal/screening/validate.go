package screening

// ValidateInputs checks the inputs against the ranges the model is
// calibrated for and returns an ordered list of advisory notes.
//
// These are soft warnings, not failures: estimation always proceeds with
// the values as given, and the pipeline is robust to out-of-range numbers.
func ValidateInputs(in ModelInputs) []string {
	var notes []string
	if in.FormFactor < 0.2 || in.FormFactor > 1.5 {
		notes = append(notes, "form factor appears to be outside the normal range (0.2-1.5)")
	}
	if in.WindowRatio < 0.0 || in.WindowRatio > 0.9 {
		notes = append(notes, "window ratio should be between 0 and 0.9")
	}
	if in.Floors < 1 {
		notes = append(notes, "floor count must be at least 1")
	}
	if in.ParkingRatio < 0.0 || in.ParkingRatio > 2.0 {
		notes = append(notes, "parking ratio should normally be between 0 and 2")
	}
	if in.AtempToBTA < 0.7 || in.AtempToBTA > 1.0 {
		notes = append(notes, "Atemp/BTA ratio should normally be between 0.7 and 1.0")
	}
	if in.ClimateImprovedApplicability < 0 || in.ClimateImprovedApplicability > 1 {
		notes = append(notes, "climate-improved applicability must be within 0..1")
	}
	return notes
}
