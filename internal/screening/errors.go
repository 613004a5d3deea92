package screening

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for configuration and input-boundary validation.
// Compare with errors.Is().
var (
	// ErrUnknownBoundary indicates a system boundary outside the known set.
	ErrUnknownBoundary = constError("unknown system boundary")

	// ErrUnknownSystem indicates a structural system outside the known set.
	ErrUnknownSystem = constError("unknown structural system")

	// ErrShareSum indicates a category-share table that does not sum to 1.0.
	ErrShareSum = constError("category shares do not sum to 1.0")

	// ErrNonPositiveBaseline indicates a baseline intensity that is zero or
	// negative.
	ErrNonPositiveBaseline = constError("baseline intensity must be positive")
)
