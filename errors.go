package vectra

// Error message formats used when wrapping configuration and loader
// errors with github.com/pkg/errors. Kept as package constants, in the
// teacher's style, instead of building ad hoc messages at each call site.
const (
	IntKeyNotFoundError = "key %d not found"
	IntKeyExistsError   = "key %d already exists"

	UnrecognizedKeywordError = "unrecognized keyword %q for %s"

	InvalidFloatParameterError  = "invalid %s %f: %s"
	InvalidIntParameterError    = "invalid %s %d: %s"
	InvalidStringParameterError = "invalid %s %q: %s"

	GridDimensionMismatchError = "grid dimension mismatch: %s has %d cells, expected %d"
	StageCountExceedsMaxError  = "%s stage count %d exceeds static maximum %d"
	FileParsingError           = "error parsing line %d: %s"

	// Used only in tests, to report a mismatch between an expected and
	// observed value.
	UnequalFloatParameterError = "expected %s %f, instead got %f"
	UnequalIntParameterError   = "expected %s %d, instead got %d"
	UnequalBoolParameterError  = "expected %s %t, instead got %t"
)
