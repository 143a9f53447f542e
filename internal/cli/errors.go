package cli

// Error codes for CLI output. Fixture load errors keep their own F-codes
// (see fixture.LoadError).
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeUnknownValue = "E002" // No fixture entry with the given name
	ErrCodePrecedence   = "E003" // Invalid --precedence
	ErrCodeNotEqual     = "E004" // equal --check on unequal values
	ErrCodeStore        = "E005" // Database open/read/write error
	ErrCodeEncode       = "E006" // Value cannot be persisted
	ErrCodeScenario     = "E007" // Scenario cannot be loaded or run
)
