package fixture

import (
	"errors"
	"fmt"
)

// Error codes for fixture loading.
const (
	ErrCodeRead          = "F001" // File could not be read
	ErrCodeParse         = "F002" // Invalid YAML
	ErrCodeSchema        = "F003" // CUE schema violation
	ErrCodeDecode        = "F004" // Entry could not be turned into a value
	ErrCodeDuplicateName = "F005" // Two entries share a name
)

// LoadError describes why a fixture file was rejected.
type LoadError struct {
	Code    string
	Message string
	Entry   string // Entry name or "#index", empty for file-level errors
	Err     error
}

func (e *LoadError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("%s: entry %s: %s", e.Code, e.Entry, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var (
	// ErrUnknownKind is returned for an entry kind that names no value kind.
	ErrUnknownKind = errors.New("unknown kind")

	// ErrInvalidLiteral is returned when a literal does not fit its kind.
	ErrInvalidLiteral = errors.New("invalid literal")

	// ErrMixedCRS is returned when encoding a geometry array whose points
	// do not share a coordinate reference system.
	ErrMixedCRS = errors.New("geometry array mixes coordinate reference systems")
)
