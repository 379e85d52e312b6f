package dta

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVersion indicates that a requested format version cannot
// encode the given schema, or is not a version this writer emits. It is
// the one error class a fixture suite treats as non-fatal; anything else
// returned by the writer is a real write failure.
var ErrUnsupportedVersion = errors.New("dta: unsupported format version")

// UnsupportedVersionError reports which version was requested and why it
// cannot be used. It unwraps to ErrUnsupportedVersion so callers can
// classify it with errors.Is.
type UnsupportedVersionError struct {
	// Version is the requested format version
	Version int
	// Reason describes the capability that is missing
	Reason string
}

// Error implements the error interface
func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("dta: version %d: %s", e.Version, e.Reason)
}

// Unwrap makes the error match ErrUnsupportedVersion via errors.Is
func (e *UnsupportedVersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// unsupportedVersion creates an UnsupportedVersionError
func unsupportedVersion(version int, format string, args ...any) error {
	return &UnsupportedVersionError{
		Version: version,
		Reason:  fmt.Sprintf(format, args...),
	}
}
