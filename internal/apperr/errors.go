// Package apperr defines the sentinel errors shared by the calendar engine
// and the layers that expose it.
package apperr

import "errors"

var (
	// ErrInvalidDateFormat is returned when a date string does not match YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrInvalidDate is returned for structurally impossible dates and for
	// dates outside the supported calendar range.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidUnit is returned for an unrecognized arithmetic unit.
	ErrInvalidUnit = errors.New("invalid unit")
	// ErrIndexOutOfRange indicates a table lookup with an out of bounds index.
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidLang     = errors.New("invalid language")
	ErrInvalidKind     = errors.New("invalid calendar type")
)

// IsInput reports whether err was caused by caller supplied input rather
// than by a bug or bad label data.
func IsInput(err error) bool {
	return errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidUnit) ||
		errors.Is(err, ErrInvalidLang) ||
		errors.Is(err, ErrInvalidKind)
}
