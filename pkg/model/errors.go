package model

import "errors"

// Sentinel errors shared by the domain types and the packages that consume them.
var (
	// ErrNilAssignment indicates a required *Assignment reference was nil.
	ErrNilAssignment = errors.New("model: assignment is nil")

	// ErrInvalidTime indicates a value outside the representable clock range.
	ErrInvalidTime = errors.New("model: invalid time of day")

	// ErrInvalidWeekday indicates a day name outside the closed weekday set.
	ErrInvalidWeekday = errors.New("model: invalid weekday")

	// ErrInvalidPairKey indicates a malformed "<low>-<high>" conflict key.
	ErrInvalidPairKey = errors.New("model: invalid pair key")

	// ErrValidation wraps a failed structural validation of a domain record.
	ErrValidation = errors.New("model: validation failed")
)
