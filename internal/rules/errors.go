package rules

import "errors"

var (
	// ErrNotFound is returned when no rule configuration exists for an ID.
	ErrNotFound = errors.New("rule configuration not found")

	// ErrInvalidConfig is returned when an update fails validation.
	ErrInvalidConfig = errors.New("invalid rule configuration")
)
