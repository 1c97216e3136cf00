package reports

import "errors"

// ErrNotFound is returned when no report exists for an ID.
var ErrNotFound = errors.New("report not found")
