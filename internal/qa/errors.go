package qa

import "errors"

var (
	// ErrEmptyContent is returned when an email has no HTML content to analyze.
	ErrEmptyContent = errors.New("email has no html content")

	// ErrScoringInvariant is returned when the computed score falls outside
	// its valid range. It indicates a defect, not bad input; the run aborts
	// rather than returning a corrupted report.
	ErrScoringInvariant = errors.New("scoring invariant violated")
)
