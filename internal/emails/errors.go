package emails

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrConnectorUnavailable = errors.New("proofing connector unavailable")
)
