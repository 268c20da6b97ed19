package core

import "errors"

var (
	// Input errors
	ErrInvalidRevision    = errors.New("invalid revision")
	ErrMalformedRefUpdate = errors.New("malformed ref update record")

	// Configuration errors
	ErrQuotePathDisabled = errors.New("core.quotepath is disabled")
)
