package repository

import "errors"

// Validation failures shared by implementations. Handlers map these to 4xx
// responses; nothing is written to the store when they are returned.
var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrDuplicateEmail = errors.New("email already registered")
)
