package store

import "errors"

var (
	// ErrNotFound is returned when a requested document doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingID is returned when a record arrives without an identity.
	ErrMissingID = errors.New("missing id")
)
