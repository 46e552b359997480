package ports

import "errors"

var (
	// ErrNotFound signals that the target record does not exist in the
	// primary datastore. Callers must not touch the cache when they see it.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden signals that the record exists but is owned by a
	// different principal. The check runs before any mutation.
	ErrForbidden = errors.New("record owned by another user")
)
