package storage

import "errors"

var (
	// ErrNotFound is returned when an operation references an id that does
	// not exist. Callers surface it; nothing is silently fabricated.
	ErrNotFound = errors.New("record not found")

	// ErrNotLoaded is returned when the store is used before Init or Load.
	ErrNotLoaded = errors.New("storage not loaded")
)
