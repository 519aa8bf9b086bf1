package catalog

import "errors"

var (
	// ErrNotFound is returned when a program, subject or instructor does not exist.
	ErrNotFound = errors.New("catalog entry not found")
	// ErrConflict is returned when a unique code or email is already registered.
	ErrConflict = errors.New("catalog entry already exists")
)
