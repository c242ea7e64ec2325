package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a record with the same unique key already exists.
	ErrDuplicate = errors.New("record already exists")
)
