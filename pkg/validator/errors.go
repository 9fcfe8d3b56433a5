package validator

import "errors"

// Programmer errors, raised as panics.
var (
	ErrNilFactory   = errors.New("validator: nil factory")
	ErrNilPredicate = errors.New("validator: nil predicate")
	ErrNoRule       = errors.New("validator: no rule registered on this chain")
)

// ErrInvalidCatalog is returned by LoadCatalog for malformed documents.
var ErrInvalidCatalog = errors.New("validator: invalid message catalog")
