package FieldSolver

import "errors"

// Both errors are fatal for a run: retrying with the same configuration
// gives the same result. They are returned before any field is touched.
var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrPMLNotSupported  = errors.New("PML are not implemented in cylindrical geometry")
)
