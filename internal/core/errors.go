package core

import "errors"

var (
	// ErrOutOfRange reports a coordinate outside [0, N) or a linear index
	// outside [0, N*N).
	ErrOutOfRange = errors.New("cell out of range")
	// ErrInvalidSize reports a non-positive grid side or a seed buffer whose
	// length does not match the grid.
	ErrInvalidSize = errors.New("invalid grid size")
)
