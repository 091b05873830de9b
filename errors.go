package vanity

import "errors"

// Only ErrInvalidArgument and ErrUnavailableAlgorithm prevent a generator
// from starting; every other steady-state condition is handled locally by a
// worker and never surfaces here.
var (
	// ErrInvalidArgument is returned from NewGenerator when the pattern,
	// findKeys, or thread count preconditions are violated.
	ErrInvalidArgument = errors.New("vanity: invalid argument")

	// ErrUnavailableAlgorithm is returned from NewGenerator when the
	// configured randomness source cannot be instantiated.
	ErrUnavailableAlgorithm = errors.New("vanity: algorithm unavailable")

	// ErrInterrupted is returned from Take when its context is cancelled
	// before a result arrives. It never stops the underlying workers.
	ErrInterrupted = errors.New("vanity: interrupted")
)
