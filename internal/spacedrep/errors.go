package spacedrep

import "errors"

var (
	// ErrNotFound is returned when moving a question the scheduler never tracked.
	ErrNotFound = errors.New("spacedrep: question not tracked")

	// ErrAlreadyTracked is returned when adding a question that already has a tier.
	ErrAlreadyTracked = errors.New("spacedrep: question already tracked")
)
