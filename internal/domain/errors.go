package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("conflict")
	ErrValidation     = errors.New("validation failed")
	ErrTransientStore = errors.New("store unavailable")

	// ErrInvalidTransition is a Conflict: the entity is no longer in a state that allows the move.
	ErrInvalidTransition = fmt.Errorf("%w: invalid state transition", ErrConflict)
	// ErrStaleVersion reports a conditional update whose precondition no longer held.
	ErrStaleVersion = fmt.Errorf("%w: row changed concurrently", ErrConflict)
)
