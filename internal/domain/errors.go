package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow indicates a session whose end is not after its start.
	ErrInvalidWindow = errors.New("invalid session window")

	// ErrUnplaceableTalk indicates a talk longer than every session of a track.
	ErrUnplaceableTalk = errors.New("talk cannot be placed in any session")
)

// UnplaceableTalkError identifies the talk that could not be scheduled.
type UnplaceableTalkError struct {
	Talk Talk
}

func (e *UnplaceableTalkError) Error() string {
	return fmt.Sprintf("%s: %q (%s)", ErrUnplaceableTalk, e.Talk.Description, e.Talk.Label())
}

func (e *UnplaceableTalkError) Unwrap() error {
	return ErrUnplaceableTalk
}
