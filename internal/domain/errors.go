package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrTeamNotFound  = errors.New("team not found")

	ErrNoAttendees     = errors.New("no confirmed attendees")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidTeamSize = fmt.Errorf("%w: team size must be positive", ErrInvalidInput)

	// ErrConflict is surfaced when the storage still reports busy after
	// the driver's busy timeout has elapsed.
	ErrConflict = errors.New("concurrent modification")
)
