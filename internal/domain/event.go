package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID        uuid.UUID
	Title     string
	Location  string
	StartTime time.Time // zero value means unscheduled
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

// StartOrFarFuture returns the event start, pushing unscheduled events
// past every scheduled one for ordering.
func (e Event) StartOrFarFuture() time.Time {
	if e.StartTime.IsZero() {
		return time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	return e.StartTime
}

type RsvpStatus string

const (
	RsvpYes RsvpStatus = "yes"
	RsvpNo  RsvpStatus = "no"
)

func (s RsvpStatus) Valid() bool {
	return s == RsvpYes || s == RsvpNo
}

type Rsvp struct {
	EventID     uuid.UUID
	UserID      uuid.UUID
	Status      RsvpStatus
	RespondedAt time.Time
}
