package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Skill        int
	IsAdmin      bool
	RegisteredAt time.Time
}

// SortUsersByID orders users by id ascending. Downstream tie-breaks
// (balanced generation, attendee listings) rely on this ordering.
func SortUsersByID(users []User) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID.String() < users[j].ID.String()
	})
}
