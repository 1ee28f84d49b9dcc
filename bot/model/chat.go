package model

import "time"

type EventType string

const (
	NewEvent EventType = "new_event"
	NewTeams EventType = "new_teams"
)

type Chat struct {
	ID        int64
	Username  string
	CreatedAt time.Time

	Subscriptions []EventType
}
