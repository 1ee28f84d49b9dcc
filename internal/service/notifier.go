package service

import "github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"

// Notifier receives announcements about events worth broadcasting.
// Implementations must not block; delivery is best effort.
type Notifier interface {
	EventCreated(event domain.Event)
	TeamsGenerated(event domain.Event, teams []domain.Team)
}

type NopNotifier struct{}

func (NopNotifier) EventCreated(domain.Event)                 {}
func (NopNotifier) TeamsGenerated(domain.Event, []domain.Team) {}
