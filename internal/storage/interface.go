package storage

import (
	"context"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"

	"github.com/google/uuid"
)

type RosterStorage interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetUsers(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)

	// SetSkill overwrites a user's skill with an absolute value.
	SetSkill(ctx context.Context, id uuid.UUID, skill int) error

	// AdjustSkills applies delta to every listed user in one
	// transaction. The arithmetic and the floor clamp happen inside the
	// UPDATE statement, so concurrent adjustments never lose updates.
	// Returns the users with their new skills.
	AdjustSkills(ctx context.Context, ids []uuid.UUID, delta int) ([]domain.User, error)

	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type EventStorage interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	EventExists(ctx context.Context, title string, start time.Time) (bool, error)
}

type RsvpStorage interface {
	UpsertRsvp(ctx context.Context, rsvp domain.Rsvp) error
	ListYes(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
}

type TeamStorage interface {
	// ReplaceTeams swaps the event's whole partition in one
	// transaction: a concurrent reader sees the old set or the new set,
	// never a mix.
	ReplaceTeams(ctx context.Context, eventID uuid.UUID, teams [][]uuid.UUID) error

	ListTeams(ctx context.Context, eventID uuid.UUID) ([]domain.Team, error)
	GetTeam(ctx context.Context, eventID uuid.UUID, index int) (domain.Team, error)
}

type MatchStorage interface {
	// ApplyMatches persists the match records and applies each skill
	// delta to the user's current row inside the same transaction, with
	// the floor clamp in the UPDATE statement. A skill written between
	// the caller's read and the commit is adjusted, not overwritten.
	// Either everything commits or nothing does.
	ApplyMatches(ctx context.Context, matches []domain.Match, deltas map[uuid.UUID]int) error
}
