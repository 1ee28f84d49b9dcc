package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/gen/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/gen/table"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	s, err := New(log, filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.db.Close()
	})
	return s
}

func insertUser(t *testing.T, s *Storage, name string, skill int) domain.User {
	t.Helper()
	u := domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        name + "@example.com",
		Skill:        skill,
		RegisteredAt: time.Now(),
	}
	_, err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(model.Users{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			Skill:     int32(u.Skill),
			CreatedAt: u.RegisteredAt,
		}).
		ExecContext(context.Background(), s.db)
	require.NoError(t, err)
	return u
}

func insertEvent(t *testing.T, s *Storage, title string, start time.Time) domain.Event {
	t.Helper()
	event, err := s.CreateEvent(context.Background(), domain.Event{
		ID:        uuid.New(),
		Title:     title,
		Location:  "Local Pool",
		StartTime: start,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return event
}

func TestEventExists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	loc, err := time.LoadLocation("Pacific/Auckland")
	require.NoError(t, err)
	start := time.Date(2026, time.September, 3, 19, 0, 0, 0, loc)
	insertEvent(t, s, "Thursday Training", start)

	exists, err := s.EventExists(ctx, "Thursday Training", start)
	require.NoError(t, err)
	require.True(t, exists)

	// Same instant expressed in another zone still matches.
	exists, err = s.EventExists(ctx, "Thursday Training", start.UTC())
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = s.EventExists(ctx, "Sunday Game", start)
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = s.EventExists(ctx, "Thursday Training", start.Add(7*24*time.Hour))
	require.NoError(t, err)
	require.False(t, exists)
}

func TestUpsertRsvpLastWins(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	u := insertUser(t, s, "alice", 10)
	event := insertEvent(t, s, "training", time.Now().Add(time.Hour))

	rsvp := domain.Rsvp{
		EventID:     event.ID,
		UserID:      u.ID,
		Status:      domain.RsvpYes,
		RespondedAt: time.Now(),
	}
	require.NoError(t, s.UpsertRsvp(ctx, rsvp))

	ids, err := s.ListYes(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{u.ID}, ids)

	rsvp.Status = domain.RsvpNo
	rsvp.RespondedAt = time.Now()
	require.NoError(t, s.UpsertRsvp(ctx, rsvp))

	ids, err = s.ListYes(ctx, event.ID)
	require.NoError(t, err)
	require.Empty(t, ids)

	rsvp.Status = domain.RsvpYes
	require.NoError(t, s.UpsertRsvp(ctx, rsvp))

	ids, err = s.ListYes(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{u.ID}, ids)
}

func TestDeleteUserRemovesTeamMembership(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	alice := insertUser(t, s, "alice", 10)
	bob := insertUser(t, s, "bob", 20)
	event := insertEvent(t, s, "training", time.Now().Add(time.Hour))

	err := s.ReplaceTeams(ctx, event.ID, [][]uuid.UUID{{alice.ID}, {bob.ID}})
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(ctx, alice.ID))

	_, err = s.GetUser(ctx, alice.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	teams, err := s.ListTeams(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Empty(t, teams[0].Members)
	require.Len(t, teams[1].Members, 1)
	require.Equal(t, bob.ID, teams[1].Members[0].ID)
}

func TestApplyMatchesAdjustsCurrentSkill(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	alice := insertUser(t, s, "alice", 20)
	bob := insertUser(t, s, "bob", 20)
	event := insertEvent(t, s, "training", time.Now().Add(time.Hour))

	// A skill write landing after the batch computed its deltas is kept:
	// the delta applies on top of the current row value.
	require.NoError(t, s.SetSkill(ctx, alice.ID, 25))

	err := s.ApplyMatches(ctx, []domain.Match{{
		ID:       uuid.New(),
		EventID:  event.ID,
		TeamA:    1,
		TeamB:    2,
		Winner:   1,
		KFactor:  24,
		PlayedAt: time.Now(),
	}}, map[uuid.UUID]int{
		alice.ID: 12,
		bob.ID:   -50,
	})
	require.NoError(t, err)

	got, err := s.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 37, got.Skill)

	got, err = s.GetUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.Skill)
}

func TestApplyMatchesUnknownUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	alice := insertUser(t, s, "alice", 20)
	event := insertEvent(t, s, "training", time.Now().Add(time.Hour))

	err := s.ApplyMatches(ctx, []domain.Match{{
		ID:       uuid.New(),
		EventID:  event.ID,
		TeamA:    1,
		TeamB:    2,
		Winner:   1,
		KFactor:  24,
		PlayedAt: time.Now(),
	}}, map[uuid.UUID]int{
		alice.ID:   12,
		uuid.New(): -12,
	})
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	// Nothing committed.
	got, err := s.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 20, got.Skill)

	matches, err := listMatchRows(ctx, s)
	require.NoError(t, err)
	require.Empty(t, matches)
}

func listMatchRows(ctx context.Context, s *Storage) ([]model.Matches, error) {
	var rows []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		QueryContext(ctx, s.db, &rows)
	return rows, err
}
