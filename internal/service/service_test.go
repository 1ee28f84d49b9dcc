package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/cache/mem"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// memStore is an in-memory stand-in for the sqlite storage, shared by
// the service tests.
type memStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]domain.User
	events  map[uuid.UUID]domain.Event
	rsvps   map[uuid.UUID]map[uuid.UUID]domain.Rsvp
	teams   map[uuid.UUID][][]uuid.UUID
	matches []domain.Match
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[uuid.UUID]domain.User),
		events: make(map[uuid.UUID]domain.Event),
		rsvps:  make(map[uuid.UUID]map[uuid.UUID]domain.Rsvp),
		teams:  make(map[uuid.UUID][][]uuid.UUID),
	}
}

func (s *memStore) ListUsers(context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	domain.SortUsersByID(users)
	return users, nil
}

func (s *memStore) GetUser(_ context.Context, id uuid.UUID) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *memStore) GetUsers(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			users = append(users, u)
		}
	}
	domain.SortUsersByID(users)
	return users, nil
}

func (s *memStore) SetSkill(_ context.Context, id uuid.UUID, skill int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if skill < 0 {
		skill = 0
	}
	u.Skill = skill
	s.users[id] = u
	return nil
}

func (s *memStore) AdjustSkills(_ context.Context, ids []uuid.UUID, delta int) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if _, ok := s.users[id]; !ok {
			return nil, domain.ErrUserNotFound
		}
	}
	updated := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		u := s.users[id]
		u.Skill += delta
		if u.Skill < 0 {
			u.Skill = 0
		}
		s.users[id] = u
		updated = append(updated, u)
	}
	domain.SortUsersByID(updated)
	return updated, nil
}

func (s *memStore) DeleteUser(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	for _, byUser := range s.rsvps {
		delete(byUser, id)
	}
	return nil
}

func (s *memStore) ListEvents(context.Context) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]domain.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	return events, nil
}

func (s *memStore) GetEvent(_ context.Context, id uuid.UUID) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return e, nil
}

func (s *memStore) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = event
	return event, nil
}

func (s *memStore) UpdateEvent(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	s.events[event.ID] = event
	return nil
}

func (s *memStore) EventExists(_ context.Context, title string, start time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.Title == title && e.StartTime.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) UpsertRsvp(_ context.Context, rsvp domain.Rsvp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser, ok := s.rsvps[rsvp.EventID]
	if !ok {
		byUser = make(map[uuid.UUID]domain.Rsvp)
		s.rsvps[rsvp.EventID] = byUser
	}
	byUser[rsvp.UserID] = rsvp
	return nil
}

func (s *memStore) ListYes(_ context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uuid.UUID
	for userID, rsvp := range s.rsvps[eventID] {
		if rsvp.Status == domain.RsvpYes {
			ids = append(ids, userID)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids, nil
}

func (s *memStore) ReplaceTeams(_ context.Context, eventID uuid.UUID, teams [][]uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([][]uuid.UUID, len(teams))
	for i := range teams {
		stored[i] = append([]uuid.UUID(nil), teams[i]...)
	}
	s.teams[eventID] = stored
	return nil
}

func (s *memStore) ListTeams(_ context.Context, eventID uuid.UUID) ([]domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teamsLocked(eventID), nil
}

func (s *memStore) teamsLocked(eventID uuid.UUID) []domain.Team {
	stored := s.teams[eventID]
	teams := make([]domain.Team, 0, len(stored))
	for i, memberIDs := range stored {
		team := domain.Team{EventID: eventID, Index: i + 1}
		for _, id := range memberIDs {
			team.Members = append(team.Members, s.users[id])
		}
		teams = append(teams, team)
	}
	return teams
}

func (s *memStore) GetTeam(_ context.Context, eventID uuid.UUID, index int) (domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.teamsLocked(eventID) {
		if t.Index == index {
			return t, nil
		}
	}
	return domain.Team{}, domain.ErrTeamNotFound
}

func (s *memStore) ApplyMatches(_ context.Context, matches []domain.Match, deltas map[uuid.UUID]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = append(s.matches, matches...)
	for id, delta := range deltas {
		u := s.users[id]
		u.Skill += delta
		if u.Skill < 0 {
			u.Skill = 0
		}
		s.users[id] = u
	}
	return nil
}

type fixture struct {
	store  *memStore
	events *EventService
	roster *RosterService
	teams  *TeamService
	rating *RatingService
}

func newFixture() *fixture {
	store := newMemStore()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	roster := NewRosterService(log, store, mem.New())
	events := NewEventService(log, store, store, store, NopNotifier{})
	teams := NewTeamService(log, events, roster, store, NopNotifier{}, 5)
	rating := NewRatingService(log, store, store, store, roster)
	return &fixture{
		store:  store,
		events: events,
		roster: roster,
		teams:  teams,
		rating: rating,
	}
}

func (f *fixture) addUser(name string, skill int) domain.User {
	u := domain.User{
		ID:           uuid.NewMD5(uuid.NameSpaceOID, []byte(name)),
		Name:         name,
		Email:        name + "@example.com",
		Skill:        skill,
		RegisteredAt: time.Now(),
	}
	f.store.users[u.ID] = u
	return u
}

func (f *fixture) addEvent(title string) domain.Event {
	e := domain.Event{
		ID:        uuid.New(),
		Title:     title,
		Location:  "Local Pool",
		StartTime: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	f.store.events[e.ID] = e
	return e
}

func (f *fixture) rsvpYes(event domain.Event, users ...domain.User) {
	for _, u := range users {
		byUser, ok := f.store.rsvps[event.ID]
		if !ok {
			byUser = make(map[uuid.UUID]domain.Rsvp)
			f.store.rsvps[event.ID] = byUser
		}
		byUser[u.ID] = domain.Rsvp{
			EventID: event.ID,
			UserID:  u.ID,
			Status:  domain.RsvpYes,
		}
	}
}
