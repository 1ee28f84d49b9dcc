package web

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	authservice "github.com/TheoIlgazCelik/uwh-team-maker/auth/service"
	"github.com/TheoIlgazCelik/uwh-team-maker/auth/users"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/cache/mem"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/config"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// memStore backs the whole stack for handler tests.
type memStore struct {
	users   map[uuid.UUID]domain.User
	events  map[uuid.UUID]domain.Event
	rsvps   map[uuid.UUID]map[uuid.UUID]domain.Rsvp
	teams   map[uuid.UUID][][]uuid.UUID
	matches []domain.Match

	authUsers map[uuid.UUID]users.User
	secrets   map[string]users.Secret
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[uuid.UUID]domain.User),
		events:    make(map[uuid.UUID]domain.Event),
		rsvps:     make(map[uuid.UUID]map[uuid.UUID]domain.Rsvp),
		teams:     make(map[uuid.UUID][][]uuid.UUID),
		authUsers: make(map[uuid.UUID]users.User),
		secrets:   make(map[string]users.Secret),
	}
}

func (s *memStore) ListUsers(context.Context) ([]domain.User, error) {
	list := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		list = append(list, u)
	}
	domain.SortUsersByID(list)
	return list, nil
}

func (s *memStore) GetUser(_ context.Context, id uuid.UUID) (domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *memStore) GetUsers(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
	list := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			list = append(list, u)
		}
	}
	domain.SortUsersByID(list)
	return list, nil
}

func (s *memStore) SetSkill(_ context.Context, id uuid.UUID, skill int) error {
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
	updated := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		u, ok := s.users[id]
		if !ok {
			return nil, domain.ErrUserNotFound
		}
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
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *memStore) ListEvents(context.Context) ([]domain.Event, error) {
	list := make([]domain.Event, 0, len(s.events))
	for _, e := range s.events {
		list = append(list, e)
	}
	return list, nil
}

func (s *memStore) GetEvent(_ context.Context, id uuid.UUID) (domain.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return e, nil
}

func (s *memStore) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	s.events[event.ID] = event
	return event, nil
}

func (s *memStore) UpdateEvent(_ context.Context, event domain.Event) error {
	if _, ok := s.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	s.events[event.ID] = event
	return nil
}

func (s *memStore) EventExists(_ context.Context, title string, start time.Time) (bool, error) {
	for _, e := range s.events {
		if e.Title == title && e.StartTime.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) UpsertRsvp(_ context.Context, rsvp domain.Rsvp) error {
	byUser, ok := s.rsvps[rsvp.EventID]
	if !ok {
		byUser = make(map[uuid.UUID]domain.Rsvp)
		s.rsvps[rsvp.EventID] = byUser
	}
	byUser[rsvp.UserID] = rsvp
	return nil
}

func (s *memStore) ListYes(_ context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for userID, rsvp := range s.rsvps[eventID] {
		if rsvp.Status == domain.RsvpYes {
			ids = append(ids, userID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}

func (s *memStore) ReplaceTeams(_ context.Context, eventID uuid.UUID, teams [][]uuid.UUID) error {
	stored := make([][]uuid.UUID, len(teams))
	for i := range teams {
		stored[i] = append([]uuid.UUID(nil), teams[i]...)
	}
	s.teams[eventID] = stored
	return nil
}

func (s *memStore) ListTeams(_ context.Context, eventID uuid.UUID) ([]domain.Team, error) {
	stored := s.teams[eventID]
	teams := make([]domain.Team, 0, len(stored))
	for i, memberIDs := range stored {
		team := domain.Team{EventID: eventID, Index: i + 1}
		for _, id := range memberIDs {
			team.Members = append(team.Members, s.users[id])
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func (s *memStore) GetTeam(ctx context.Context, eventID uuid.UUID, index int) (domain.Team, error) {
	teams, _ := s.ListTeams(ctx, eventID)
	for _, t := range teams {
		if t.Index == index {
			return t, nil
		}
	}
	return domain.Team{}, domain.ErrTeamNotFound
}

func (s *memStore) ApplyMatches(_ context.Context, matches []domain.Match, deltas map[uuid.UUID]int) error {
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

func (s *memStore) CreateUser(_ context.Context, user users.User, secret users.Secret) error {
	s.authUsers[user.ID] = user
	s.secrets[user.Name] = secret
	s.users[user.ID] = domain.User{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		IsAdmin:      user.IsAdmin(),
		RegisteredAt: user.RegisteredAt,
	}
	return nil
}

func (s *memStore) GetUserSecret(_ context.Context, user users.User) (users.Secret, error) {
	secret, ok := s.secrets[user.Name]
	if !ok {
		return users.Secret{}, sql.ErrNoRows
	}
	return secret, nil
}

func (s *memStore) SignIn(_ context.Context, name string, passwordHash []byte) (users.User, error) {
	secret, ok := s.secrets[name]
	if !ok || !bytes.Equal(secret.PasswordHash, passwordHash) {
		return users.User{}, sql.ErrNoRows
	}
	for _, u := range s.authUsers {
		if u.Name == name {
			return u, nil
		}
	}
	return users.User{}, sql.ErrNoRows
}

func (s *memStore) GetAuthUser(_ context.Context, id uuid.UUID) (users.User, error) {
	u, ok := s.authUsers[id]
	if !ok {
		return users.User{}, sql.ErrNoRows
	}
	return u, nil
}

// authAdapter renames GetAuthUser to the interface's GetUser so the
// store can satisfy both user lookups.
type authAdapter struct{ *memStore }

func (a authAdapter) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	return a.GetAuthUser(ctx, id)
}

type webFixture struct {
	store  *memStore
	server *Server
	auth   *authservice.Service
	admin  users.User
	member users.User
}

func newWebFixture(t *testing.T) *webFixture {
	t.Helper()
	store := newMemStore()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	authCfg := authservice.Config{
		Token:          "test-secret",
		Expiration:     "1h",
		RootPassword:   "root-password",
		PasswordPepper: "pepper",
		Rules: []authservice.Rule{
			{Path: "^/api/users", Method: []string{"*"}, Allow: []string{users.RoleAdmin}, Order: 0},
			{Path: "^/api/events/[^/]+/teams", Method: []string{"POST"}, Allow: []string{users.RoleAdmin}, Order: 20},
			{Path: "^/api/events/[^/]+/matches$", Method: []string{"POST"}, Allow: []string{users.RoleAdmin}, Order: 21},
			{Path: "^/api/events/[^/]+/rsvp$", Method: []string{"POST"}, Allow: []string{users.RoleUser, users.RoleAdmin}, Order: 40},
			{Path: "^/", Method: []string{"*"}, Allow: []string{"*"}, Order: 100},
		},
	}
	auth, err := authservice.New(context.Background(), authCfg, authAdapter{store})
	require.NoError(t, err)

	roster := service.NewRosterService(log, store, mem.New())
	events := service.NewEventService(log, store, store, store, service.NopNotifier{})
	teams := service.NewTeamService(log, events, roster, store, service.NopNotifier{}, 5)
	rating := service.NewRatingService(log, store, store, store, roster)

	server, err := New(config.Server{Host: "localhost", Port: 0}, auth, roster, events, teams, rating)
	require.NoError(t, err)

	admin, err := auth.Login(context.Background(), "root", "root-password")
	require.NoError(t, err)
	member, err := auth.SignUp(context.Background(), "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)

	return &webFixture{
		store:  store,
		server: server,
		auth:   auth,
		admin:  admin,
		member: member,
	}
}

func (f *webFixture) request(t *testing.T, as users.User, method, target string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if as.ID != uuid.Nil {
		cookie, err := f.auth.GenerateJWTCookie(as.ID, "localhost")
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	resp, err := f.server.Test(req)
	require.NoError(t, err)
	return resp
}

func (f *webFixture) addEvent(title string) domain.Event {
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

func (f *webFixture) addPlayers(event domain.Event, skills ...int) {
	for i, skill := range skills {
		id := uuid.NewMD5(uuid.NameSpaceOID, []byte{byte(i)})
		f.store.users[id] = domain.User{ID: id, Name: "player-" + id.String()[:4], Skill: skill}
		byUser, ok := f.store.rsvps[event.ID]
		if !ok {
			byUser = make(map[uuid.UUID]domain.Rsvp)
			f.store.rsvps[event.ID] = byUser
		}
		byUser[id] = domain.Rsvp{EventID: event.ID, UserID: id, Status: domain.RsvpYes}
	}
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestGenerateTeamsEndpoint(t *testing.T) {
	f := newWebFixture(t)
	event := f.addEvent("training")
	f.addPlayers(event, 10, 20, 30, 40)

	resp := f.request(t, f.admin, "POST", "/api/events/"+event.ID.String()+"/teams",
		map[string]any{"teamSize": 2, "method": "balanced"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	teams := decodeJSON[[]teamResponse](t, resp)
	require.Len(t, teams, 2)
	require.Equal(t, 1, teams[0].TeamIndex)
	require.Equal(t, 2, teams[1].TeamIndex)
	for _, team := range teams {
		require.Len(t, team.Members, 2)
		for _, member := range team.Members {
			require.NotNil(t, member.Skill)
		}
	}
}

func TestGenerateTeamsForbiddenForMembers(t *testing.T) {
	f := newWebFixture(t)
	event := f.addEvent("training")
	f.addPlayers(event, 10, 20)

	resp := f.request(t, f.member, "POST", "/api/events/"+event.ID.String()+"/teams",
		map[string]any{"method": "random"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.request(t, users.User{}, "POST", "/api/events/"+event.ID.String()+"/teams",
		map[string]any{"method": "random"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTeamsSkillRedaction(t *testing.T) {
	f := newWebFixture(t)
	event := f.addEvent("training")
	f.addPlayers(event, 10, 20)

	resp := f.request(t, f.admin, "POST", "/api/events/"+event.ID.String()+"/teams",
		map[string]any{"teamSize": 1, "method": "balanced"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.request(t, f.member, "GET", "/api/events/"+event.ID.String()+"/teams", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	teams := decodeJSON[[]teamResponse](t, resp)
	require.Len(t, teams, 2)
	for _, team := range teams {
		for _, member := range team.Members {
			require.Nil(t, member.Skill)
		}
	}
}

func TestGenerateTeamsNoAttendees(t *testing.T) {
	f := newWebFixture(t)
	event := f.addEvent("training")

	resp := f.request(t, f.admin, "POST", "/api/events/"+event.ID.String()+"/teams",
		map[string]any{"method": "balanced"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRsvpEndpoint(t *testing.T) {
	f := newWebFixture(t)
	event := f.addEvent("training")

	resp := f.request(t, f.member, "POST", "/api/events/"+event.ID.String()+"/rsvp",
		map[string]any{"status": "yes"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = f.request(t, f.member, "POST", "/api/events/"+uuid.NewString()+"/rsvp",
		map[string]any{"status": "yes"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = f.request(t, f.member, "POST", "/api/events/"+event.ID.String()+"/rsvp",
		map[string]any{"status": "maybe"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecordMatchesEndpoint(t *testing.T) {
	f := newWebFixture(t)
	event := f.addEvent("training")
	f.addPlayers(event, 20, 20)

	resp := f.request(t, f.admin, "POST", "/api/events/"+event.ID.String()+"/teams",
		map[string]any{"teamSize": 1, "method": "balanced"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.request(t, f.admin, "POST", "/api/events/"+event.ID.String()+"/matches",
		map[string]any{"matches": []map[string]int{{"teamA": 1, "teamB": 2, "winner": 1}}})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Len(t, f.store.matches, 1)

	resp = f.request(t, f.admin, "POST", "/api/events/"+event.ID.String()+"/matches",
		map[string]any{"matches": []map[string]int{{"teamA": 1, "teamB": 2, "winner": 9}}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.request(t, f.admin, "POST", "/api/events/"+event.ID.String()+"/matches",
		map[string]any{"matches": []map[string]int{{"teamA": 1, "teamB": 7, "winner": 1}}})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminUserEndpoints(t *testing.T) {
	f := newWebFixture(t)

	resp := f.request(t, f.admin, "PUT", "/api/users/"+f.member.ID.String()+"/skill",
		map[string]any{"skill": 42})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeJSON[userResponse](t, resp)
	require.Equal(t, 42, updated.Skill)

	resp = f.request(t, f.member, "PUT", "/api/users/"+f.member.ID.String()+"/skill",
		map[string]any{"skill": 99})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.request(t, f.admin, "DELETE", "/api/users/"+f.member.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = f.request(t, f.admin, "GET", "/api/users/"+f.member.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
