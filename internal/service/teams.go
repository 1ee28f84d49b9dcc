package service

import (
	"context"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/storage"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/teamgen"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type TeamService struct {
	attendance      *EventService
	roster          *RosterService
	teams           storage.TeamStorage
	notifier        Notifier
	defaultTeamSize int
	log             *logrus.Entry
}

func NewTeamService(l *logrus.Logger, attendance *EventService, roster *RosterService, teams storage.TeamStorage, notifier Notifier, defaultTeamSize int) *TeamService {
	if defaultTeamSize <= 0 {
		defaultTeamSize = 5
	}
	return &TeamService{
		attendance:      attendance,
		roster:          roster,
		teams:           teams,
		notifier:        notifier,
		defaultTeamSize: defaultTeamSize,
		log:             l.WithFields(map[string]interface{}{"from": "team-service"}),
	}
}

// SetNotifier swaps the notifier. Call before serving, the field is
// not guarded.
func (s *TeamService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Generate partitions the event's confirmed attendees and replaces the
// event's stored teams in one shot. A zero teamSize means the
// configured default. The returned teams carry current roster skills.
func (s *TeamService) Generate(ctx context.Context, eventID uuid.UUID, method string, teamSize int) ([]domain.Team, error) {
	strategy, err := teamgen.ParseStrategy(method)
	if err != nil {
		return nil, err
	}
	if teamSize == 0 {
		teamSize = s.defaultTeamSize
	}
	event, err := s.attendance.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	attendees, err := s.attendance.ResolveAttendees(ctx, eventID)
	if err != nil {
		return nil, err
	}
	split, err := teamgen.Split(attendees, strategy, teamSize)
	if err != nil {
		return nil, err
	}
	members := make([][]uuid.UUID, 0, len(split))
	for _, team := range split {
		ids := make([]uuid.UUID, 0, len(team))
		for _, u := range team {
			ids = append(ids, u.ID)
		}
		members = append(members, ids)
	}
	err = s.teams.ReplaceTeams(ctx, eventID, members)
	if err != nil {
		return nil, err
	}
	teams, err := s.teams.ListTeams(ctx, eventID)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"event":    eventID,
		"strategy": strategy,
		"teams":    len(teams),
		"players":  len(attendees),
	}).Info("teams generated")
	s.notifier.TeamsGenerated(event, teams)
	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, eventID uuid.UUID) ([]domain.Team, error) {
	if _, err := s.attendance.Get(ctx, eventID); err != nil {
		return nil, err
	}
	return s.teams.ListTeams(ctx, eventID)
}

// AdjustSkill applies a signed delta to every member of one stored
// team. Results are clamped at zero; the updated members come back in
// team order.
func (s *TeamService) AdjustSkill(ctx context.Context, eventID uuid.UUID, teamIndex int, delta int) ([]domain.User, error) {
	team, err := s.teams.GetTeam(ctx, eventID, teamIndex)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(team.Members))
	for _, m := range team.Members {
		ids = append(ids, m.ID)
	}
	updated, err := s.roster.AdjustSkills(ctx, ids, delta)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.User, len(updated))
	for _, u := range updated {
		byID[u.ID] = u
	}
	result := make([]domain.User, 0, len(team.Members))
	for _, m := range team.Members {
		result = append(result, byID[m.ID])
	}
	s.log.WithFields(logrus.Fields{
		"event": eventID,
		"team":  teamIndex,
		"delta": delta,
	}).Info("team skill adjusted")
	return result, nil
}
