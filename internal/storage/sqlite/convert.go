package sqlite

import (
	"github.com/TheoIlgazCelik/uwh-team-maker/gen/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"

	"github.com/google/uuid"
)

func convertUser(dbUser model.Users) (domain.User, error) {
	id, err := uuid.Parse(dbUser.ID)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:           id,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		Skill:        int(dbUser.Skill),
		IsAdmin:      dbUser.IsAdmin,
		RegisteredAt: dbUser.CreatedAt,
	}, nil
}

func convertUsers(dbUsers []model.Users) ([]domain.User, error) {
	converted := make([]domain.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		user, err := convertUser(dbUser)
		if err != nil {
			return nil, err
		}
		converted = append(converted, user)
	}
	return converted, nil
}

func convertEvent(dbEvent model.Events) (domain.Event, error) {
	id, err := uuid.Parse(dbEvent.ID)
	if err != nil {
		return domain.Event{}, err
	}
	event := domain.Event{
		ID:        id,
		Title:     dbEvent.Title,
		Location:  dbEvent.Location,
		CreatedAt: dbEvent.CreatedAt,
	}
	if dbEvent.StartTime != nil {
		event.StartTime = *dbEvent.StartTime
	}
	if dbEvent.CreatedBy != nil {
		createdBy, err := uuid.Parse(*dbEvent.CreatedBy)
		if err != nil {
			return domain.Event{}, err
		}
		event.CreatedBy = createdBy
	}
	return event, nil
}

func convertEvents(dbEvents []model.Events) ([]domain.Event, error) {
	converted := make([]domain.Event, 0, len(dbEvents))
	for _, dbEvent := range dbEvents {
		event, err := convertEvent(dbEvent)
		if err != nil {
			return nil, err
		}
		converted = append(converted, event)
	}
	return converted, nil
}

func convertEventFromDomain(event domain.Event) model.Events {
	dbEvent := model.Events{
		ID:        event.ID.String(),
		Title:     event.Title,
		Location:  event.Location,
		CreatedAt: event.CreatedAt,
	}
	if !event.StartTime.IsZero() {
		start := event.StartTime
		dbEvent.StartTime = &start
	}
	if event.CreatedBy != uuid.Nil {
		createdBy := event.CreatedBy.String()
		dbEvent.CreatedBy = &createdBy
	}
	return dbEvent
}

func convertTeams(rows []teamRow) ([]domain.Team, error) {
	teams := make([]domain.Team, 0, len(rows))
	for _, row := range rows {
		eventID, err := uuid.Parse(row.EventID)
		if err != nil {
			return nil, err
		}
		team := domain.Team{
			EventID: eventID,
			Index:   int(row.TeamIndex),
		}
		for _, member := range row.Members {
			user, err := convertUser(member.User)
			if err != nil {
				return nil, err
			}
			team.Members = append(team.Members, user)
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func convertMatchesFromDomain(matches []domain.Match) []model.Matches {
	converted := make([]model.Matches, 0, len(matches))
	for _, m := range matches {
		dbMatch := model.Matches{
			ID:       m.ID.String(),
			EventID:  m.EventID.String(),
			TeamA:    int32(m.TeamA),
			TeamB:    int32(m.TeamB),
			KFactor:  int32(m.KFactor),
			PlayedAt: m.PlayedAt,
		}
		if !m.Draw() {
			winner := int32(m.Winner)
			dbMatch.Winner = &winner
		}
		converted = append(converted, dbMatch)
	}
	return converted
}
