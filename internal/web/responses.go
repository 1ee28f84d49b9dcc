package web

import (
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"

	"github.com/google/uuid"
)

type memberResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Skill *int      `json:"skill,omitempty"`
}

type teamResponse struct {
	TeamIndex int              `json:"teamIndex"`
	Members   []memberResponse `json:"members"`
}

type eventResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Location  string     `json:"location,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
	Skill int       `json:"skill"`
}

// convertMember redacts skill for readers without the admin role.
func convertMember(u domain.User, showSkill bool) memberResponse {
	m := memberResponse{
		ID:   u.ID,
		Name: u.Name,
	}
	if showSkill {
		skill := u.Skill
		m.Skill = &skill
	}
	return m
}

func convertMembers(users []domain.User, showSkill bool) []memberResponse {
	members := make([]memberResponse, 0, len(users))
	for _, u := range users {
		members = append(members, convertMember(u, showSkill))
	}
	return members
}

func convertTeams(teams []domain.Team, showSkill bool) []teamResponse {
	resp := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, teamResponse{
			TeamIndex: t.Index,
			Members:   convertMembers(t.Members, showSkill),
		})
	}
	return resp
}

func convertEvent(e domain.Event) eventResponse {
	resp := eventResponse{
		ID:       e.ID,
		Title:    e.Title,
		Location: e.Location,
	}
	if !e.StartTime.IsZero() {
		start := e.StartTime
		resp.StartTime = &start
	}
	return resp
}

func convertEvents(events []domain.Event) []eventResponse {
	resp := make([]eventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, convertEvent(e))
	}
	return resp
}

func convertUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Skill: u.Skill,
	}
}

func convertUserResponses(users []domain.User) []userResponse {
	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, convertUserResponse(u))
	}
	return resp
}
