package web

import (
	"errors"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/service"
)

var (
	ErrEmptyTitle  = errors.New("event title must not be empty")
	ErrBadStatus   = errors.New("status must be yes or no")
	ErrSameTeam    = errors.New("a team cannot play itself")
	ErrWrongWinner = errors.New("winner must be one of the playing teams or zero for a draw")
	ErrNoMatches   = errors.New("at least one match is required")
)

type createEventRequest struct {
	Title     string     `json:"title"`
	Location  string     `json:"location"`
	StartTime *time.Time `json:"startTime"`
}

func (r createEventRequest) Validate() error {
	if r.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

func (r createEventRequest) convertToDomainEvent() domain.Event {
	e := domain.Event{
		Title:    r.Title,
		Location: r.Location,
	}
	if r.StartTime != nil {
		e.StartTime = *r.StartTime
	}
	return e
}

type rsvpRequest struct {
	Status string `json:"status"`
}

func (r rsvpRequest) Validate() error {
	if !domain.RsvpStatus(r.Status).Valid() {
		return ErrBadStatus
	}
	return nil
}

type generateTeamsRequest struct {
	TeamSize int    `json:"teamSize"`
	Method   string `json:"method"`
}

type adjustSkillRequest struct {
	Delta int `json:"delta"`
}

type setSkillRequest struct {
	Skill int `json:"skill"`
}

type matchResult struct {
	TeamA  int `json:"teamA"`
	TeamB  int `json:"teamB"`
	Winner int `json:"winner"`
}

func (m matchResult) Validate() error {
	if m.TeamA == m.TeamB {
		return ErrSameTeam
	}
	if m.Winner != 0 && m.Winner != m.TeamA && m.Winner != m.TeamB {
		return ErrWrongWinner
	}
	return nil
}

type recordMatchesRequest struct {
	Matches []matchResult `json:"matches"`
	KFactor int           `json:"kFactor"`
}

func (r recordMatchesRequest) Validate() error {
	if len(r.Matches) == 0 {
		return ErrNoMatches
	}
	for _, m := range r.Matches {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r recordMatchesRequest) convertToResults() []service.MatchResult {
	results := make([]service.MatchResult, 0, len(r.Matches))
	for _, m := range r.Matches {
		results = append(results, service.MatchResult{
			TeamA:  m.TeamA,
			TeamB:  m.TeamB,
			Winner: m.Winner,
		})
	}
	return results
}
