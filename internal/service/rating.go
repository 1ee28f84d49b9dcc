package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/elo"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultKFactor = 24

// MatchResult is one recorded outcome between two team indices of an
// event. Winner zero means a draw.
type MatchResult struct {
	TeamA  int
	TeamB  int
	Winner int
}

type RatingService struct {
	events  storage.EventStorage
	teams   storage.TeamStorage
	matches storage.MatchStorage
	roster  *RosterService
	log     *logrus.Entry

	// mu serializes whole batches so two concurrent calls cannot
	// interleave their read-compute-write cycles over the same users.
	mu sync.Mutex
}

func NewRatingService(l *logrus.Logger, events storage.EventStorage, teams storage.TeamStorage, matches storage.MatchStorage, roster *RosterService) *RatingService {
	return &RatingService{
		events:  events,
		teams:   teams,
		matches: matches,
		roster:  roster,
		log:     l.WithFields(map[string]interface{}{"from": "rating-service"}),
	}
}

// RecordMatches applies a batch of match outcomes to the roster.
// Matches are processed in order, each seeing the skills left by the
// previous one, and everything commits in a single transaction: one
// bad team index fails the whole call with no skill changed.
func (s *RatingService) RecordMatches(ctx context.Context, eventID uuid.UUID, results []MatchResult, kFactor int) error {
	if kFactor == 0 {
		kFactor = DefaultKFactor
	}
	if kFactor < 0 {
		return fmt.Errorf("%w: kFactor must be positive", domain.ErrInvalidInput)
	}
	if len(results) == 0 {
		return fmt.Errorf("%w: empty match list", domain.ErrInvalidInput)
	}
	if _, err := s.events.GetEvent(ctx, eventID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	teams, err := s.teams.ListTeams(ctx, eventID)
	if err != nil {
		return err
	}
	byIndex := make(map[int]domain.Team, len(teams))
	for _, t := range teams {
		byIndex[t.Index] = t
	}

	// Working copy of every involved skill; later matches in the batch
	// see deltas from earlier ones. The initial snapshot stays around so
	// only the batch's net delta is written: a skill changed by another
	// writer between this read and the commit keeps its change.
	skills := make(map[uuid.UUID]int)
	initial := make(map[uuid.UUID]int)
	for _, t := range teams {
		for _, m := range t.Members {
			skills[m.ID] = m.Skill
			initial[m.ID] = m.Skill
		}
	}

	touched := make(map[uuid.UUID]struct{})
	rows := make([]domain.Match, 0, len(results))
	now := time.Now()
	for _, r := range results {
		teamA, okA := byIndex[r.TeamA]
		teamB, okB := byIndex[r.TeamB]
		if !okA || !okB {
			return domain.ErrTeamNotFound
		}
		if r.TeamA == r.TeamB {
			return fmt.Errorf("%w: a team cannot play itself", domain.ErrInvalidInput)
		}
		scoreA, scoreB, err := scores(r)
		if err != nil {
			return err
		}
		ratingA := meanSkill(teamA, skills)
		ratingB := meanSkill(teamB, skills)
		deltaA := elo.Delta(ratingA, ratingB, kFactor, scoreA)
		deltaB := elo.Delta(ratingB, ratingA, kFactor, scoreB)
		applyDelta(teamA, deltaA, skills, touched)
		applyDelta(teamB, deltaB, skills, touched)

		rows = append(rows, domain.Match{
			ID:       uuid.New(),
			EventID:  eventID,
			TeamA:    r.TeamA,
			TeamB:    r.TeamB,
			Winner:   r.Winner,
			KFactor:  kFactor,
			PlayedAt: now,
		})
		s.log.WithFields(logrus.Fields{
			"event":  eventID,
			"teamA":  r.TeamA,
			"teamB":  r.TeamB,
			"winner": r.Winner,
			"deltaA": deltaA,
			"deltaB": deltaB,
		}).Info("match rated")
	}

	deltas := make(map[uuid.UUID]int, len(touched))
	for id := range touched {
		deltas[id] = skills[id] - initial[id]
	}
	err = s.matches.ApplyMatches(ctx, rows, deltas)
	if err != nil {
		return err
	}
	s.roster.InvalidateCache()
	return nil
}

func scores(r MatchResult) (elo.Score, elo.Score, error) {
	switch r.Winner {
	case 0:
		return elo.Draw, elo.Draw, nil
	case r.TeamA:
		return elo.Win, elo.Lose, nil
	case r.TeamB:
		return elo.Lose, elo.Win, nil
	}
	return 0, 0, fmt.Errorf("%w: winner %d is not one of the playing teams", domain.ErrInvalidInput, r.Winner)
}

func meanSkill(team domain.Team, skills map[uuid.UUID]int) float64 {
	if len(team.Members) == 0 {
		return 0
	}
	sum := 0
	for _, m := range team.Members {
		sum += skills[m.ID]
	}
	return float64(sum) / float64(len(team.Members))
}

func applyDelta(team domain.Team, delta int, skills map[uuid.UUID]int, touched map[uuid.UUID]struct{}) {
	for _, m := range team.Members {
		next := skills[m.ID] + delta
		if next < 0 {
			next = 0
		}
		skills[m.ID] = next
		touched[m.ID] = struct{}{}
	}
}
