package teamgen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
)

type Strategy string

const (
	Balanced Strategy = "balanced"
	Random   Strategy = "random"
	Uneven   Strategy = "uneven"
)

// ParseStrategy maps a request method string to a strategy. An empty
// method keeps the historical default of random.
func ParseStrategy(method string) (Strategy, error) {
	switch Strategy(method) {
	case Balanced:
		return Balanced, nil
	case Random:
		return Random, nil
	case Uneven:
		return Uneven, nil
	case "":
		return Random, nil
	}
	return "", fmt.Errorf("%w: unknown method %q", domain.ErrInvalidInput, method)
}

// Split partitions attendees into ceil(n/teamSize) teams. Team sizes
// never differ by more than one.
//
// Balanced sorts by skill descending (ties by user id ascending) and
// deals in a snake: forward across the teams, then backward,
// alternating each pass. Deterministic for a given attendee set.
//
// Random shuffles and deals round-robin, so repeated calls may yield
// different partitions.
//
// Uneven needs the computed team count to be exactly four: the top
// half of the skill-sorted pool is greedily balanced across the first
// two teams, the bottom half across the last two.
func Split(attendees []domain.User, strategy Strategy, teamSize int) ([][]domain.User, error) {
	if teamSize <= 0 {
		return nil, domain.ErrInvalidTeamSize
	}
	if len(attendees) == 0 {
		return nil, domain.ErrNoAttendees
	}
	pool := make([]domain.User, len(attendees))
	copy(pool, attendees)
	numTeams := (len(pool) + teamSize - 1) / teamSize

	switch strategy {
	case Balanced:
		sortBySkill(pool)
		return snake(pool, numTeams), nil
	case Random:
		rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		return roundRobin(pool, numTeams), nil
	case Uneven:
		if numTeams != 4 {
			return nil, fmt.Errorf("%w: uneven split needs exactly 4 teams, got %d", domain.ErrInvalidInput, numTeams)
		}
		sortBySkill(pool)
		return unevenSplit(pool), nil
	}
	return nil, fmt.Errorf("%w: unknown strategy %q", domain.ErrInvalidInput, strategy)
}

func sortBySkill(pool []domain.User) {
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].Skill != pool[j].Skill {
			return pool[i].Skill > pool[j].Skill
		}
		return pool[i].ID.String() < pool[j].ID.String()
	})
}

func snake(pool []domain.User, numTeams int) [][]domain.User {
	teams := make([][]domain.User, numTeams)
	idx := 0
	forward := true
	for idx < len(pool) {
		if forward {
			for t := 0; t < numTeams && idx < len(pool); t++ {
				teams[t] = append(teams[t], pool[idx])
				idx++
			}
		} else {
			for t := numTeams - 1; t >= 0 && idx < len(pool); t-- {
				teams[t] = append(teams[t], pool[idx])
				idx++
			}
		}
		forward = !forward
	}
	return teams
}

func roundRobin(pool []domain.User, numTeams int) [][]domain.User {
	teams := make([][]domain.User, numTeams)
	for i := range pool {
		teams[i%numTeams] = append(teams[i%numTeams], pool[i])
	}
	return teams
}

func unevenSplit(pool []domain.User) [][]domain.User {
	teams := make([][]domain.User, 4)
	var skill [4]int
	assign := func(u domain.User, a, b int) {
		target := a
		if skill[b] < skill[a] {
			target = b
		}
		teams[target] = append(teams[target], u)
		skill[target] += u.Skill
	}
	goodCount := (len(pool) + 1) / 2
	for _, u := range pool[:goodCount] {
		assign(u, 0, 1)
	}
	for _, u := range pool[goodCount:] {
		assign(u, 2, 3)
	}
	return teams
}
