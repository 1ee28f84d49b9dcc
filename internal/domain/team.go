package domain

import (
	"time"

	"github.com/google/uuid"
)

// Team is one slot of an event's current partition. Index is 1-based
// and contiguous within an event.
type Team struct {
	EventID uuid.UUID
	Index   int
	Members []User
}

func (t Team) SkillSum() int {
	sum := 0
	for _, m := range t.Members {
		sum += m.Skill
	}
	return sum
}

// Rating is the arithmetic mean of the members' skills, the team-level
// input to the rating engine.
func (t Team) Rating() float64 {
	if len(t.Members) == 0 {
		return 0
	}
	return float64(t.SkillSum()) / float64(len(t.Members))
}

// Match is a recorded outcome between two of an event's teams.
// Winner is a team index; zero marks a draw.
type Match struct {
	ID       uuid.UUID
	EventID  uuid.UUID
	TeamA    int
	TeamB    int
	Winner   int
	KFactor  int
	PlayedAt time.Time
}

func (m Match) Draw() bool {
	return m.Winner == 0
}
