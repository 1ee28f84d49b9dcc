package tgbot

import (
	"context"
	"strconv"
	"strings"

	"github.com/TheoIlgazCelik/uwh-team-maker/bot/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/service"
)

type TopCommand struct {
	roster *service.RosterService
}

func (c *TopCommand) Run(ctx context.Context, _ model.Chat, _ string) (string, error) {
	ratings, err := c.roster.Ratings(ctx)
	if err != nil {
		return "", err
	}
	var buffer strings.Builder
	for i := range ratings {
		if i > 9 {
			break
		}
		buffer.WriteString(strconv.Itoa(i + 1))
		buffer.WriteString(". ")
		buffer.WriteString(ratings[i].Name)
		buffer.WriteString(" (")
		buffer.WriteString(strconv.Itoa(ratings[i].Skill))
		buffer.WriteString(")\n")
	}
	if buffer.Len() == 0 {
		return "no players yet", nil
	}
	return buffer.String(), nil
}

func (c *TopCommand) Help() string {
	return "Top ten players by skill"
}
