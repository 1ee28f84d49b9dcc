package tgbot

import (
	"context"
	"strings"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/bot/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/service"
)

type EventsCommand struct {
	events *service.EventService
}

func (c *EventsCommand) Run(ctx context.Context, _ model.Chat, _ string) (string, error) {
	events, err := c.events.List(ctx)
	if err != nil {
		return "", err
	}
	var buffer strings.Builder
	count := 0
	for _, event := range events {
		if event.StartTime.Before(time.Now()) {
			continue
		}
		if count == 5 {
			break
		}
		buffer.WriteString(event.Title)
		if event.Location != "" {
			buffer.WriteString(" @ ")
			buffer.WriteString(event.Location)
		}
		buffer.WriteString(", ")
		buffer.WriteString(event.StartTime.Format("Mon 02.01 15:04"))
		buffer.WriteString("\n")
		count++
	}
	if buffer.Len() == 0 {
		return "no upcoming events", nil
	}
	return buffer.String(), nil
}

func (c *EventsCommand) Help() string {
	return "Upcoming events"
}
