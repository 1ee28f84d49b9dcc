package tgbot

import (
	"context"

	"github.com/TheoIlgazCelik/uwh-team-maker/bot/botstorage"
	"github.com/TheoIlgazCelik/uwh-team-maker/bot/model"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(event model.EventType, id int64)
}

func (c *SubCommand) Run(_ context.Context, chat model.Chat, _ string) (string, error) {
	for _, event := range []model.EventType{model.NewEvent, model.NewTeams} {
		if err := c.botStorage.Subscribe(chat, event); err != nil {
			return "", err
		}
		c.sub(event, chat.ID)
	}
	return "Subscribed, to stop notifications: /unsub", nil
}

func (c *SubCommand) Help() string {
	return "Subscribe to event and team announcements"
}
