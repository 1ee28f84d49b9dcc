package tgbot

import (
	"context"

	"github.com/TheoIlgazCelik/uwh-team-maker/bot/botstorage"
	"github.com/TheoIlgazCelik/uwh-team-maker/bot/model"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(event model.EventType, id int64)
}

func (c *UnsubCommand) Run(_ context.Context, chat model.Chat, _ string) (string, error) {
	for _, event := range []model.EventType{model.NewEvent, model.NewTeams} {
		if err := c.botStorage.Unsubscribe(chat, event); err != nil {
			return "", err
		}
		c.unsub(event, chat.ID)
	}
	return "Unsubscribed, to resume notifications: /sub", nil
}

func (c *UnsubCommand) Help() string {
	return "Unsubscribe from announcements"
}
