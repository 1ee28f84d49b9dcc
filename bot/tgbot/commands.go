package tgbot

import (
	"context"

	"github.com/TheoIlgazCelik/uwh-team-maker/bot/botstorage"
	"github.com/TheoIlgazCelik/uwh-team-maker/bot/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/service"
)

type Command interface {
	Run(ctx context.Context, chat model.Chat, args string) (string, error)
	Help() string
}

type Commands struct {
	list map[string]Command
}

func NewCommands(
	roster *service.RosterService,
	events *service.EventService,
	bs botstorage.BotStorage,
	subFn func(event model.EventType, id int64),
	unsubFn func(event model.EventType, id int64),
) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"top": &TopCommand{
				roster: roster,
			},
			"events": &EventsCommand{
				events: events,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(ctx context.Context, chat model.Chat, cmd string, args string) (string, error) {
	for s, command := range uc.list {
		if cmd == s {
			return command.Run(ctx, chat, args)
		}
	}
	return "", ErrBadRequest
}
