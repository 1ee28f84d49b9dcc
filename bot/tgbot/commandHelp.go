package tgbot

import (
	"context"
	"strings"

	"github.com/TheoIlgazCelik/uwh-team-maker/bot/model"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ context.Context, _ model.Chat, args string) (string, error) {
	for s, command := range c.commands {
		if args == s {
			return command.Help(), nil
		}
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for commandName := range c.commands {
		b.WriteString("/")
		b.WriteString(commandName)
		b.WriteString("\n")
	}
	b.WriteString("Use /help with a command name for details")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "Lists the available commands"
}
