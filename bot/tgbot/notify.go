package tgbot

import (
	"strconv"
	"strings"

	botmodel "github.com/TheoIlgazCelik/uwh-team-maker/bot/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var _ service.Notifier = (*Bot)(nil)

func (b *Bot) EventCreated(event domain.Event) {
	var buffer strings.Builder
	buffer.WriteString("New event: ")
	buffer.WriteString(event.Title)
	if event.Location != "" {
		buffer.WriteString(" @ ")
		buffer.WriteString(event.Location)
	}
	if !event.StartTime.IsZero() {
		buffer.WriteString(", ")
		buffer.WriteString(event.StartTime.Format("Mon 02.01 15:04"))
	}
	b.broadcast(botmodel.NewEvent, buffer.String())
}

func (b *Bot) TeamsGenerated(event domain.Event, teams []domain.Team) {
	var buffer strings.Builder
	buffer.WriteString("Teams for ")
	buffer.WriteString(event.Title)
	buffer.WriteString(":\n")
	for _, team := range teams {
		buffer.WriteString("Team ")
		buffer.WriteString(strconv.Itoa(team.Index))
		buffer.WriteString(": ")
		for i, member := range team.Members {
			if i > 0 {
				buffer.WriteString(", ")
			}
			buffer.WriteString(member.Name)
		}
		buffer.WriteString("\n")
	}
	b.broadcast(botmodel.NewTeams, buffer.String())
}

func (b *Bot) broadcast(event botmodel.EventType, text string) {
	for _, chatID := range b.subs.GetChatIDs(event) {
		msg := tgbotapi.NewMessage(chatID, text)
		if _, err := b.bot.Send(msg); err != nil {
			b.log.WithError(err).Error("notification send error")
			return
		}
	}
}
