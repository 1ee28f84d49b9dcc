package tgbot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/bot/botstorage"
	botmodel "github.com/TheoIlgazCelik/uwh-team-maker/bot/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/config"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	bot *tgbotapi.BotAPI

	botStorage botstorage.BotStorage
	log        *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	subs subscriptions

	commands *Commands
}

var ErrBadRequest = errors.New("unknown command, try /help")

func New(cfg config.Config, l *logrus.Logger, roster *service.RosterService, events *service.EventService, bs botstorage.BotStorage) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}
	subs := newSubs()
	chats, err := bs.ListChats()
	if err != nil {
		return nil, err
	}
	for i := range chats {
		for _, event := range chats[i].Subscriptions {
			subs.Add(event, chats[i].ID)
		}
	}

	b := Bot{
		bot:        bot,
		botStorage: bs,
		log:        l.WithField("from", "tg-bot"),
		subs:       subs,
	}

	b.commands = NewCommands(
		roster,
		events,
		bs,
		func(event botmodel.EventType, id int64) {
			b.subs.Add(event, id)
		},
		func(event botmodel.EventType, id int64) {
			b.subs.Remove(event, id)
		},
	)

	return &b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(update)
		}
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	})
	chat, err := b.botStorage.GetChat(update.Message.Chat.ID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.WithError(err).Error("unable to get chat from db")
			return
		}
		chat, err = b.botStorage.NewChat(botmodel.Chat{
			ID:        update.Message.Chat.ID,
			Username:  update.Message.Chat.UserName,
			CreatedAt: time.Now(),
		})
		if err != nil {
			log.WithError(err).Error("unable to register chat")
			return
		}
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	text, err := b.commands.RunCommand(ctx, chat, update.Message.Command(), update.Message.CommandArguments())
	if err != nil {
		text = err.Error()
	}
	msg.Text = text
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}
