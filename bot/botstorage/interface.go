package botstorage

import "github.com/TheoIlgazCelik/uwh-team-maker/bot/model"

type BotStorage interface {
	NewChat(chat model.Chat) (model.Chat, error)
	GetChat(id int64) (model.Chat, error)
	ListChats() ([]model.Chat, error)
	Subscribe(chat model.Chat, event model.EventType) error
	Unsubscribe(chat model.Chat, event model.EventType) error
}
