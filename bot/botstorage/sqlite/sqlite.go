package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/bot/botstorage"
	"github.com/TheoIlgazCelik/uwh-team-maker/bot/model"
	dbmodel "github.com/TheoIlgazCelik/uwh-team-maker/gen/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/gen/table"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, db *sql.DB) *Storage {
	return &Storage{
		db: db,
		log: l.WithFields(map[string]interface{}{
			"from": "bot-storage",
		}),
	}
}

func (s *Storage) NewChat(chat model.Chat) (model.Chat, error) {
	var dbChat dbmodel.BotChats
	err := table.BotChats.
		INSERT(table.BotChats.AllColumns).
		MODEL(dbmodel.BotChats{
			ChatID:    chat.ID,
			Username:  chat.Username,
			CreatedAt: time.Now(),
		}).
		RETURNING(table.BotChats.AllColumns).
		Query(s.db, &dbChat)
	if err != nil {
		return model.Chat{}, err
	}
	return convertChat(dbChat, nil), nil
}

func (s *Storage) GetChat(id int64) (model.Chat, error) {
	var dest struct {
		dbmodel.BotChats
		Subscriptions []dbmodel.BotSubscriptions
	}
	err := table.BotChats.
		SELECT(table.BotChats.AllColumns, table.BotSubscriptions.AllColumns).
		FROM(table.BotChats.
			LEFT_JOIN(table.BotSubscriptions, table.BotSubscriptions.ChatID.EQ(table.BotChats.ChatID)),
		).
		WHERE(table.BotChats.ChatID.EQ(sqlite.Int(id))).
		Query(s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return model.Chat{}, sql.ErrNoRows
		}
		return model.Chat{}, err
	}
	return convertChat(dest.BotChats, dest.Subscriptions), nil
}

func (s *Storage) ListChats() ([]model.Chat, error) {
	var dest []struct {
		dbmodel.BotChats
		Subscriptions []dbmodel.BotSubscriptions
	}
	err := table.BotChats.
		SELECT(table.BotChats.AllColumns, table.BotSubscriptions.AllColumns).
		FROM(table.BotChats.
			LEFT_JOIN(table.BotSubscriptions, table.BotSubscriptions.ChatID.EQ(table.BotChats.ChatID)),
		).
		Query(s.db, &dest)
	if err != nil {
		return nil, err
	}
	chats := make([]model.Chat, 0, len(dest))
	for _, row := range dest {
		chats = append(chats, convertChat(row.BotChats, row.Subscriptions))
	}
	return chats, nil
}

func (s *Storage) Subscribe(chat model.Chat, event model.EventType) error {
	_, err := table.BotSubscriptions.
		INSERT(table.BotSubscriptions.AllColumns).
		MODEL(dbmodel.BotSubscriptions{
			ChatID: chat.ID,
			Event:  string(event),
		}).
		ON_CONFLICT(table.BotSubscriptions.ChatID, table.BotSubscriptions.Event).
		DO_NOTHING().
		Exec(s.db)
	return err
}

func (s *Storage) Unsubscribe(chat model.Chat, event model.EventType) error {
	_, err := table.BotSubscriptions.
		DELETE().
		WHERE(
			table.BotSubscriptions.ChatID.EQ(sqlite.Int(chat.ID)).
				AND(table.BotSubscriptions.Event.EQ(sqlite.String(string(event)))),
		).
		Exec(s.db)
	return err
}

func convertChat(chat dbmodel.BotChats, subs []dbmodel.BotSubscriptions) model.Chat {
	converted := model.Chat{
		ID:        chat.ChatID,
		Username:  chat.Username,
		CreatedAt: chat.CreatedAt,
	}
	for _, sub := range subs {
		converted.Subscriptions = append(converted.Subscriptions, model.EventType(sub.Event))
	}
	return converted
}
