package main

import (
	"context"
	"fmt"
	"os"
	"time"

	authservice "github.com/TheoIlgazCelik/uwh-team-maker/auth/service"
	authsqlite "github.com/TheoIlgazCelik/uwh-team-maker/auth/storage/sqlite"
	botsqlite "github.com/TheoIlgazCelik/uwh-team-maker/bot/botstorage/sqlite"
	"github.com/TheoIlgazCelik/uwh-team-maker/bot/tgbot"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/cache/mem"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/config"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/jobs"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/logger"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/service"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/storage/sqlite"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	store, err := sqlite.New(log, cfg.Server.SqliteFile)
	if err != nil {
		return err
	}

	roster := service.NewRosterService(log, store, mem.New())
	events := service.NewEventService(log, store, store, store, service.NopNotifier{})
	teams := service.NewTeamService(log, events, roster, store, service.NopNotifier{}, cfg.Server.DefaultTeamSize)
	rating := service.NewRatingService(log, store, store, store, roster)

	authStorage := authsqlite.New(log, store.DB())
	auth, err := authservice.New(context.Background(), cfg.Auth, authStorage)
	if err != nil {
		return err
	}

	if cfg.Server.TgBotEnabled {
		botStorage := botsqlite.New(log, store.DB())
		bot, err := tgbot.New(cfg, log, roster, events, botStorage)
		if err != nil {
			return err
		}
		events.SetNotifier(bot)
		teams.SetNotifier(bot)
		go bot.Run()
		defer bot.Stop()
	}

	materializer := jobs.NewMaterializer(log, events, cfg.Server.Recurrence, time.Hour)
	materializer.Start()
	defer materializer.Stop()

	server, err := web.New(cfg.Server, auth, roster, events, teams, rating)
	if err != nil {
		return err
	}
	return server.Serve()
}
