package config

import (
	"os"

	authservice "github.com/TheoIlgazCelik/uwh-team-maker/auth/service"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	TelegramApiToken string `toml:"telegram_api_token"`
}

// Recurrence is a weekly event template. The materializer job creates
// the next occurrence of each template ahead of time.
type Recurrence struct {
	Weekday  string `toml:"weekday"`
	Hour     int    `toml:"hour"`
	Minute   int    `toml:"minute"`
	Title    string `toml:"title"`
	Location string `toml:"location"`
	Timezone string `toml:"timezone"`
}

type Server struct {
	Host            string       `toml:"host"`
	Port            int          `toml:"port"`
	Debug           bool         `toml:"debug_mode"`
	SqliteFile      string       `toml:"sqlite_file"`
	DefaultTeamSize int          `toml:"default_team_size"`
	TgBotEnabled    bool         `toml:"tg_bot_enabled"`
	Recurrence      []Recurrence `toml:"recurrence"`
}

type Config struct {
	TgBot  TgBot
	Server Server
	Auth   authservice.Config
}

func New() (Config, error) {
	var tgBotCfg TgBot
	_, err := toml.DecodeFile("configs/bot.toml", &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	var serverCfg Server
	_, err = toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}

	var authCfg authservice.Config
	_, err = toml.DecodeFile("configs/auth.toml", &authCfg)
	if err != nil {
		return Config{}, err
	}
	if secret := os.Getenv("AUTH_TOKEN_SECRET"); secret != "" {
		authCfg.Token = secret
	}
	if rootPassword := os.Getenv("AUTH_ROOT_PASSWORD"); rootPassword != "" {
		authCfg.RootPassword = rootPassword
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
		Auth:   authCfg,
	}, nil
}
