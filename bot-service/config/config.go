package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/roomcall/roomcall-server/utils-go"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string `env:"LISTEN_ADDR" envDefault:":3000"`
	Timeout        uint64 `env:"TIMEOUT" envDefault:"10"`
	ReadBufferSize int    `env:"READ_BUFFER_SIZE" envDefault:"4096"`
	BodyLimit      int    `env:"BODY_LIMIT" envDefault:"1048576"`
	AppName        string `env:"APP_NAME" envDefault:"Roomcall"`
	IsProduction   bool   `env:"PRODUCTION"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	Dsn            string `env:"DSN,required"`
	RedisUrl       string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	BotToken       string `env:"BOT_TOKEN,required"`
	GuildId        string `env:"GUILD_ID"`
	LinkHost       string `env:"LINK_HOST" envDefault:"link.brawlstars.com"`
}

func Parse() (*Config, error) {
	cfg := Config{
		IsProduction: utils.ParseFlags(),
	}

	if err := env.Parse(&cfg); err != nil {
		log.Panic().Err(err).Msg("Failed to parse env config")
	}

	return &cfg, nil
}
