package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/roomcall/roomcall-server/bot-service/controllers"
	"github.com/roomcall/roomcall-server/bot-service/repos"
	"github.com/roomcall/roomcall-server/utils-go"
	"github.com/rs/zerolog/log"
)

type config struct {
	Dsn string `env:"DSN,required"`
}

// Exports the RSVPs of one invitation message as CSV on stdout, bypassing the
// bot. Useful when the gateway is down.
func main() {
	msgId := flag.String("msg", "", "Invitation message ID")
	envFile := flag.String("env", ".env", ".env file path")
	flag.Parse()

	utils.ConfigureLogger(&utils.LoggerConfig{LogLevel: "warn"})

	if *msgId == "" {
		log.Fatal().Msg("-msg is required")
	}

	if err := godotenv.Load(*envFile); err != nil {
		log.Warn().Err(err).Msg("Could not load .env file")
	}

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse env config")
	}

	db, err := utils.ProvidePostgres(&utils.PostgresConfig{Dsn: cfg.Dsn, IsProduction: true})
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to postgres")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	entries, err := repos.NewInvitationRepo(db).ListRsvps(ctx, *msgId)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not list rsvps")
	}

	if err := controllers.WriteRsvpCsv(os.Stdout, entries); err != nil {
		log.Fatal().Err(err).Msg("Could not write csv")
	}
}
