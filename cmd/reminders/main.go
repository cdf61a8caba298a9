package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"warrantly/internal/config"
	"warrantly/internal/database"
	"warrantly/internal/modules/notification"
	"warrantly/internal/repository"
)

// One-shot warranty reminder sweep, meant to run from cron. Creates the due
// 90/60/30-day and expiration reminders and marks them dispatched.
func main() {
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	svc := notification.NewService(
		repository.NewNotificationRepository(db),
		repository.NewProductRepository(db),
		nil, // no connected clients in a one-shot run
		log.Logger,
	)

	ctx := context.Background()
	now := time.Now().UTC()

	created, err := svc.GenerateDue(ctx, now)
	if err != nil {
		log.Fatal().Err(err).Msg("reminder sweep failed")
	}
	dispatched, err := svc.Dispatch(ctx, now)
	if err != nil {
		log.Fatal().Err(err).Msg("reminder dispatch failed")
	}

	log.Info().
		Int("created", len(created)).
		Int("dispatched", len(dispatched)).
		Msg("reminder sweep completed")
}
