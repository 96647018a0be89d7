package main

import (
	"hallbook/config"
	"hallbook/di"
	"hallbook/helper"
	"hallbook/shared/logger"
	"hallbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Hallbook API
// @version 1.0
// @description Hall catalog and booking ledger with per-hall overlap detection.
// @BasePath /
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("Failed to load timezone")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	defer cleanup()

	http.Serve()
}
