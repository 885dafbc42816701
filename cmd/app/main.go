package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"

	_ "hotel/docs"
)

// @title Hotel Back-office API
// @version 1.0
// @description Rooms, rates, pricing, bookings, guests, inquiries and analytics.
// @BasePath /
func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Msg("Invalid APP_TIMEZONE, use an IANA name such as Asia/Karachi")
	}

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	http.Serve()
}
