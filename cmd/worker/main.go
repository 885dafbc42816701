package main

import (
	"context"
	"os/signal"
	"syscall"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Msg("Invalid APP_TIMEZONE, use an IANA name such as Asia/Karachi")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, cleanup, err := di.InitializeWorker()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize worker")
	}
	defer cleanup()

	if err := consumer.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Worker stopped with error")

		return
	}

	log.Info().Msg("Worker stopped")
}
