package di

import (
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/internal/domains/booking/lifecycle"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

// provideKafka hands out the shared client together with the cleanup that flushes
// pending writes on shutdown.
func provideKafka(cfg *config.Config) (kafka.Client, func()) {
	client := kafka.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}
}

func provideLifecycle() *lifecycle.Controller {
	return lifecycle.New(timezone.Now)
}
