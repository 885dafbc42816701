package main

import (
	"os"

	"hotel/config"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

const argLength = 2

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, drop or step-up")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := helper.Migrate(cfg, helper.Action(os.Args[1])); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
