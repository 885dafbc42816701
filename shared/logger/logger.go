package logger

import (
	"io"
	"os"
	"time"

	"hotel/config"
	"hotel/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

const defaultLevel = zerolog.InfoLevel

// InitLogger installs a console logger for the bootstrap phase, before the
// configuration is known.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(defaultLevel)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger()
}

// SetLogLevel applies SERVER_LOG_LEVEL and replaces the bootstrap logger with the
// one used for the rest of the process.
func SetLogLevel(cfg *config.Config) {
	Configure(cfg, os.Stdout)
}

// Configure writes JSON lines tagged with the app name and version, except in
// development where the console format is kept. Unknown levels fall back to info.
func Configure(cfg *config.Config, out io.Writer) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = defaultLevel
	}

	zerolog.SetGlobalLevel(level)

	writer := out
	if cfg.Server.Env == constant.ServerEnvDevelopment {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(writer).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Logger()

	log.Debug().Str("level", level.String()).Msg("Logger configured")
}

// ErrorWithStack logs err at error level together with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Stack().Err(errors.WithStack(err)).Msg("unexpected error")
}
