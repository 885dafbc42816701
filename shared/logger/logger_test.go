package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"hotel/config"
	"hotel/shared/constant"
	"hotel/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preserveLogger(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestConfigureLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected zerolog.Level
	}{
		{name: "debug", logLevel: "debug", expected: zerolog.DebugLevel},
		{name: "warn", logLevel: "warn", expected: zerolog.WarnLevel},
		{name: "disabled", logLevel: "disabled", expected: zerolog.Disabled},
		{name: "unknown falls back to info", logLevel: "chatty", expected: zerolog.InfoLevel},
		{name: "empty falls back to info", logLevel: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preserveLogger(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.Configure(cfg, &bytes.Buffer{})

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestConfigureWritesTaggedJSON(t *testing.T) {
	preserveLogger(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "hotel"
	cfg.App.Version = "1.4.0"

	var buf bytes.Buffer
	logger.Configure(cfg, &buf)

	log.Info().Str("booking", "HKH-0001").Msg("checked in")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hotel", line["app"])
	assert.Equal(t, "1.4.0", line["version"])
	assert.Equal(t, "HKH-0001", line["booking"])
	assert.Equal(t, "checked in", line["message"])
}

func TestConfigureDevelopmentUsesConsole(t *testing.T) {
	preserveLogger(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.Server.LogLevel = "info"

	var buf bytes.Buffer
	logger.Configure(cfg, &buf)

	log.Info().Msg("room ready")

	assert.Contains(t, buf.String(), "room ready")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestErrorWithStack(t *testing.T) {
	preserveLogger(t)

	logger.InitLogger()

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction

	var buf bytes.Buffer
	logger.Configure(cfg, &buf)

	logger.ErrorWithStack(errors.New("rate table locked"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "rate table locked", line["error"])
	assert.Equal(t, "error", line["level"])
	assert.NotEmpty(t, line["stack"])
}
