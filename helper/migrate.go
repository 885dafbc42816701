package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"hotel/config"
	"hotel/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionStepUp Action = "step-up"
	ActionDrop   Action = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// MigrationURL is the write DSN with the golang-migrate bookkeeping table attached.
func MigrationURL(cfg *config.Config) string {
	pg := cfg.DB.Postgres
	dsn := postgres.DSN(pg.Write, pg.Prefix)

	if pg.MigrationTable == "" {
		return dsn
	}

	return dsn + "&x-migrations-table=" + url.QueryEscape(pg.MigrationTable)
}

func apply(mig *migrate.Migrate, action Action) error {
	switch action {
	case ActionUp:
		return mig.Up() //nolint:wrapcheck
	case ActionDown:
		return mig.Steps(-1) //nolint:wrapcheck
	case ActionStepUp:
		return mig.Steps(1) //nolint:wrapcheck
	case ActionDrop:
		return mig.Down() //nolint:wrapcheck
	}

	return fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

// Migrate runs one action against the hotel schema. A schema that is already at
// the requested version is not an error.
func Migrate(cfg *config.Config, action Action) error {
	mig, err := migrate.New(migrationSource, MigrationURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	err = apply(mig, action)
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Str("action", string(action)).Msg("Database schema already up to date")

		return nil
	}

	if err != nil {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, _ := mig.Version()
	log.Info().Str("action", string(action)).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

// AutoMigrate brings the schema up on start when DB_POSTGRES_AUTO_MIGRATE is set.
func AutoMigrate(cfg *config.Config) error {
	if !cfg.DB.Postgres.AutoMigrate {
		return nil
	}

	return Migrate(cfg, ActionUp)
}
