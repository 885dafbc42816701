package postgres

//nolint:revive
import (
	"context"
	"net"
	"net/url"
	"time"

	"hotel/config"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName         = "postgres"
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
	// QueryTimeout bounds every single statement issued through the generic repository.
	QueryTimeout time.Duration
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:         Connect("read", DSN(pg.Read, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
		Write:        Connect("write", DSN(pg.Write, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
		QueryTimeout: time.Duration(pg.QueryTimeoutSeconds) * time.Second,
	}
}

// DSN renders a lib/pq connection URL. The optional prefix separates databases
// of several environments sharing one server.
func DSN(endpoint config.PostgresEndpoint, prefix string) string {
	query := url.Values{}
	query.Set("sslmode", endpoint.SSLMode)

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Connect opens a pool, retrying up to maxRetry times with a constant wait in
// between. The process exits when the database stays unreachable.
func Connect(name, dsn string, maxRetry, waitSeconds int) *sqlx.DB {
	attempt := 0

	db, err := backoff.Retry(context.Background(), func() (*sqlx.DB, error) {
		attempt++

		db, err := sqlx.Connect(driverName, dsn)
		if err != nil {
			log.Error().Err(err).Str("name", name).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

			return nil, err //nolint:wrapcheck
		}

		return db, nil
	},
		backoff.WithMaxTries(uint(max(maxRetry, 1))),
		backoff.WithBackOff(backoff.NewConstantBackOff(time.Duration(waitSeconds)*time.Second)),
	)
	if err != nil {
		log.Fatal().Err(err).Str("name", name).Int("attempts", attempt).Msg("Could not connect to database")
	}

	db.SetMaxIdleConns(maxIdleConnections)
	db.SetMaxOpenConns(maxOpenConnections)
	db.SetConnMaxLifetime(connMaxLifetime)

	log.Info().Str("name", name).Int("attempts", attempt).Msg("Connected to database")

	return db
}
