package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// PostgresEndpoint is one side of the read/write database split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name          string `envconfig:"APP_NAME"       default:"hotel"`
		Version       string `envconfig:"VERSION"        default:"dev"`
		Timezone      string `envconfig:"TIMEZONE"`
		Currency      string `envconfig:"CURRENCY"       default:"PKR"`
		BookingPrefix string `envconfig:"BOOKING_PREFIX" default:"HKH"`
		CORS          struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Pricing struct {
		// DefaultPrices overrides the built-in fallback table, e.g. "standard:6500,deluxe:9500".
		DefaultPrices map[string]string `envconfig:"DEFAULT_PRICES"`
		// PeakSeasons lists inclusive MM-DD:MM-DD windows, e.g. "12-15:01-05,06-01:08-31".
		PeakSeasons []string `envconfig:"PEAK_SEASONS"`
	} `envconfig:"PRICING"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry            int              `envconfig:"MAX_RETRY"`
			RetryWaitTime       int              `envconfig:"RETRY_WAIT_TIME"`
			QueryTimeoutSeconds int              `envconfig:"QUERY_TIMEOUT_SECONDS" default:"5"`
			MigrationTable      string           `envconfig:"MIGRATION_TABLE"`
			AutoMigrate         bool             `envconfig:"AUTO_MIGRATE"`
			Prefix              string           `envconfig:"PREFIX"`
			Read                PostgresEndpoint `envconfig:"READ"`
			Write               PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			BookingEvents string `envconfig:"BOOKING_EVENTS" default:"booking.events"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			// Endpoint left empty keeps spans in-process without exporting them.
			Endpoint    string  `envconfig:"ENDPOINT"`
			SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1"`
		} `envconfig:"OTEL"`
		S3 struct {
			Region          string `envconfig:"REGION"            default:"auto"`
			Endpoint        string `envconfig:"ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicURL       string `envconfig:"PUBLIC_URL"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

const currencyCodeLength = 3

var (
	conf    Config
	loadErr error
	once    sync.Once
)

// Load reads the optional .env file and then the process environment. It runs
// once per process; later calls return the same result.
func Load() (*Config, error) {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Debug().Err(err).Msg("No .env file loaded, using the process environment")
		}

		if err := envconfig.Process("", &conf); err != nil {
			loadErr = errors.Wrap(err, "processing environment variables")

			return
		}

		if err := conf.validate(); err != nil {
			loadErr = err

			return
		}

		log.Info().Str("app", conf.App.Name).Str("env", conf.Server.Env).Msg("Configuration loaded")
	})

	return &conf, loadErr
}

func Get() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	return cfg
}

func (c *Config) validate() error {
	if len(c.App.Currency) != currencyCodeLength {
		return errors.Errorf("APP_CURRENCY must be a three letter code, got %q", c.App.Currency)
	}

	if c.App.BookingPrefix == "" {
		return errors.New("APP_BOOKING_PREFIX must not be empty")
	}

	if c.App.RateLimiter.Enable && (c.App.RateLimiter.MaxRequests <= 0 || c.App.RateLimiter.WindowSeconds <= 0) {
		return errors.New("APP_RATE_LIMITER needs positive MAX_REQUESTS and WINDOW_SECONDS when enabled")
	}

	if c.External.Otel.SampleRatio < 0 || c.External.Otel.SampleRatio > 1 {
		return errors.Errorf("EXTERNAL_OTEL_SAMPLE_RATIO must be within [0, 1], got %v", c.External.Otel.SampleRatio)
	}

	return nil
}
