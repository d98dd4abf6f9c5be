package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Logger         Logger
	Postgres       Postgres
	Kafka          Kafka
	Jobs           Jobs
	Requests       Requests
	UserServiceURL string `env:"USERS_SERVICE_URL"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"notifications"`
}

type Jobs struct {
	SweepEnabled   bool          `env:"JOB_SWEEP_ENABLED" envDefault:"true"`
	SweepInterval  time.Duration `env:"JOB_SWEEP_INTERVAL" envDefault:"1m"`
	OutboxInterval time.Duration `env:"JOB_OUTBOX_INTERVAL" envDefault:"5s"`
	OutboxBatch    int           `env:"JOB_OUTBOX_BATCH" envDefault:"100"`
	PruneInterval  time.Duration `env:"JOB_OUTBOX_PRUNE_INTERVAL" envDefault:"1h"`
	PruneAfter     time.Duration `env:"JOB_OUTBOX_PRUNE_AFTER" envDefault:"168h"`
}

type Requests struct {
	DefaultExpiry time.Duration `env:"REQUEST_DEFAULT_EXPIRY" envDefault:"168h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
