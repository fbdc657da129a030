package app

import (
	server "github.com/admin/astro-services/natal-api/internal/adapters/primary/http"
	ephemerisAdapter "github.com/admin/astro-services/natal-api/internal/adapters/secondary/ephemeris"
	kafkaAdapter "github.com/admin/astro-services/natal-api/internal/adapters/secondary/kafka"
	"github.com/admin/astro-services/natal-api/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/astro-services/natal-api/internal/adapters/secondary/storage/redis"
	"github.com/admin/astro-services/natal-api/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres  *pg.Config               `envconfig:"POSTGRES"`
	Log       *logger.Config           `envconfig:"LOG"`
	Server    *server.Config           `envconfig:"APISERVER"`
	Ephemeris *ephemerisAdapter.Config `envconfig:"EPHEMERIS"`
	Redis     *redisAdapter.Config     `envconfig:"REDIS"`
	Kafka     *kafkaAdapter.Config     `envconfig:"KAFKA"`
	Jobs      JobsConfig               `envconfig:"JOBS"`
	CacheOn   bool                     `envconfig:"CACHE_ENABLED" default:"false"`
}

// JobsConfig конфигурация периодических джоб
type JobsConfig struct {
	Enabled       bool   `envconfig:"ENABLED" default:"false"`
	PositionsCity string `envconfig:"POSITIONS_CITY" default:"Greenwich, GB"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
