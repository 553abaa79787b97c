package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST,     default=localhost"`
	Port     int    `env:"POSTGRES_PORT,     default=5432"`
	User     string `env:"POSTGRES_USER,     default=arcadia"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB,       default=arcadia"`
	SSLMode  string `env:"POSTGRES_SSLMODE,  default=disable"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=arcadia"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type AuthConfig struct {
	MaxLoginAttempts int           `env:"AUTH_MAX_LOGIN_ATTEMPTS, default=5"`
	ThrottleWindow   time.Duration `env:"AUTH_THROTTLE_WINDOW,    default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
