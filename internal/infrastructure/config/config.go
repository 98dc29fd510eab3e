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

	// DefaultRole is stamped onto every created account, overriding any
	// client-supplied role.
	DefaultRole string `env:"DEFAULT_ROLE, default=user"`

	// LegacyFindNotFound preserves the original API behaviour of answering
	// 400 (instead of 404) when a GET by username misses. Edit and delete
	// always answer 404 on a miss.
	LegacyFindNotFound bool `env:"LEGACY_FIND_NOT_FOUND, default=true"`

	Mongo    MongoConfig
	Upstream UpstreamConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=user_directory"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type UpstreamConfig struct {
	BaseURL string        `env:"UPSTREAM_BASE_URL, default=http://localhost:8081/api/country-city-service/v1"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT,  default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
