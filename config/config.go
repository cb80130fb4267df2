// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the service. Endpoints default to the
// production services; REDIS_URL is optional and switches event publishing
// to Redis Streams.
type Config struct {
	IdentityEndpoint string        `env:"LOCKI_ID_ENDPOINT" envDefault:"https://id.locki.io"`
	LedgerEndpoint   string        `env:"LEDGER_ENDPOINT" envDefault:"https://api.multiversx.com"`
	ProfilePath      string        `env:"PROFILE_PATH"`
	ListenAddr       string        `env:"LISTEN_ADDR" envDefault:":9010"`
	RedisURL         string        `env:"REDIS_URL"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
