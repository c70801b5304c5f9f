package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds the portal's ambient settings. The WiFi credential itself is
// deliberately not here: the portal serves exactly one compiled-in network.
type Config struct {
	Host        string `env:"PORTAL_HOST" envDefault:"0.0.0.0"`
	Port        string `env:"PORTAL_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	LoggerLevel  string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text

	// SessionMaxIdle is how long a visitor session may sit untouched
	// before the registry evicts it.
	SessionMaxIdle time.Duration `env:"SESSION_MAX_IDLE" envDefault:"30m"`
}

// Load reads .env (when present) and the environment.
func Load() (Config, error) {
	// A missing .env just means plain environment variables.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
