package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment. The store
// URI may carry TLS options (tlsCAFile and friends) when the target cluster
// requires a custom trust store.
type Config struct {
	StoreURI   string `env:"STORE_URI" envDefault:"mongodb://localhost:27017"`
	Database   string `env:"STORE_DATABASE" envDefault:"sample-database"`
	Collection string `env:"STORE_COLLECTION" envDefault:"sample-collection"`

	// TemplateDir holds the JSON template resources named below.
	TemplateDir string   `env:"TEMPLATE_DIR" envDefault:"templates"`
	SeedFiles   []string `env:"SEED_FILES" envSeparator:"," envDefault:"orders_2001_3000.json,orders_3001_4000.json"`
	BaseFiles   []string `env:"BASE_FILES" envSeparator:"," envDefault:"order_1.json"`

	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	LogDir     string `env:"LOG_DIR" envDefault:"."`

	// RateLimit caps store operations per second per operation run, 0 means
	// no limit.
	RateLimit int `env:"RATE_LIMIT" envDefault:"0"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment config: %w", err)
	}
	return cfg, nil
}
