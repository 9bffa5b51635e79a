package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// HTTP surface
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// Request matching
	Lang      string `env:"SKILL_LANG" envDefault:"en-us"` // system language, e.g. "en-us"
	VocabPath string `env:"VOCAB_PATH"`                    // optional YAML vocabulary override

	// Settings store
	SettingsPath string `env:"SETTINGS_PATH" envDefault:"skill_settings.json"`
	DatabaseURL  string `env:"DATABASE_URL"` // when set, settings live in postgres

	// Resolver network behavior
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	RetryAttempts    int           `env:"RETRY_ATTEMPTS" envDefault:"3"`
	RetryDelay       time.Duration `env:"RETRY_DELAY" envDefault:"2s"`
	ResolverCacheTTL time.Duration `env:"RESOLVER_CACHE_TTL" envDefault:"5m"`
	FetchBudget      int           `env:"FETCH_BUDGET" envDefault:"60"` // outbound fetches per minute, 0 = unlimited

	// Display defaults attached to results
	SkillIcon string `env:"SKILL_ICON" envDefault:"ui/news.png"`
	DefaultBg string `env:"DEFAULT_BG" envDefault:"ui/bg.jpg"`

	Debug bool `env:"DEBUG"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Lang == "" {
		return fmt.Errorf("SKILL_LANG must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("RETRY_ATTEMPTS must be at least 1")
	}
	return nil
}
