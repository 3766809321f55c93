package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"
)

// Config is the process configuration read from the environment
type Config struct {
	// Discord
	DiscordToken   string `env:"DISCORD_TOKEN,required,notEmpty"`
	DiscordAppID   string `env:"DISCORD_APP_ID"`
	DiscordGuildID string `env:"DISCORD_GUILD_ID"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// TalentCatalogPath points at a talent.json; empty uses the built-in catalog
	TalentCatalogPath string `env:"TALENT_CATALOG_PATH"`

	RollLogMaxEntries     int   `env:"ROLL_LOG_MAX_ENTRIES" envDefault:"100"`
	DefaultAttributeValue int   `env:"DEFAULT_ATTRIBUTE_VALUE" envDefault:"12"`
	DiceSeed              int64 `env:"DICE_SEED" envDefault:"0"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges env tags cannot express
func (c *Config) Validate() error {
	if c.RollLogMaxEntries < 1 {
		return errors.New("ROLL_LOG_MAX_ENTRIES must be at least 1")
	}
	// zero would be taken as "unset" by the character service
	if c.DefaultAttributeValue < 1 {
		return errors.New("DEFAULT_ATTRIBUTE_VALUE must be at least 1")
	}
	if c.RedisDB < 0 {
		return errors.New("REDIS_DB cannot be negative")
	}
	return nil
}

// RedisOptions returns the client options for the configured Redis server
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}
}
