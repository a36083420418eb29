package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	ServerAddress  string        `env:"SERVER_ADDRESS"`
	DatabaseDSN    string        `env:"DATABASE_DSN"`
	RedisAddr      string        `env:"REDIS_ADDR"`
	CacheTTL       time.Duration `env:"CACHE_TTL"`
	QREndpoint     string        `env:"QR_ENDPOINT"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES"`
}

func ParseFlags() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	envValues := *cfg

	flag.StringVar(&cfg.ServerAddress, "a", "localhost:8080", "Address of the server")
	flag.StringVar(&cfg.DatabaseDSN, "d", "", "PostgreSQL DSN (in-memory store when empty)")
	flag.StringVar(&cfg.RedisAddr, "r", "", "Redis address for the resolve cache (disabled when empty)")
	flag.DurationVar(&cfg.CacheTTL, "t", time.Hour, "TTL for cached short link lookups")
	flag.StringVar(&cfg.QREndpoint, "q", "", "External QR rendering endpoint (built-in default when empty)")
	flag.Int64Var(&cfg.MaxUploadBytes, "m", 10<<20, "Maximum accepted upload size in bytes")

	flag.Parse()

	if envValues.ServerAddress != "" {
		cfg.ServerAddress = envValues.ServerAddress
	}
	if envValues.DatabaseDSN != "" {
		cfg.DatabaseDSN = envValues.DatabaseDSN
	}
	if envValues.RedisAddr != "" {
		cfg.RedisAddr = envValues.RedisAddr
	}
	if envValues.CacheTTL != 0 {
		cfg.CacheTTL = envValues.CacheTTL
	}
	if envValues.QREndpoint != "" {
		cfg.QREndpoint = envValues.QREndpoint
	}
	if envValues.MaxUploadBytes != 0 {
		cfg.MaxUploadBytes = envValues.MaxUploadBytes
	}

	cfg.applyDefaultValues()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache TTL cannot be negative")
	}
	return nil
}

func (c *Config) applyDefaultValues() {
	if c.ServerAddress == "" {
		c.ServerAddress = "localhost:8080"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = time.Hour
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = 10 << 20
	}
}
