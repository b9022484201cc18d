package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration of the server. Every value has
// a default, and database settings come from DB_* environment variables.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Identity struct {
		URL string `yaml:"url"`
	} `yaml:"identity"`
	Nats struct {
		Enabled bool   `yaml:"enabled"`
		URL     string `yaml:"url"`
	} `yaml:"nats"`
	Outbox struct {
		PollInterval time.Duration `yaml:"poll_interval"`
		BatchSize    int32         `yaml:"batch_size"`
	} `yaml:"outbox"`
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = getEnv("PORT", "8080")
	cfg.Identity.URL = getEnv("IDENTITY_URL", "http://localhost:9090")
	cfg.Nats.URL = getEnv("NATS_URL", "nats://localhost:4222")
	cfg.Outbox.PollInterval = 5 * time.Second
	cfg.Outbox.BatchSize = 100
	return cfg
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Outbox.PollInterval <= 0 {
		cfg.Outbox.PollInterval = 5 * time.Second
	}
	if cfg.Outbox.BatchSize <= 0 {
		cfg.Outbox.BatchSize = 100
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
