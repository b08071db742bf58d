package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// HunterCalc holds all configuration for the calculation service and CLI.
type HunterCalc struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Websocket stream
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// Database (pass history)
	Database DatabaseConfig `yaml:"database"`

	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Engine
	BatchWorkers   int  `yaml:"batch_workers"`   // parallel snapshots in `calc`
	SkipUnchanged  bool `yaml:"skip_unchanged"`  // don't republish identical snapshots
	CheckTemplates bool `yaml:"check_templates"` // log formulas with undeclared variables
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Addr returns the HTTP listen address.
func (c HunterCalc) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c HunterCalc) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// DefaultHunterCalc returns HunterCalc config with sensible defaults.
func DefaultHunterCalc() HunterCalc {
	return HunterCalc{
		BindAddress:  "0.0.0.0",
		Port:         8080,
		WriteTimeout: 10 * time.Second,
		LogLevel:     "info",
		BatchWorkers: 4,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "huntercalc",
			Password: "huntercalc",
			DBName:   "huntercalc",
			SSLMode:  "disable",
		},
	}
}

// LoadHunterCalc loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadHunterCalc(path string) (HunterCalc, error) {
	cfg := DefaultHunterCalc()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.BatchWorkers < 1 {
		cfg.BatchWorkers = 1
	}

	return cfg, nil
}
