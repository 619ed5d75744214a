package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "panelprompt.yaml"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type ProjectConfig struct {
	Project string        `yaml:"project"`
	Version int           `yaml:"version"`
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Assets  AssetsConfig  `yaml:"assets"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type CacheConfig struct {
	TTL string `yaml:"ttl"`
}

// Duration is the parsed TTL; zero disables the read cache.
func (c CacheConfig) Duration() time.Duration {
	if strings.TrimSpace(c.TTL) == "" {
		return 0
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0
	}
	return d
}

type AssetsConfig struct {
	Paths   []string `yaml:"paths"`
	Exclude []string `yaml:"exclude"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	cfg.Storage.DSN = os.ExpandEnv(cfg.Storage.DSN)
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverSQLite
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}

	dsn := strings.TrimSpace(cfg.Storage.DSN)
	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if !strings.HasPrefix(dsn, "sqlite://") {
			return fmt.Errorf("sqlite storage dsn must start with sqlite://")
		}
	case DriverPostgres:
		if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
			return fmt.Errorf("postgres storage dsn must start with postgres:// or postgresql://")
		}
	default:
		return fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}

	if ttl := strings.TrimSpace(cfg.Cache.TTL); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("invalid cache ttl %q: %w", ttl, err)
		}
		if d < 0 {
			return fmt.Errorf("cache ttl must not be negative")
		}
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", cfg.Log.Level)
	}

	for i, path := range cfg.Assets.Paths {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("asset path %d is empty", i)
		}
	}

	return nil
}

// Default is the config written by `panelprompt init`.
func Default(project string) string {
	return fmt.Sprintf(`project: %s
version: 1

storage:
  driver: sqlite
  dsn: sqlite://./panelprompt.db

cache:
  ttl: 30s

assets:
  paths:
    - ./assets/
  exclude: []

log:
  level: info
`, project)
}
