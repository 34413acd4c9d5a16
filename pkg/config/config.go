package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the interface that all loadable configs must implement.
type Config interface {
	Validate() error
}

// CatalogConfig is the full configuration of the catalog process.
type CatalogConfig struct {
	Service    ServiceConfig    `koanf:"service"`
	Logger     LoggerConfig     `koanf:"logger"`
	Pagination PaginationConfig `koanf:"pagination"`
	EventBus   EventBusConfig   `koanf:"eventbus"`
	Search     SearchConfig     `koanf:"search"`
	Database   DatabaseConfig   `koanf:"database"`
}

// ServiceConfig contains service metadata.
type ServiceConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // dev, staging, production
}

// LoggerConfig contains logging configuration.
type LoggerConfig struct {
	Level       string `koanf:"level"`  // debug, info, warn, error
	Format      string `koanf:"format"` // json, console
	Development bool   `koanf:"development"`
	OutputPath  string `koanf:"output_path"` // stdout, stderr, or file path
}

// PaginationConfig bounds list queries.
type PaginationConfig struct {
	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`
}

// EventBusConfig tunes the in-process event bus.
type EventBusConfig struct {
	// MaxConcurrency caps concurrently running handlers per event; 0 means unbounded
	MaxConcurrency int `koanf:"max_concurrency"`
}

// SearchConfig selects the search engine adapter.
type SearchConfig struct {
	Engine string `koanf:"engine"` // memory, database
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"` // sqlite, postgres
	Path            string        `koanf:"path"`   // sqlite file, ":memory:" allowed
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Database        string        `koanf:"database"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxConnections  int           `koanf:"max_connections"`
	MinConnections  int           `koanf:"min_connections"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `koanf:"max_conn_idle_time"`
	LogQueries      bool          `koanf:"log_queries"`
}

// Manager handles configuration loading and parsing.
type Manager struct {
	k           *koanf.Koanf
	serviceName string
	configPaths []string
}

// NewManager creates a new configuration manager.
func NewManager(serviceName string) *Manager {
	return &Manager{
		k:           koanf.New("."),
		serviceName: serviceName,
		configPaths: getDefaultConfigPaths(serviceName),
	}
}

// WithConfigPaths replaces the file lookup list.
func (m *Manager) WithConfigPaths(paths ...string) *Manager {
	m.configPaths = paths
	return m
}

// LoadConfig loads configuration from all sources.
func (m *Manager) LoadConfig(cfg Config) error {
	// 1. Load defaults from the struct passed in
	if err := m.loadDefaults(cfg); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load from config files (in order of precedence)
	for _, path := range m.configPaths {
		if err := m.loadFromFile(path); err != nil {
			// Skip if file doesn't exist, error on parse failures
			if !os.IsNotExist(err) {
				return fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		}
	}

	// 3. Load from environment variables
	if err := m.loadFromEnv(); err != nil {
		return fmt.Errorf("failed to load from environment: %w", err)
	}

	// 4. Unmarshal into the config struct
	if err := m.k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate the configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

func (m *Manager) loadDefaults(cfg Config) error {
	return m.k.Load(structs.Provider(cfg, "koanf"), nil)
}

func (m *Manager) loadFromFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	return m.k.Load(file.Provider(path), parser)
}

// loadFromEnv maps CATALOG_DATABASE_HOST to database.host. Keys whose
// segments contain underscores (default_limit) are matched against the
// already loaded key set.
func (m *Manager) loadFromEnv() error {
	prefix := strings.ToUpper(m.serviceName) + "_"
	known := m.k.Keys()

	return m.k.Load(env.Provider(prefix, ".", func(s string) string {
		raw := strings.ToLower(strings.TrimPrefix(s, prefix))
		for _, key := range known {
			if strings.ReplaceAll(key, ".", "_") == raw {
				return key
			}
		}
		return strings.ReplaceAll(raw, "_", ".")
	}), nil)
}

func getDefaultConfigPaths(serviceName string) []string {
	paths := []string{
		"config.yaml",
		"config.json",
		fmt.Sprintf("%s.yaml", serviceName),
		fmt.Sprintf("%s.json", serviceName),

		"configs/config.yaml",
		"configs/config.json",
		fmt.Sprintf("configs/%s.yaml", serviceName),
		fmt.Sprintf("configs/%s.json", serviceName),

		fmt.Sprintf("configs/%s.%s.yaml", serviceName, getEnvironment()),
		fmt.Sprintf("configs/%s.%s.json", serviceName, getEnvironment()),
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		paths = append([]string{configPath}, paths...)
	}

	return paths
}

func getEnvironment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "dev"
}

// Validate validates the catalog configuration.
func (c *CatalogConfig) Validate() error {
	if c.Service.Name == "" {
		return errors.New("service name is required")
	}
	if c.Pagination.MaxLimit < 1 {
		return fmt.Errorf("invalid max limit: %d", c.Pagination.MaxLimit)
	}
	if c.Pagination.DefaultLimit < 1 || c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		return fmt.Errorf("default limit must be between 1 and %d, got %d", c.Pagination.MaxLimit, c.Pagination.DefaultLimit)
	}
	if c.EventBus.MaxConcurrency < 0 {
		return fmt.Errorf("invalid event bus max concurrency: %d", c.EventBus.MaxConcurrency)
	}

	switch c.Search.Engine {
	case SearchEngineMemory:
	case SearchEngineDatabase:
		return c.Database.Validate()
	default:
		return fmt.Errorf("unknown search engine: %q", c.Search.Engine)
	}
	return nil
}

// Validate checks the connection settings for the selected driver.
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return errors.New("sqlite path is required")
		}
	case DriverPostgres:
		if c.Host == "" {
			return errors.New("database host is required")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Port)
		}
		if c.Database == "" {
			return errors.New("database name is required")
		}
	default:
		return fmt.Errorf("unknown database driver: %q", c.Driver)
	}
	if c.MaxConnections < 0 || c.MinConnections < 0 || c.MinConnections > c.MaxConnections {
		return fmt.Errorf("invalid connection pool bounds: min %d, max %d", c.MinConnections, c.MaxConnections)
	}
	return nil
}

// GetDefaults returns default configuration values.
func GetDefaults() *CatalogConfig {
	return &CatalogConfig{
		Service: ServiceConfig{
			Name:        ServiceName,
			Environment: "dev",
		},
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "json",
			Development: false,
			OutputPath:  "stdout",
		},
		Pagination: PaginationConfig{
			DefaultLimit: DefaultPageLimit,
			MaxLimit:     DefaultMaxPageLimit,
		},
		EventBus: EventBusConfig{
			MaxConcurrency: DefaultEventBusConcurrency,
		},
		Search: SearchConfig{
			Engine: SearchEngineMemory,
		},
		Database: DatabaseConfig{
			Driver:          DriverSQLite,
			Path:            "catalog.db",
			Host:            "localhost",
			Port:            DefaultPostgresPort,
			User:            "catalog",
			Password:        "catalog_dev",
			Database:        "catalog_dev",
			SSLMode:         "disable",
			MaxConnections:  DefaultMaxConnections,
			MinConnections:  DefaultMinConnections,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: DefaultMaxConnIdleTime,
		},
	}
}
