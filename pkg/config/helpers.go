package config

import (
	"fmt"
	"os"
)

// Load reads the catalog configuration on top of GetDefaults.
func Load() (*CatalogConfig, error) {
	cfg := GetDefaults()
	if err := NewManager(ServiceName).LoadConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetServiceVersion returns the service version from config or environment
func GetServiceVersion(cfg *ServiceConfig) string {
	if cfg.Version != "" {
		return cfg.Version
	}
	if version := os.Getenv("SERVICE_VERSION"); version != "" {
		return version
	}
	return "dev"
}

// DSN renders the postgres connection string.
func (c DatabaseConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, sslMode)
}
