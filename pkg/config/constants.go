package config

import "time"

const (
	// ServiceName is also the env var prefix (CATALOG_).
	ServiceName = "catalog"

	// Search engines.
	SearchEngineMemory   = "memory"
	SearchEngineDatabase = "database"

	// Database drivers.
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultPostgresPort = 5432

	// Connection pool defaults.
	DefaultMaxConnections  = 25
	DefaultMinConnections  = 5
	DefaultMaxConnIdleTime = 30 * time.Minute

	// List defaults.
	DefaultPageLimit    = 20
	DefaultMaxPageLimit = 100

	DefaultEventBusConcurrency = 8
)
