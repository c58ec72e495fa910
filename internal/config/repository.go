package config

import (
	"fmt"
	"os"
	"strings"

	"taskboard/internal/repository/sqldb"
)

// Environment selects which storage a RepositoryFactory hands out
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// GetEnvironment reads TASKBOARD_ENV, defaulting to development
func GetEnvironment() Environment {
	v := newViper()
	switch Environment(strings.ToLower(v.GetString("ENV"))) {
	case EnvTesting:
		return EnvTesting
	case EnvProduction:
		return EnvProduction
	default:
		return EnvDevelopment
	}
}

// RepositoryFactory creates repositories appropriate for an environment
type RepositoryFactory struct {
	env    Environment
	config *Config
}

// NewRepositoryFactory creates a factory for env backed by config
func NewRepositoryFactory(env Environment, config *Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, config: config}
}

// Environment returns the environment the factory was created for
func (f *RepositoryFactory) Environment() Environment {
	return f.env
}

// Create returns an in-memory repository under testing and the configured
// database otherwise
func (f *RepositoryFactory) Create() (sqldb.Repository, error) {
	if f.env == EnvTesting {
		return CreateTestRepository()
	}
	if f.env == EnvProduction && f.config.Database.Driver == DriverSQLite && f.config.GetDatabasePath() == ":memory:" {
		return nil, &ConfigError{Field: "database.filename", Message: "production cannot use an in-memory database"}
	}
	return CreateRepository(f.config)
}

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (sqldb.Repository, error) {
	if config.Database.Driver == DriverSQLite && config.Database.DSN == "" && config.GetDatabasePath() != ":memory:" {
		if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	repo, err := sqldb.Open(sqldb.Options{
		Driver:       config.Database.Driver,
		DSN:          config.DataSourceName(),
		QueryTimeout: config.GetQueryTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqldb.Repository, error) {
	repo, err := sqldb.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
