package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Driver names accepted by DatabaseConfig.Driver
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration options for the taskboard application
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Client      ClientConfig
	Defaults    DefaultsConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver         string        `env:"TASKBOARD_DB_DRIVER"`
	Dir            string        `env:"TASKBOARD_DB_DIR"`
	Filename       string        `env:"TASKBOARD_DB_FILENAME"`
	DSN            string        `env:"TASKBOARD_DB_DSN"`
	QueryTimeout   time.Duration `env:"TASKBOARD_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TASKBOARD_DB_DIR_PERMISSIONS"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `env:"TASKBOARD_SERVER_ADDR"`
	APIPrefix       string        `env:"TASKBOARD_SERVER_API_PREFIX"`
	AllowedOrigins  []string      `env:"TASKBOARD_SERVER_ALLOWED_ORIGINS"`
	ShutdownTimeout time.Duration `env:"TASKBOARD_SERVER_SHUTDOWN_TIMEOUT"`
}

// ClientConfig holds configuration for the API client used by the board
type ClientConfig struct {
	BaseURL        string        `env:"TASKBOARD_API_URL"`
	RequestTimeout time.Duration `env:"TASKBOARD_CLIENT_TIMEOUT"`
}

// DefaultsConfig holds the colors applied when none is supplied
type DefaultsConfig struct {
	CategoryColor string `env:"TASKBOARD_DEFAULT_CATEGORY_COLOR"`
	TagColor      string `env:"TASKBOARD_DEFAULT_TAG_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TASKBOARD_APP_TIMEOUT"`
	Debug   bool          `env:"TASKBOARD_DEBUG"`
}

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "TASKBOARD"

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".taskboard")

	return &Config{
		Database: DatabaseConfig{
			Driver:         DriverSQLite,
			Dir:            defaultDBDir,
			Filename:       "taskboard.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Addr:            ":3001",
			APIPrefix:       "/api",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Client: ClientConfig{
			BaseURL:        "http://localhost:3001/api",
			RequestTimeout: 0,
		},
		Defaults: DefaultsConfig{
			CategoryColor: "#3b82f6",
			TagColor:      "#10b981",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Debug:   false,
		},
	}
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Filename == ":memory:" {
		return c.Database.Filename
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// DataSourceName returns the connection string handed to database/sql.
// An explicit DSN wins; otherwise SQLite opens the configured file with
// foreign keys enforced.
func (c *Config) DataSourceName() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	return c.GetDatabasePath() + "?_pragma=foreign_keys(1)"
}

// newViper returns a viper instance bound to the TASKBOARD_ environment
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadFromEnvironment loads configuration from TASKBOARD_* environment variables.
// Unparseable values leave the current setting untouched.
func (c *Config) LoadFromEnvironment() error {
	v := newViper()

	// Database configuration
	if v.IsSet("DB_DRIVER") {
		c.Database.Driver = strings.ToLower(v.GetString("DB_DRIVER"))
	}
	if v.IsSet("DB_DIR") {
		c.Database.Dir = v.GetString("DB_DIR")
	}
	if v.IsSet("DB_FILENAME") {
		c.Database.Filename = v.GetString("DB_FILENAME")
	}
	if v.IsSet("DB_DSN") {
		c.Database.DSN = v.GetString("DB_DSN")
	}
	if v.IsSet("DB_QUERY_TIMEOUT") {
		c.Database.QueryTimeout = parseOr(v.GetString("DB_QUERY_TIMEOUT"), time.ParseDuration, c.Database.QueryTimeout)
	}
	if v.IsSet("DB_DIR_PERMISSIONS") {
		c.Database.DirPermissions = parseOr(v.GetString("DB_DIR_PERMISSIONS"), parseFileMode, c.Database.DirPermissions)
	}

	// Server configuration
	if v.IsSet("SERVER_ADDR") {
		c.Server.Addr = v.GetString("SERVER_ADDR")
	} else if v.IsSet("PORT") {
		c.Server.Addr = ":" + v.GetString("PORT")
	}
	if v.IsSet("SERVER_API_PREFIX") {
		c.Server.APIPrefix = v.GetString("SERVER_API_PREFIX")
	}
	if v.IsSet("SERVER_ALLOWED_ORIGINS") {
		c.Server.AllowedOrigins = splitList(v.GetString("SERVER_ALLOWED_ORIGINS"))
	}
	if v.IsSet("SERVER_SHUTDOWN_TIMEOUT") {
		c.Server.ShutdownTimeout = parseOr(v.GetString("SERVER_SHUTDOWN_TIMEOUT"), time.ParseDuration, c.Server.ShutdownTimeout)
	}

	// Client configuration
	if v.IsSet("API_URL") {
		c.Client.BaseURL = v.GetString("API_URL")
	}
	if v.IsSet("CLIENT_TIMEOUT") {
		c.Client.RequestTimeout = parseOr(v.GetString("CLIENT_TIMEOUT"), time.ParseDuration, c.Client.RequestTimeout)
	}

	// Default colors
	if v.IsSet("DEFAULT_CATEGORY_COLOR") {
		c.Defaults.CategoryColor = v.GetString("DEFAULT_CATEGORY_COLOR")
	}
	if v.IsSet("DEFAULT_TAG_COLOR") {
		c.Defaults.TagColor = v.GetString("DEFAULT_TAG_COLOR")
	}

	// Application configuration
	if v.IsSet("APP_TIMEOUT") {
		c.Application.Timeout = parseOr(v.GetString("APP_TIMEOUT"), time.ParseDuration, c.Application.Timeout)
	}
	if v.IsSet("DEBUG") {
		c.Application.Debug = parseOr(v.GetString("DEBUG"), strconv.ParseBool, true)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.DSN == "" {
			if c.Database.Filename == "" {
				return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
			}
			if c.Database.Dir == "" && c.Database.Filename != ":memory:" {
				return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
			}
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return &ConfigError{Field: "database.dsn", Message: "postgres requires a DSN"}
		}
	default:
		return &ConfigError{Field: "database.driver", Message: "driver must be one of sqlite, postgres"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if !strings.HasPrefix(c.Server.APIPrefix, "/") {
		return &ConfigError{Field: "server.api_prefix", Message: "API prefix must start with /"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Validate client configuration
	if c.Client.BaseURL == "" {
		return &ConfigError{Field: "client.base_url", Message: "API base URL cannot be empty"}
	}
	if c.Client.RequestTimeout < 0 {
		return &ConfigError{Field: "client.request_timeout", Message: "request timeout cannot be negative"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
