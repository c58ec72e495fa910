package config

import (
	"strconv"
	"time"
)

// Loader builds a Config from defaults, then TASKBOARD_* environment
// variables, then command line overrides
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load applies the environment to the defaults and validates the result
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides is Load with flag values applied last. Validation runs
// once every source has been applied.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	overrides.apply(l.config)

	if err := l.config.Validate(); err != nil {
		return nil, err
	}
	return l.config, nil
}

// ConfigOverrides holds the command line flags the user set. Nil fields
// leave the loaded value alone.
type ConfigOverrides struct {
	DBDriver       *string
	DBDir          *string
	DBFilename     *string
	DBDSN          *string
	DBQueryTimeout *time.Duration

	Addr           *string
	AllowedOrigins *[]string

	APIURL        *string
	ClientTimeout *time.Duration

	Timeout *time.Duration
	Debug   *bool
}

func (o *ConfigOverrides) apply(c *Config) {
	if o == nil {
		return
	}

	override(&c.Database.Driver, o.DBDriver)
	override(&c.Database.Dir, o.DBDir)
	override(&c.Database.Filename, o.DBFilename)
	override(&c.Database.DSN, o.DBDSN)
	override(&c.Database.QueryTimeout, o.DBQueryTimeout)

	override(&c.Server.Addr, o.Addr)
	override(&c.Server.AllowedOrigins, o.AllowedOrigins)

	override(&c.Client.BaseURL, o.APIURL)
	override(&c.Client.RequestTimeout, o.ClientTimeout)

	override(&c.Application.Timeout, o.Timeout)
	override(&c.Application.Debug, o.Debug)
}

func override[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// parseOr returns parse(s), or fallback when s does not parse
func parseOr[T any](s string, parse func(string) (T, error), fallback T) T {
	if v, err := parse(s); err == nil {
		return v
	}
	return fallback
}

// parseFileMode parses an octal permission string such as "0755"
func parseFileMode(s string) (uint32, error) {
	u, err := strconv.ParseUint(s, 8, 32)
	return uint32(u), err
}
