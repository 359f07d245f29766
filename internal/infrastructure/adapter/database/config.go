// Package database provides the connection factory for the relational store.
package database

import (
	"fmt"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
)

// Config represents the relational store connection settings. Timeouts and
// lifetimes are expressed with the temporal core so callers hand the factory
// the same duration values they use everywhere else.
type Config struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime temporal.Duration
	ConnMaxIdleTime temporal.Duration
	DialTimeout     temporal.Duration
	LogLevel        string
}

// DefaultConfig returns a Config with safe defaults; host and credentials must
// be supplied by the caller
func DefaultConfig() Config {
	return Config{
		Port:            5432,
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: temporal.OfMinutes(5),
		ConnMaxIdleTime: temporal.OfMinutes(5),
		DialTimeout:     temporal.OfSeconds(5),
		LogLevel:        "info",
	}
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: database host is required", errs.ErrInvalidConfig)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: invalid port number: %d", errs.ErrInvalidConfig, c.Port)
	}
	if c.Username == "" {
		return fmt.Errorf("%w: database username is required", errs.ErrInvalidConfig)
	}
	if c.Password == "" {
		return fmt.Errorf("%w: database password is required", errs.ErrInvalidConfig)
	}
	if c.Database == "" {
		return fmt.Errorf("%w: database name is required", errs.ErrInvalidConfig)
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("%w: invalid SSL mode: %s", errs.ErrInvalidConfig, c.SSLMode)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("%w: max open connections must be positive, got %d", errs.ErrInvalidConfig, c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("%w: max idle connections must be positive, got %d", errs.ErrInvalidConfig, c.MaxIdleConns)
	}
	if c.DialTimeout.Millis() <= 0 {
		return fmt.Errorf("%w: dial timeout must be positive", errs.ErrInvalidConfig)
	}

	return nil
}

// DSN returns the database connection string
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}
