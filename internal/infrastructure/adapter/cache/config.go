// Package cache provides the connection factory for the Redis cache.
package cache

import (
	"fmt"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
)

// Config represents the cache connection settings
type Config struct {
	Addresses    []string
	Password     string
	DB           int
	ClusterMode  bool
	PoolSize     int
	DialTimeout  temporal.Duration
	ReadTimeout  temporal.Duration
	WriteTimeout temporal.Duration
}

// DefaultConfig returns a Config with safe defaults; addresses must be
// supplied by the caller
func DefaultConfig() Config {
	return Config{
		PoolSize:     10,
		DialTimeout:  temporal.OfSeconds(5),
		ReadTimeout:  temporal.OfSeconds(3),
		WriteTimeout: temporal.OfSeconds(3),
	}
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if len(c.Addresses) == 0 {
		return fmt.Errorf("%w: at least one cache address is required", errs.ErrInvalidConfig)
	}
	if c.PoolSize <= 0 {
		return fmt.Errorf("%w: pool size must be positive, got %d", errs.ErrInvalidConfig, c.PoolSize)
	}
	if c.DialTimeout.Millis() <= 0 {
		return fmt.Errorf("%w: dial timeout must be positive", errs.ErrInvalidConfig)
	}
	if c.DB < 0 {
		return fmt.Errorf("%w: db index must be non-negative, got %d", errs.ErrInvalidConfig, c.DB)
	}
	return nil
}
