// Package search provides the connection factory for the search engine.
package search

import (
	"fmt"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
)

// Config represents the search engine connection settings
type Config struct {
	Addresses   []string
	Username    string
	Password    string
	DialTimeout temporal.Duration
}

// DefaultConfig returns a Config with safe defaults; addresses must be
// supplied by the caller
func DefaultConfig() Config {
	return Config{
		DialTimeout: temporal.OfSeconds(5),
	}
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if len(c.Addresses) == 0 {
		return fmt.Errorf("%w: at least one search address is required", errs.ErrInvalidConfig)
	}
	if c.DialTimeout.Millis() <= 0 {
		return fmt.Errorf("%w: dial timeout must be positive", errs.ErrInvalidConfig)
	}
	return nil
}
