package database

import (
	"testing"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Host = "localhost"
	cfg.Username = "app"
	cfg.Password = "secret"
	cfg.Database = "corekit"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid configuration passes", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing host", func(c *Config) { c.Host = "" }},
		{"missing username", func(c *Config) { c.Username = "" }},
		{"missing password", func(c *Config) { c.Password = "" }},
		{"missing database", func(c *Config) { c.Database = "" }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "maybe" }},
		{"zero max open conns", func(c *Config) { c.MaxOpenConns = 0 }},
		{"zero max idle conns", func(c *Config) { c.MaxIdleConns = 0 }},
		{"zero dial timeout", func(c *Config) { c.DialTimeout = temporal.OfSeconds(0) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidConfig)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := validConfig()
	dsn := cfg.DSN()

	assert.Equal(t, "host=localhost port=5432 user=app password=secret dbname=corekit sslmode=disable", dsn)
}

func TestDefaultConfigTimeouts(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.ConnMaxLifetime.Equals(temporal.OfMinutes(5)))
	assert.True(t, cfg.DialTimeout.Equals(temporal.OfSeconds(5)))
}
