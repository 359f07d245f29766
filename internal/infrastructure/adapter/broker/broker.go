// Package broker provides the connection factory for the message broker.
// Two drivers are supported, selected by configuration: kafka and rabbitmq.
package broker

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/port/core"
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
)

// Driver names accepted by Config
const (
	DriverKafka    = "kafka"
	DriverRabbitMQ = "rabbitmq"
)

// Conn is an open broker connection
type Conn interface {
	// Publish sends a payload to the given topic
	Publish(ctx context.Context, topic string, payload []byte) error
	// Ping verifies the connection is still alive
	Ping(ctx context.Context) error
	// Close closes the broker connection
	Close() error
}

// Config represents the broker connection settings
type Config struct {
	Driver      string
	Brokers     []string // kafka bootstrap addresses
	URL         string   // rabbitmq connection url
	GroupID     string
	DialTimeout temporal.Duration
}

// DefaultConfig returns a Config with safe defaults; driver and endpoints
// must be supplied by the caller
func DefaultConfig() Config {
	return Config{
		Driver:      DriverKafka,
		DialTimeout: temporal.OfSeconds(5),
	}
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	switch c.Driver {
	case DriverKafka:
		if len(c.Brokers) == 0 {
			return fmt.Errorf("%w: at least one kafka broker address is required", errs.ErrInvalidConfig)
		}
	case DriverRabbitMQ:
		if c.URL == "" {
			return fmt.Errorf("%w: rabbitmq url is required", errs.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported broker driver: %s", errs.ErrInvalidConfig, c.Driver)
	}
	if c.DialTimeout.Millis() <= 0 {
		return fmt.Errorf("%w: dial timeout must be positive", errs.ErrInvalidConfig)
	}
	return nil
}

// Connect opens a broker connection for the configured driver and verifies
// it before returning
func Connect(cfg Config, log core.Logger) (Conn, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid broker configuration: %w", err)
	}

	switch cfg.Driver {
	case DriverKafka:
		return newKafkaConn(cfg, log)
	case DriverRabbitMQ:
		return newRabbitMQConn(cfg, log)
	default:
		// Unreachable after Validate; kept so the switch is exhaustive
		return nil, fmt.Errorf("%w: unsupported broker driver: %s", errs.ErrInvalidConfig, cfg.Driver)
	}
}
