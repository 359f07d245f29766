package broker

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/port/core"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQConn implements Conn over an AMQP connection and channel
type rabbitMQConn struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  core.Logger
}

func newRabbitMQConn(cfg Config, log core.Logger) (*rabbitMQConn, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: dial rabbitmq: %v", errs.ErrConnectionFailed, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open rabbitmq channel: %v", errs.ErrConnectionFailed, err)
	}

	log.Info("broker connected", map[string]any{
		"driver": DriverRabbitMQ,
	})

	return &rabbitMQConn{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

// Publish sends a payload to the given topic via the default exchange
func (c *rabbitMQConn) Publish(ctx context.Context, topic string, payload []byte) error {
	err := c.channel.PublishWithContext(ctx, "", topic, false, false, amqp.Publishing{
		ContentType: "application/octet-stream",
		Body:        payload,
	})
	if err != nil {
		return fmt.Errorf("%w: rabbitmq publish: %v", errs.ErrConnectionFailed, err)
	}
	return nil
}

// Ping reports whether the underlying connection is still open
func (c *rabbitMQConn) Ping(ctx context.Context) error {
	if c.conn.IsClosed() {
		return fmt.Errorf("%w: rabbitmq connection is closed", errs.ErrConnectionFailed)
	}
	return nil
}

// Close closes the channel and the connection
func (c *rabbitMQConn) Close() error {
	if err := c.channel.Close(); err != nil {
		_ = c.conn.Close()
		return err
	}
	return c.conn.Close()
}
