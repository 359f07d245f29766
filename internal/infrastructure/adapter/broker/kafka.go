package broker

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/port/core"
	"github.com/segmentio/kafka-go"
)

// kafkaConn implements Conn over a shared kafka writer
type kafkaConn struct {
	writer  *kafka.Writer
	brokers []string
	logger  core.Logger
}

func newKafkaConn(cfg Config, log core.Logger) (*kafkaConn, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	conn := &kafkaConn{
		writer:  writer,
		brokers: cfg.Brokers,
		logger:  log,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout.Std())
	defer cancel()

	if err := conn.Ping(ctx); err != nil {
		_ = writer.Close()
		return nil, err
	}

	log.Info("broker connected", map[string]any{
		"driver":  DriverKafka,
		"brokers": cfg.Brokers,
	})

	return conn, nil
}

// Publish sends a payload to the given topic
func (c *kafkaConn) Publish(ctx context.Context, topic string, payload []byte) error {
	err := c.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: payload,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("%w: kafka publish: %v", errs.ErrConnectionFailed, err)
	}
	return nil
}

// Ping dials the first bootstrap broker to verify reachability
func (c *kafkaConn) Ping(ctx context.Context) error {
	dialer := &kafka.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", c.brokers[0])
	if err != nil {
		return fmt.Errorf("%w: dial kafka broker %s: %v", errs.ErrConnectionFailed, c.brokers[0], err)
	}
	return conn.Close()
}

// Close closes the broker connection
func (c *kafkaConn) Close() error {
	return c.writer.Close()
}
