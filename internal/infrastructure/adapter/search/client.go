package search

import (
	"context"
	"fmt"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/port/core"
)

// Client wraps an Elasticsearch connection configured for this application
type Client struct {
	es     *elasticsearch.Client
	logger core.Logger
}

// NewClient opens an Elasticsearch connection based on configuration and
// verifies it with a ping before returning
func NewClient(cfg Config, log core.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search configuration: %w", err)
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: build search client: %v", errs.ErrConnectionFailed, err)
	}

	client := &Client{es: es, logger: log}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout.Std())
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		log.Error("search connection failed", map[string]any{"error": err.Error()})
		return nil, err
	}

	log.Info("search connected", map[string]any{
		"addresses": cfg.Addresses,
	})

	return client, nil
}

// Ping verifies the cluster is reachable
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: ping search: %v", errs.ErrConnectionFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: ping search: %s", errs.ErrConnectionFailed, res.Status())
	}
	return nil
}
