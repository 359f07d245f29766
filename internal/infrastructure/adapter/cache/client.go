package cache

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/optional"
	"github.com/amirhossein-jamali/corekit/internal/domain/port/core"
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
	"github.com/redis/go-redis/v9"
)

// Client wraps a Redis connection configured for this application
type Client struct {
	client      redis.UniversalClient
	clusterMode bool
	logger      core.Logger
}

// NewClient opens a Redis connection based on configuration and verifies it
// with a ping before returning
func NewClient(cfg Config, log core.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache configuration: %w", err)
	}

	var client redis.UniversalClient

	if cfg.ClusterMode {
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        cfg.Addresses,
			Password:     cfg.Password,
			PoolSize:     cfg.PoolSize,
			DialTimeout:  cfg.DialTimeout.Std(),
			ReadTimeout:  cfg.ReadTimeout.Std(),
			WriteTimeout: cfg.WriteTimeout.Std(),
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:         cfg.Addresses[0],
			Password:     cfg.Password,
			DB:           cfg.DB,
			PoolSize:     cfg.PoolSize,
			DialTimeout:  cfg.DialTimeout.Std(),
			ReadTimeout:  cfg.ReadTimeout.Std(),
			WriteTimeout: cfg.WriteTimeout.Std(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout.Std())
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error("cache connection failed", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("%w: ping cache: %v", errs.ErrConnectionFailed, err)
	}

	log.Info("cache connected", map[string]any{
		"cluster_mode": cfg.ClusterMode,
		"pool_size":    cfg.PoolSize,
	})

	return &Client{
		client:      client,
		clusterMode: cfg.ClusterMode,
		logger:      log,
	}, nil
}

// Lookup retrieves a value by key. A missing key is an absent Optional, not
// an error.
func (c *Client) Lookup(ctx context.Context, key string) (optional.Optional[string], error) {
	result, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return optional.None[string](), nil
		}
		return optional.None[string](), fmt.Errorf("%w: cache get: %v", errs.ErrConnectionFailed, err)
	}
	return optional.Some(result), nil
}

// Set stores a value with the given time to live
func (c *Client) Set(ctx context.Context, key string, value string, ttl temporal.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl.Std()).Err(); err != nil {
		return fmt.Errorf("%w: cache set: %v", errs.ErrConnectionFailed, err)
	}
	return nil
}

// Del deletes one or more keys, returning how many existed
func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	deleted, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: cache del: %v", errs.ErrConnectionFailed, err)
	}
	return deleted, nil
}

// Ping verifies the connection is still alive
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: ping cache: %v", errs.ErrConnectionFailed, err)
	}
	return nil
}

// Close closes the cache connection
func (c *Client) Close() error {
	return c.client.Close()
}
