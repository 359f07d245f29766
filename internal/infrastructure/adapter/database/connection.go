package database

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connection holds an open database handle and its configuration
type Connection struct {
	DB     *gorm.DB
	Config Config
	logger core.Logger
}

// NewConnection establishes a new database connection with the given
// configuration, verifying it with a ping before returning
func NewConnection(config Config, log core.Logger) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	gormConfig := &gorm.Config{
		Logger: NewGormLogger(log, config.LogLevel),
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: open postgres: %v", errs.ErrConnectionFailed, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime.Std())
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime.Std())

	ctx, cancel := context.WithTimeout(context.Background(), config.DialTimeout.Std())
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: ping database: %v", errs.ErrConnectionFailed, err)
	}

	log.Info("database connected", map[string]any{
		"host":           config.Host,
		"database":       config.Database,
		"max_open_conns": config.MaxOpenConns,
	})

	return &Connection{
		DB:     db,
		Config: config,
		logger: log,
	}, nil
}

// Ping verifies the connection is still alive
func (c *Connection) Ping(ctx context.Context) error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping database: %v", errs.ErrConnectionFailed, err)
	}
	return nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}
