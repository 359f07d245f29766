// Command conncheck loads the application configuration, opens every enabled
// backend connection (relational store, cache, message broker, search engine),
// verifies each with a ping, and exits non-zero if any of them fails.
package main

import (
	"log"
	"os"

	"github.com/amirhossein-jamali/corekit/internal/domain/port/core"
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
	"github.com/amirhossein-jamali/corekit/internal/infrastructure/adapter/broker"
	"github.com/amirhossein-jamali/corekit/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/corekit/internal/infrastructure/adapter/clock"
	"github.com/amirhossein-jamali/corekit/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/corekit/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/corekit/internal/infrastructure/adapter/search"
	"github.com/amirhossein-jamali/corekit/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(core.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	clk := clock.NewRealClock()
	started := clk.Now()

	appLogger.Info("connection check started", map[string]any{
		"environment": cfg.Environment,
		"at":          started.ISO8601(),
	})

	failed := false

	if cfg.Database.Enabled {
		failed = !checkDatabase(cfg, appLogger) || failed
	}
	if cfg.Cache.Enabled {
		failed = !checkCache(cfg, appLogger) || failed
	}
	if cfg.Broker.Enabled {
		failed = !checkBroker(cfg, appLogger) || failed
	}
	if cfg.Search.Enabled {
		failed = !checkSearch(cfg, appLogger) || failed
	}

	elapsed := started.Difference(clk.Now())
	appLogger.Info("connection check finished", map[string]any{
		"elapsed": elapsed.String(),
		"failed":  failed,
	})

	if failed {
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func checkDatabase(cfg *config.Config, appLogger core.Logger) bool {
	dbConfig := database.DefaultConfig()
	dbConfig.Host = cfg.Database.Host
	dbConfig.Port = cfg.Database.Port
	dbConfig.Username = cfg.Database.Username
	dbConfig.Password = cfg.Database.Password
	dbConfig.Database = cfg.Database.Database
	dbConfig.SSLMode = cfg.Database.SSLMode
	dbConfig.MaxOpenConns = cfg.Database.MaxOpenConns
	dbConfig.MaxIdleConns = cfg.Database.MaxIdleConns
	dbConfig.ConnMaxLifetime = temporal.OfMinutes(cfg.Database.ConnMaxLifetimeMinutes)
	dbConfig.ConnMaxIdleTime = temporal.OfMinutes(cfg.Database.ConnMaxIdleTimeMinutes)
	dbConfig.DialTimeout = temporal.OfSeconds(cfg.Database.DialTimeoutSeconds)
	dbConfig.LogLevel = cfg.Logger.Level

	conn, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("database check failed", map[string]any{"error": err.Error()})
		return false
	}
	defer func() { _ = conn.Close() }()
	return true
}

func checkCache(cfg *config.Config, appLogger core.Logger) bool {
	cacheConfig := cache.DefaultConfig()
	cacheConfig.Addresses = cfg.Cache.Addresses
	cacheConfig.Password = cfg.Cache.Password
	cacheConfig.DB = cfg.Cache.DB
	cacheConfig.ClusterMode = cfg.Cache.ClusterMode
	cacheConfig.PoolSize = cfg.Cache.PoolSize
	cacheConfig.DialTimeout = temporal.OfSeconds(cfg.Cache.DialTimeoutSeconds)
	cacheConfig.ReadTimeout = temporal.OfSeconds(cfg.Cache.ReadTimeoutSeconds)
	cacheConfig.WriteTimeout = temporal.OfSeconds(cfg.Cache.WriteTimeoutSeconds)

	client, err := cache.NewClient(cacheConfig, appLogger)
	if err != nil {
		appLogger.Error("cache check failed", map[string]any{"error": err.Error()})
		return false
	}
	defer func() { _ = client.Close() }()
	return true
}

func checkBroker(cfg *config.Config, appLogger core.Logger) bool {
	brokerConfig := broker.DefaultConfig()
	brokerConfig.Driver = cfg.Broker.Driver
	brokerConfig.Brokers = cfg.Broker.Brokers
	brokerConfig.URL = cfg.Broker.URL
	brokerConfig.GroupID = cfg.Broker.GroupID
	brokerConfig.DialTimeout = temporal.OfSeconds(cfg.Broker.DialTimeoutSeconds)

	conn, err := broker.Connect(brokerConfig, appLogger)
	if err != nil {
		appLogger.Error("broker check failed", map[string]any{"error": err.Error()})
		return false
	}
	defer func() { _ = conn.Close() }()
	return true
}

func checkSearch(cfg *config.Config, appLogger core.Logger) bool {
	searchConfig := search.DefaultConfig()
	searchConfig.Addresses = cfg.Search.Addresses
	searchConfig.Username = cfg.Search.Username
	searchConfig.Password = cfg.Search.Password
	searchConfig.DialTimeout = temporal.OfSeconds(cfg.Search.DialTimeoutSeconds)

	if _, err := search.NewClient(searchConfig, appLogger); err != nil {
		appLogger.Error("search check failed", map[string]any{"error": err.Error()})
		return false
	}
	return true
}
