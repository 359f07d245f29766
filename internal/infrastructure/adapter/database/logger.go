package database

import (
	"context"
	"strings"
	"time"

	"github.com/amirhossein-jamali/corekit/internal/domain/port/core"
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
	"gorm.io/gorm/logger"
)

// GormLogger routes GORM's log output through the core Logger
type GormLogger struct {
	coreLogger    core.Logger
	logLevel      logger.LogLevel
	slowThreshold temporal.Duration
}

// NewGormLogger creates a GORM logger bridge at the given level
func NewGormLogger(coreLogger core.Logger, level string) logger.Interface {
	var logLevel logger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	default:
		logLevel = logger.Info
	}

	return &GormLogger{
		coreLogger:    coreLogger,
		logLevel:      logLevel,
		slowThreshold: temporal.OfSeconds(1),
	}
}

// LogMode sets the log level for the logger
func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, map[string]any{"source": "database"})
	}
}

// Warn logs warn messages
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, map[string]any{"source": "database"})
	}
}

// Error logs error messages
func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, map[string]any{"source": "database"})
	}
}

// Trace logs SQL operations with their elapsed time
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := temporal.FromTime(begin).Difference(temporal.Now())
	sql, rows := fc()

	fields := map[string]any{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
		"source":  "database",
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	switch {
	case err != nil && l.logLevel >= logger.Error:
		l.coreLogger.Error("sql error", fields)
	case elapsed.GreaterThanOrEqual(l.slowThreshold) && l.slowThreshold.Millis() > 0:
		l.coreLogger.Warn("slow sql query", fields)
	case l.logLevel >= logger.Info:
		// Debug level for routine queries to keep info output readable
		l.coreLogger.Debug("sql query", fields)
	}
}
