// Package logger builds the application's zerolog logger and the adapter
// that routes gorm's SQL diagnostics through it.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Leganyst/restaurant-staff/internal/config"
)

// New returns a logger writing to stdout in the configured format.
func New(cfg config.LoggingConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with an explicit destination, used by tests.
func NewWithWriter(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// gormWriter satisfies gormlogger.Writer. gorm only prints through it for
// warnings, errors and slow queries at the levels we configure.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn().Str("component", "gorm").Msg(fmt.Sprintf(format, args...))
}

// NewGormLogger adapts log for gorm. Record-not-found is not logged because
// repositories turn it into a typed error the caller already sees.
func NewGormLogger(log zerolog.Logger, cfg config.LoggingConfig) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg.Level == "error" {
		level = gormlogger.Error
	}

	return gormlogger.New(gormWriter{log: log}, gormlogger.Config{
		SlowThreshold:             cfg.SlowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
