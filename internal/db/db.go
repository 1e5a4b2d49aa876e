package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-staff/internal/config"
	"github.com/Leganyst/restaurant-staff/internal/errs"
	"github.com/Leganyst/restaurant-staff/internal/logger"
)

const defaultPingTimeout = 5 * time.Second

// sqliteParams turn on foreign key enforcement for every connection the
// driver opens; SQLite leaves it off by default.
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000"

// NewGormDB opens the configured database. Failures come back as
// errs.KindConnectionFailure with a nil handle.
func NewGormDB(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		return nil, errs.Wrap(errs.KindConnectionFailure, err, "open database")
	}

	gormCfg := &gorm.Config{
		Logger: logger.NewGormLogger(log, cfg.Logging),
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errs.Wrap(errs.KindConnectionFailure, err, "open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errs.Wrap(errs.KindConnectionFailure, err, "db.DB()")
	}

	// один процесс, одно соединение
	if cfg.Database.Driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		if cfg.Database.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		}
		if cfg.Database.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		}
	}
	if cfg.Database.ConnMaxLifeTime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifeTime) * time.Minute)
	}

	timeout := cfg.Database.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errs.Wrap(errs.KindConnectionFailure, err, "ping database")
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("connected to the database")

	return db, nil
}

// Open opens, creating if absent, the SQLite file at path with default settings.
func Open(path string, log zerolog.Logger) (*gorm.DB, error) {
	cfg := config.Default()
	cfg.Database.Path = path
	return NewGormDB(cfg, log)
}

func dialectorFor(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("empty sqlite path")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create parent dir: %w", err)
		}
		return sqlite.Open(cfg.Path + "?" + sqliteParams), nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("empty postgres dsn")
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// Close releases the handle. Safe to call with nil.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	return sqlDB.Close()
}
