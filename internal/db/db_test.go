package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Leganyst/restaurant-staff/internal/config"
	"github.com/Leganyst/restaurant-staff/internal/errs"
)

func TestOpen_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kitchen", "restaurant.db")

	gormDB, err := Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = Close(gormDB) })

	if err := gormDB.Exec("CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY)").Error; err != nil {
		t.Fatalf("exec: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file: %v", err)
	}
}

func TestOpen_ForeignKeysEnabled(t *testing.T) {
	gormDB, err := Open(filepath.Join(t.TempDir(), "fk.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = Close(gormDB) })

	var on int
	if err := gormDB.Raw("PRAGMA foreign_keys").Scan(&on).Error; err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if on != 1 {
		t.Fatalf("foreign_keys = %d, want 1", on)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	if got := sqlDB.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("max open conns = %d, want 1", got)
	}
}

func TestNewGormDB_ConnectionFailure(t *testing.T) {
	// a regular file where a directory is expected
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
	}{
		{name: "unwritable parent", mutate: func(cfg *config.Config) { cfg.Database.Path = filepath.Join(blocker, "sub", "r.db") }},
		{name: "empty path", mutate: func(cfg *config.Config) { cfg.Database.Path = "" }},
		{name: "unknown driver", mutate: func(cfg *config.Config) { cfg.Database.Driver = "oracle" }},
		{name: "postgres without dsn", mutate: func(cfg *config.Config) { cfg.Database.Driver = config.DriverPostgres }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			gormDB, err := NewGormDB(cfg, zerolog.Nop())
			if gormDB != nil {
				t.Fatalf("handle must be nil on failure")
			}
			if !errs.IsKind(err, errs.KindConnectionFailure) {
				t.Fatalf("err = %v, want connection failure", err)
			}
		})
	}
}

func TestClose_Nil(t *testing.T) {
	if err := Close(nil); err != nil {
		t.Fatalf("Close(nil) = %v", err)
	}
}
