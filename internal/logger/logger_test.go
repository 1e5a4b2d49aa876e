package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	gormlogger "gorm.io/gorm/logger"

	"github.com/Leganyst/restaurant-staff/internal/config"
)

func TestNewWithWriter_JSONLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("table", "cooks").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("lines = %q, want only the warning", lines)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["level"] != "warn" || entry["message"] != "shown" || entry["table"] != "cooks" {
		t.Fatalf("entry = %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("entry has no timestamp: %v", entry)
	}
}

func TestNewWithWriter_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LoggingConfig{Level: "", Format: "json"}, &buf)

	log.Debug().Msg("debug")
	log.Info().Msg("info")

	if strings.Contains(buf.String(), `"debug"`) || !strings.Contains(buf.String(), `"info"`) {
		t.Fatalf("output = %s", buf.String())
	}
}

func TestGormLogger_ErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LoggingConfig{Level: "info", Format: "json", SlowQueryThreshold: time.Second}
	gl := NewGormLogger(NewWithWriter(cfg, &buf), cfg)

	begin := time.Now()
	gl.Trace(context.Background(), begin, func() (string, int64) {
		return "INSERT INTO roles (nazwa) VALUES ('Noob')", 0
	}, errors.New("UNIQUE constraint failed: roles.nazwa"))

	out := buf.String()
	if !strings.Contains(out, "UNIQUE constraint failed") || !strings.Contains(out, `"component":"gorm"`) {
		t.Fatalf("output = %s", out)
	}
}

func TestGormLogger_SilentOnFastQueries(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LoggingConfig{Level: "info", Format: "json", SlowQueryThreshold: time.Hour}
	gl := NewGormLogger(NewWithWriter(cfg, &buf), cfg)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM roles", 3
	}, nil)
	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM roles WHERE id = 9", 0
	}, gormlogger.ErrRecordNotFound)

	if buf.Len() != 0 {
		t.Fatalf("output = %s, want nothing", buf.String())
	}
}
