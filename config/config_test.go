package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "PORT", "GIN_MODE", "SHUTDOWN_TIMEOUT",
		"DATABASE_URL", "DATABASE_NAME", "DATABASE_CONNECT_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "LOG_MAX_SIZE", "LOG_COMPRESS", "LOG_ADD_SOURCE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Port != "8000" {
		t.Errorf("App.Port = %q, want %q", cfg.App.Port, "8000")
	}
	if cfg.App.Mode != "release" {
		t.Errorf("App.Mode = %q, want %q", cfg.App.Mode, "release")
	}
	if cfg.App.ShutdownTimeout != 10*time.Second {
		t.Errorf("App.ShutdownTimeout = %v, want 10s", cfg.App.ShutdownTimeout)
	}
	if cfg.Database.URL != "" {
		t.Errorf("Database.URL = %q, want empty", cfg.Database.URL)
	}
	if cfg.Database.Name != "galaxy_bites" {
		t.Errorf("Database.Name = %q, want %q", cfg.Database.Name, "galaxy_bites")
	}
	if cfg.Log.Output != "stdout" || cfg.Log.Format != "json" || cfg.Log.Level != "info" {
		t.Errorf("Log = %+v, want stdout/json/info", cfg.Log)
	}
	if cfg.Log.AddSource {
		t.Error("Log.AddSource = true, want false")
	}
	if cfg.Log.MaxSize != 100 || !cfg.Log.Compress {
		t.Errorf("Log rotation = %+v, want MaxSize 100 and Compress", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://db:27017")
	t.Setenv("DATABASE_NAME", "bites")
	t.Setenv("DATABASE_CONNECT_TIMEOUT", "3s")
	t.Setenv("LOG_MAX_BACKUPS", "9")
	t.Setenv("LOG_COMPRESS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Port != "9090" {
		t.Errorf("App.Port = %q, want %q", cfg.App.Port, "9090")
	}
	if cfg.Database.URL != "mongodb://db:27017" || cfg.Database.Name != "bites" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if cfg.Database.ConnectTimeout != 3*time.Second {
		t.Errorf("Database.ConnectTimeout = %v, want 3s", cfg.Database.ConnectTimeout)
	}
	if cfg.Log.MaxBackups != 9 {
		t.Errorf("Log.MaxBackups = %d, want 9", cfg.Log.MaxBackups)
	}
	if cfg.Log.Compress {
		t.Error("Log.Compress = true, want false")
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("LOG_MAX_AGE", "a month")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.App.ShutdownTimeout != 10*time.Second {
		t.Errorf("App.ShutdownTimeout = %v, want default", cfg.App.ShutdownTimeout)
	}
	if cfg.Log.MaxAge != 30 {
		t.Errorf("Log.MaxAge = %d, want default 30", cfg.Log.MaxAge)
	}
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"GIN_MODE", "production"},
		{"LOG_LEVEL", "verbose"},
		{"LOG_FORMAT", "xml"},
		{"LOG_OUTPUT", "syslog"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			if err == nil {
				t.Fatalf("Load() = %+v, want error for %s=%s", cfg, tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error = %v, want it to name %s", err, tt.key)
			}
		})
	}
}

func TestLoadAddSource(t *testing.T) {
	t.Setenv("LOG_ADD_SOURCE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Log.AddSource {
		t.Error("Log.AddSource = false, want true")
	}
}
