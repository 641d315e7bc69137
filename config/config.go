package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
}

type AppConfig struct {
	Name            string
	Version         string
	Port            string
	Mode            string // gin mode: debug, release, test
	ShutdownTimeout time.Duration
}

// DatabaseConfig describes the MongoDB connection. An empty URL leaves the
// store unconfigured.
type DatabaseConfig struct {
	URL            string
	Name           string
	ConnectTimeout time.Duration
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	AddSource  bool // include file:line of the call site
}

// Load reads the configuration from the environment, loading a .env file
// first when one is present. Unknown modes, formats, outputs and levels are
// rejected rather than silently replaced.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:            getEnv("APP_NAME", "Galaxy Bites API"),
			Version:         getEnv("APP_VERSION", "1.0.0"),
			Port:            getEnv("PORT", "8000"),
			Mode:            getEnv("GIN_MODE", "release"),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			URL:            os.Getenv("DATABASE_URL"),
			Name:           getEnv("DATABASE_NAME", "galaxy_bites"),
			ConnectTimeout: getDuration("DATABASE_CONNECT_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    getInt("LOG_MAX_SIZE", 100),
			MaxBackups: getInt("LOG_MAX_BACKUPS", 5),
			MaxAge:     getInt("LOG_MAX_AGE", 30),
			Compress:   getEnv("LOG_COMPRESS", "true") == "true",
			AddSource:  getEnv("LOG_ADD_SOURCE", "false") == "true",
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"GIN_MODE", c.App.Mode, []string{"debug", "release", "test"}},
		{"LOG_LEVEL", c.Log.Level, []string{"debug", "info", "warn", "error"}},
		{"LOG_FORMAT", c.Log.Format, []string{"json", "text"}},
		{"LOG_OUTPUT", c.Log.Output, []string{"stdout", "file", "both"}},
	}
	for _, check := range checks {
		if !contains(check.allowed, check.value) {
			return fmt.Errorf("invalid %s %q: want one of %v", check.key, check.value, check.allowed)
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, allowed := range values {
		if allowed == v {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
