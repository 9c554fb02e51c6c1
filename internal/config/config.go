// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // dashboard.timezone must resolve on hosts without zoneinfo

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// AppConfig holds all application configuration.
// It is instantiated by NewConfig() and passed to components that need it (dependency injection).
type AppConfig struct {
	Datastore DatastoreConfig `mapstructure:"datastore"`
	Log       LogConfig       `mapstructure:"log"`
	Server    ServerConfig    `mapstructure:"server"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Datastore drivers.
const (
	DriverSupabase  = "supabase"
	DriverPostgREST = "postgrest"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
	DriverFile      = "file"
)

// DatastoreConfig selects and configures the project source.
type DatastoreConfig struct {
	Driver string `mapstructure:"driver"`
	Table  string `mapstructure:"table"`

	// supabase / postgrest
	URL    string `mapstructure:"url"`
	Key    string `mapstructure:"key"`
	Schema string `mapstructure:"schema"`

	// file, and the sqlite database file
	Path string `mapstructure:"path"`

	// postgres
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`

	Timeout time.Duration `mapstructure:"timeout"` // 0 = unbounded
}

// LogConfig holds comprehensive logging configuration
type LogConfig struct {
	Level    string            `mapstructure:"level"`
	Format   string            `mapstructure:"format"`
	Output   []LogOutputConfig `mapstructure:"output"`
	Levels   map[string]string `mapstructure:"levels"`
	Context  LogContextConfig  `mapstructure:"context"`
	Sampling LogSamplingConfig `mapstructure:"sampling"`
}

// LogOutputConfig defines where logs are written
type LogOutputConfig struct {
	Type    string          `mapstructure:"type"` // "file", "console"
	Enabled bool            `mapstructure:"enabled"`
	Path    string          `mapstructure:"path"`
	Rotate  LogRotateConfig `mapstructure:"rotate"`
}

// LogRotateConfig defines log rotation settings
type LogRotateConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// LogContextConfig defines what context to include in logs
type LogContextConfig struct {
	IncludeCaller     bool   `mapstructure:"include_caller"`
	IncludeTimestamp  bool   `mapstructure:"include_timestamp"`
	IncludeStackTrace string `mapstructure:"include_stack_trace"`
}

// LogSamplingConfig defines log sampling settings
type LogSamplingConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Initial    uint32        `mapstructure:"initial"`
	Thereafter uint32        `mapstructure:"thereafter"`
	Tick       time.Duration `mapstructure:"tick"`
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"` // Empty = allow all
}

// DashboardConfig controls presentation.
type DashboardConfig struct {
	Title    string `mapstructure:"title"`
	Timezone string `mapstructure:"timezone"`
	// Terminal width at which the table replaces the cards.
	WideMinWidth int `mapstructure:"wide_min_width"`
}

// TelemetryConfig configures OTLP trace export.
type TelemetryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// NewConfig creates a new AppConfig by reading from a file, environment variables,
// and applying defaults.
func NewConfig(configPath string) (*AppConfig, error) {
	cfg := defaultConfig()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/trackboard/")
		v.AddConfigPath("$HOME/.trackboard")
	}

	// TRACKBOARD_DATASTORE_URL and friends
	v.SetEnvPrefix("TRACKBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(configPath != "" && os.IsNotExist(err)) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applySupabaseEnv()
	cfg.expandPaths()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// AutomaticEnv only resolves keys viper already knows about, so scalar keys
// without a file value need an explicit binding.
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"datastore.driver", "datastore.table", "datastore.url", "datastore.key",
		"datastore.schema", "datastore.path", "datastore.host", "datastore.port",
		"datastore.username", "datastore.password", "datastore.database",
		"datastore.ssl_mode", "datastore.timeout",
		"log.level", "log.format",
		"server.host", "server.port", "server.allowed_origins",
		"dashboard.title", "dashboard.timezone", "dashboard.wide_min_width",
		"telemetry.enabled", "telemetry.endpoint", "telemetry.insecure",
		"telemetry.service_name", "telemetry.sample_rate",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

// defaultConfig returns an AppConfig with default values.
func defaultConfig() AppConfig {
	return AppConfig{
		Datastore: DatastoreConfig{
			Driver:  DriverSupabase,
			Table:   "projects",
			Schema:  "public",
			Path:    "trackboard.db",
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
		Log: LogConfig{
			Level:  "INFO",
			Format: "console",
			Output: []LogOutputConfig{
				{
					Type:    "file",
					Enabled: true,
					Path:    "./logs/trackboard.log",
					Rotate: LogRotateConfig{
						MaxSizeMB:  50,
						MaxBackups: 5,
						MaxAgeDays: 14,
						Compress:   true,
					},
				},
				{
					Type:    "console",
					Enabled: false, // the TUI owns the terminal
				},
			},
			Levels: map[string]string{
				"dashboard": "INFO",
				"store":     "INFO",
				"tui":       "WARN",
				"api":       "INFO",
				"telemetry": "WARN",
			},
			Context: LogContextConfig{
				IncludeCaller:     true,
				IncludeTimestamp:  true,
				IncludeStackTrace: "ERROR",
			},
			Sampling: LogSamplingConfig{
				Enabled:    false,
				Initial:    100,
				Thereafter: 100,
				Tick:       time.Second,
			},
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Dashboard: DashboardConfig{
			Title:        "Project Management Dashboard",
			Timezone:     "UTC",
			WideMinWidth: 100,
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			Endpoint:    "localhost:4318",
			Insecure:    true,
			ServiceName: "trackboard",
			SampleRate:  1.0,
		},
	}
}

// applySupabaseEnv falls back to the conventional Supabase variables when the
// config leaves the URL or key empty.
func (c *AppConfig) applySupabaseEnv() {
	if c.Datastore.URL == "" {
		c.Datastore.URL = os.Getenv("SUPABASE_URL")
	}
	if c.Datastore.Key == "" {
		for _, name := range []string{"SUPABASE_SERVICE_KEY", "SUPABASE_ANON_KEY"} {
			if v := os.Getenv(name); v != "" {
				c.Datastore.Key = v
				break
			}
		}
	}
}

// expandPaths expands ~ and environment variables in path configuration values
func (c *AppConfig) expandPaths() {
	if c.Datastore.Path != "" {
		c.Datastore.Path = expandPath(c.Datastore.Path)
	}
	for i := range c.Log.Output {
		if c.Log.Output[i].Path != "" {
			c.Log.Output[i].Path = expandPath(c.Log.Output[i].Path)
		}
	}
}

// expandPath expands ~ to home directory and environment variables
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}

// validate checks if the configuration is valid.
func (c *AppConfig) validate() error {
	switch c.Datastore.Driver {
	case DriverSupabase, DriverPostgREST, DriverPostgres, DriverSQLite, DriverFile:
	case "":
		return errors.New("datastore driver is required")
	default:
		return fmt.Errorf("unknown datastore driver: %s", c.Datastore.Driver)
	}
	if c.Datastore.Table == "" {
		return errors.New("datastore table is required")
	}
	if c.Datastore.Timeout < 0 {
		return fmt.Errorf("datastore timeout must not be negative: %s", c.Datastore.Timeout)
	}

	validLogLevels := map[string]bool{
		"TRACE": true, "DEBUG": true, "INFO": true, "WARN": true, "ERROR": true, "FATAL": true, "PANIC": true,
	}
	if !validLogLevels[strings.ToUpper(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if _, err := c.Dashboard.Location(); err != nil {
		return err
	}
	if c.Dashboard.WideMinWidth <= 0 {
		return fmt.Errorf("dashboard.wide_min_width must be positive, got: %d", c.Dashboard.WideMinWidth)
	}

	if c.Telemetry.SampleRate < 0 || c.Telemetry.SampleRate > 1 {
		return fmt.Errorf("telemetry.sample_rate must be within [0,1], got: %v", c.Telemetry.SampleRate)
	}

	return nil
}

// Location resolves the display timezone. Empty means UTC.
func (dc DashboardConfig) Location() (*time.Location, error) {
	if dc.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(dc.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard timezone %q: %w", dc.Timezone, err)
	}
	return loc, nil
}

// GetDSN returns the GORM connection string for the SQL drivers.
func (dc *DatastoreConfig) GetDSN() string {
	switch dc.Driver {
	case DriverSQLite:
		dsn := dc.Path
		if dsn == ":memory:" {
			dsn = "file::memory:?cache=shared"
		}
		return dsn
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dc.Host, dc.Port, dc.Username, dc.Password, dc.Database, dc.SSLMode)
	default:
		return dc.URL
	}
}

// Redacted returns a loggable description of the datastore target.
func (dc *DatastoreConfig) Redacted() string {
	switch dc.Driver {
	case DriverPostgres:
		return fmt.Sprintf("postgres://%s@%s:%d/%s", dc.Username, dc.Host, dc.Port, dc.Database)
	case DriverSQLite, DriverFile:
		return dc.Driver + ":" + dc.Path
	default:
		return dc.Driver + ":" + dc.URL
	}
}
