package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Database drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	Port               int           `mapstructure:"port"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	IdleTimeout        time.Duration `mapstructure:"idle_timeout"`
	RateLimitPerSecond int           `mapstructure:"rate_limit_per_second"` // 0 disables limiting
}

// DatabaseConfig selects the bill store.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	URL    string `mapstructure:"url"`
}

// AuthConfig holds the HTTP Basic credentials. Both empty disables auth.
type AuthConfig struct {
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional config.yaml in configPath (or
// the working directory), a .env file and the environment, in increasing
// precedence. Environment keys use underscores, e.g. DATABASE_URL.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.rate_limit_per_second", 0)
	v.SetDefault("database.driver", DriverMemory)
	v.SetDefault("database.url", "")
	v.SetDefault("auth.user", "")
	v.SetDefault("auth.pass", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Server.RateLimitPerSecond < 0 {
		return fmt.Errorf("server.rate_limit_per_second must not be negative")
	}
	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("database.url must be specified for the postgres driver")
		}
	default:
		return fmt.Errorf("database.driver must be one of: memory, postgres")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be one of: text, json")
	}
	return nil
}

// SlogLevel maps logging.level onto a slog level; unknown values mean info.
func (c LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
