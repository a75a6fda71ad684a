package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	// Database connection string (DSN). Postgres URLs and SQLite paths are
	// both accepted.
	DatabaseURL string `mapstructure:"database_url"`

	// Server bind address (host:port)
	ServerAddr string `mapstructure:"server_addr"`

	// Secret used to sign session tokens (HS256)
	JWTSecret string `mapstructure:"jwt_secret"`

	// Lifetime of issued session tokens
	TokenTTL time.Duration `mapstructure:"token_ttl"`

	// Origins allowed to call the API from a browser
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	// Maximum database connection pool size
	MaxDBConnections int `mapstructure:"max_db_connections"`

	// Enable debug logging
	Debug bool `mapstructure:"debug"`
}

// Load reads configuration from HYPERTOOL_ prefixed environment variables,
// optionally merged over a hypertool.yaml config file, with fallback defaults.
func Load() (*Config, error) {
	viper.SetDefault("database_url", "hypertool.db")
	viper.SetDefault("server_addr", "localhost:8080")
	viper.SetDefault("jwt_secret", "")
	viper.SetDefault("token_ttl", 24*time.Hour)
	viper.SetDefault("cors_allowed_origins", []string{"http://localhost:5173", "http://127.0.0.1:5173"})
	viper.SetDefault("max_db_connections", 25)
	viper.SetDefault("debug", false)

	viper.SetEnvPrefix("HYPERTOOL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Optional config file; env vars take precedence.
	if viper.ConfigFileUsed() == "" {
		viper.SetConfigName("hypertool")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/hypertool")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	} else if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database_url is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required (set HYPERTOOL_JWT_SECRET)")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token_ttl must be positive")
	}

	return cfg, nil
}
