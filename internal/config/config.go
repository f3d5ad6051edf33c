package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	ServerAddress string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`

	// Page variant to render (classic, inline-svg, full-codec)
	Variant string `env:"PAGE_VARIANT" envDefault:"classic"`

	// Directory holding large media (videos, poster, PNG icons); layered over the embedded assets
	MediaDir string `env:"MEDIA_DIR"`

	// Static export target for the build command
	OutputDir string `env:"OUTPUT_DIR" envDefault:"public"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Object storage used by publish
	Storage StorageConfig
}

// StorageConfig holds S3-compatible bucket settings
type StorageConfig struct {
	Endpoint  string `env:"STORAGE_ENDPOINT"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	Region    string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	Bucket    string `env:"STORAGE_BUCKET_SITE" envDefault:"tds-website"`
	Prefix    string `env:"STORAGE_PREFIX"`
}

// Enabled returns true if storage is properly configured
func (s StorageConfig) Enabled() bool {
	return s.Endpoint != "" && s.AccessKey != "" && s.SecretKey != ""
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// LoadEnvFiles loads .env files if present (for local development).
// .env.local overrides .env; real environment variables win over .env.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// NewConfig creates a new Config from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("variant", cfg.Variant),
		slog.String("address", cfg.Addr()),
		slog.Bool("media_dir", cfg.MediaDir != ""),
		slog.Bool("storage_enabled", cfg.Storage.Enabled()),
	)

	return cfg, nil
}

// Parse reads the configuration from the environment without logging.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
