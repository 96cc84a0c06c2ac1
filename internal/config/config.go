// Package config loads runtime settings for the portfolio demo service.
//
// Settings are layered, lowest precedence first: built-in defaults, an
// optional config file (YAML, TOML or JSON, by extension), variables from an
// optional .env file, and finally the process environment. Environment keys
// are the setting names upper-cased with a PORTFOLIO_ prefix, for example
// PORTFOLIO_HTTP_ADDR. A bare PORT variable is also honoured for the listen
// address, as most hosting platforms set it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kavya-marri/portfolio-demos/internal/logger"
)

const envPrefix = "PORTFOLIO"

// Config holds every runtime setting.
type Config struct {
	// HTTPAddr is the listen address of the HTTP server.
	HTTPAddr string `mapstructure:"http_addr"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`

	// MaxUploadBytes caps the size of an uploaded image.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`

	// PreviewMaxDim bounds the side-by-side preview of an upload.
	PreviewMaxDim int `mapstructure:"preview_max_dim"`

	// GinMode is debug, release or test.
	GinMode string `mapstructure:"gin_mode"`
}

// Options selects the optional files Load reads.
type Options struct {
	// File is a config file path. Empty means none.
	File string

	// EnvFile is a dotenv file. A missing file is ignored.
	EnvFile string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		HTTPAddr:       ":8080",
		LogLevel:       "info",
		MaxUploadBytes: 10 << 20,
		PreviewMaxDim:  640,
		GinMode:        "release",
	}
}

// Load resolves the layered configuration and validates it.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading env file failed (%s): %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	def := Default()
	v.SetDefault("http_addr", def.HTTPAddr)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("max_upload_bytes", def.MaxUploadBytes)
	v.SetDefault("preview_max_dim", def.PreviewMaxDim)
	v.SetDefault("gin_mode", def.GinMode)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file failed (%s): %w", opts.File, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}

	// PORTFOLIO_HTTP_ADDR wins over PORT.
	if _, ok := os.LookupEnv(envPrefix + "_HTTP_ADDR"); !ok {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			cfg.HTTPAddr = ":" + port
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("http_addr must not be empty")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if c.PreviewMaxDim <= 0 {
		return fmt.Errorf("preview_max_dim must be positive, got %d", c.PreviewMaxDim)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("gin_mode must be debug, release or test, got %q", c.GinMode)
	}
	return nil
}
