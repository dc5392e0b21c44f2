package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"item-gallery/internal/model"
	"item-gallery/pkg/transport"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Items API
	API APIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int // 0 disables rate limiting
}

type APIConfig struct {
	BaseURL        string // Server root; static images live under {BaseURL}/uploads/
	URL            string // API root; derived from BaseURL when not set
	Transport      string // nethttp | fasthttp
	Timeout        time.Duration
	RefreshTimeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	if err := bindEnvAliases(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Items API
	cfg.API.BaseURL = strings.TrimRight(v.GetString("api.base_url"), "/")
	cfg.API.URL = strings.TrimRight(v.GetString("api.url"), "/")
	if cfg.API.URL == "" {
		cfg.API.URL = cfg.API.BaseURL + "/api/v1"
	}
	cfg.API.Transport = strings.ToLower(v.GetString("api.transport"))
	cfg.API.Timeout = v.GetDuration("api.timeout")
	cfg.API.RefreshTimeout = v.GetDuration("api.refresh_timeout")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 120)

	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.transport", transport.KindNetHTTP)
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("api.refresh_timeout", "10s")
}

// bindEnvAliases accepts the frontend's REACT_APP_* names next to the derived ones.
// The first variable set wins.
func bindEnvAliases(v *viper.Viper) error {
	aliases := map[string][]string{
		"api.base_url": {"API_BASE_URL", "REACT_APP_BASE_URL"},
		"api.url":      {"API_URL", "REACT_APP_API_URL"},
	}
	for key, envs := range aliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	return nil
}

func (cfg *Config) validate() error {
	switch model.Environment(cfg.Environment.Name) {
	case model.EnvironmentDevelopment, model.EnvironmentStaging, model.EnvironmentProduction:
	default:
		return fmt.Errorf("environment.name must be development, staging or production, got %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	switch cfg.API.Transport {
	case transport.KindNetHTTP, transport.KindFastHTTP:
	default:
		return fmt.Errorf("api.transport: %w: %q", transport.ErrUnknownKind, cfg.API.Transport)
	}
	if cfg.API.Timeout <= 0 {
		return errors.New("api.timeout must be a positive duration")
	}
	if cfg.API.RefreshTimeout <= 0 {
		return errors.New("api.refresh_timeout must be a positive duration")
	}
	if cfg.RateLimit.PerMin < 0 {
		return errors.New("rate_limit.per_min must not be negative")
	}
	return nil
}
