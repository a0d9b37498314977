package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`
	// browser origins allowed by CORS, native clients are matched by user agent
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres (session history, cycle state, custom exercises)
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis (suggestion cache, rate limiting)
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// suggestions
	SuggestionsCache     string `toml:"suggestions_cache"` // redis | memory
	SuggestionsPerMinute int    `toml:"suggestions_per_minute"`

	Generator GeneratorConfig `toml:"generator"`
}

// GeneratorConfig describes the external text generation service.
type GeneratorConfig struct {
	Provider           string  `toml:"provider"` // openai | gemini
	BaseURL            string  `toml:"base_url"`
	Model              string  `toml:"model"`
	Temperature        float64 `toml:"temperature"`
	MaxAttempts        int     `toml:"max_attempts"`
	CallTimeoutSeconds int     `toml:"call_timeout_seconds"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the config for the given env,
// with defaults applied for everything left unset.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.SuggestionsCache == "" {
		c.SuggestionsCache = "redis"
	}
	if c.SuggestionsPerMinute == 0 {
		c.SuggestionsPerMinute = 30
	}
	if c.Generator.Provider == "" {
		c.Generator.Provider = "openai"
	}
	if c.Generator.MaxAttempts <= 0 {
		c.Generator.MaxAttempts = 3
	}
	if c.Generator.CallTimeoutSeconds <= 0 {
		c.Generator.CallTimeoutSeconds = 30
	}
}
