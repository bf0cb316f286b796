package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Every field can also be set from
// the environment; see ApplyEnv.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Sleeper SleeperConfig `yaml:"sleeper"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	// Env is "development" or "production".
	Env         string   `yaml:"env"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type SleeperConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Cache   CacheConfig   `yaml:"cache"`
}

// CacheConfig controls the development-only response cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			Env:         EnvDevelopment,
			CORSOrigins: []string{"*"},
		},
		Log: LogConfig{
			Format: "text",
		},
		Sleeper: SleeperConfig{
			BaseURL: "https://api.sleeper.app/v1",
			Timeout: 30 * time.Second,
			Cache: CacheConfig{
				TTL: time.Hour,
			},
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads defaults and the optional YAML file, but does not apply the
// environment or validate. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return c, nil
}

// ApplyEnv overlays any non-empty environment variables onto c.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := getenv("API_ENV"); v != "" {
		c.Server.Env = strings.ToLower(v)
	}
	if v := getenv("CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitList(v)
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v := getenv("SLEEPER_BASE_URL"); v != "" {
		c.Sleeper.BaseURL = strings.TrimRight(v, "/")
	}
	if v := getenv("SLEEPER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SLEEPER_TIMEOUT: %w", err)
		}
		c.Sleeper.Timeout = d
	}
	if v := getenv("ENABLE_SLEEPER_CACHE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ENABLE_SLEEPER_CACHE: %w", err)
		}
		c.Sleeper.Cache.Enabled = b
	}
	if v := getenv("SLEEPER_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SLEEPER_CACHE_TTL: %w", err)
		}
		c.Sleeper.Cache.TTL = d
	}
	return nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server.port must be numeric: %q", c.Server.Port)
	}
	switch c.Server.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("server.env must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Server.Env)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Sleeper.BaseURL == "" {
		return errors.New("sleeper.base_url is required")
	}
	if c.Sleeper.Timeout <= 0 {
		return errors.New("sleeper.timeout must be positive")
	}
	if c.Sleeper.Cache.Enabled && c.Sleeper.Cache.TTL <= 0 {
		return errors.New("sleeper.cache.ttl must be positive when the cache is enabled")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == EnvProduction
}

// CacheEnabled reports whether the response cache should be built. It is never
// enabled in production, whatever the cache setting says.
func (c *Config) CacheEnabled() bool {
	return c.Sleeper.Cache.Enabled && !c.IsProduction()
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
