package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cpnews/cpnews/internal/feed"
	"github.com/cpnews/cpnews/internal/logger"
	"github.com/cpnews/cpnews/internal/platform"
)

// Default values for the file config
const (
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultRefreshSpec     = "@every 10m"
	DefaultChannelCapacity = 10
	DefaultLogLevel        = "info"
	DefaultLogMaxSize      = 10
	DefaultLogMaxBackups   = 3
	DefaultLogMaxAge       = 7
)

// Config is the top-level file configuration
type Config struct {
	Providers ProvidersConfig `yaml:"providers"`
	HTTP      HTTPConfig      `yaml:"http"`
	Cache     CacheConfig     `yaml:"cache"`
	Refresh   RefreshConfig   `yaml:"refresh"`
	Updates   UpdatesConfig   `yaml:"updates"`
	Log       LogConfig       `yaml:"log"`
}

// ProvidersConfig overrides the upstream endpoints
type ProvidersConfig struct {
	Odaily            string `yaml:"odaily"`
	CryptoCompare     string `yaml:"cryptocompare"`
	CryptoCompareLang string `yaml:"cryptocompare_lang"`
}

// HTTPConfig configures the fetch client. An empty UserAgent keeps the
// fetch service default.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// CacheConfig locates the news cache files
type CacheConfig struct {
	Dir string `yaml:"dir"`
}

// RefreshConfig drives the periodic auto-refresh.
// Disabled turns the schedule off regardless of Spec.
type RefreshConfig struct {
	Spec     string `yaml:"spec"`
	Disabled bool   `yaml:"disabled"`
}

// UpdatesConfig sizes the worker-to-UI queue
type UpdatesConfig struct {
	ChannelCapacity int `yaml:"channel_capacity"`
}

// LogConfig mirrors logger.Config
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// Default returns a config with every default applied
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads a YAML config file. ${VAR} references are expanded from the
// environment. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	expanded := os.Expand(string(data), os.Getenv)

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	setDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads <user config dir>/cpnews/config.yaml
func LoadDefault() (*Config, string, error) {
	path, err := platform.DefaultConfigPath()
	if err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// setDefaults fills unset fields
func setDefaults(cfg *Config) {
	if cfg.Providers.Odaily == "" {
		cfg.Providers.Odaily = feed.DefaultOdailyEndpoint
	}
	if cfg.Providers.CryptoCompare == "" {
		cfg.Providers.CryptoCompare = feed.DefaultCryptoCompareEndpoint
	}
	if cfg.Providers.CryptoCompareLang == "" {
		cfg.Providers.CryptoCompareLang = feed.DefaultCryptoCompareLang
	}
	if cfg.HTTP.Timeout == 0 {
		cfg.HTTP.Timeout = DefaultHTTPTimeout
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = platform.DefaultCacheDir()
	}
	if cfg.Refresh.Spec == "" {
		cfg.Refresh.Spec = DefaultRefreshSpec
	}
	if cfg.Updates.ChannelCapacity == 0 {
		cfg.Updates.ChannelCapacity = DefaultChannelCapacity
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.MaxSize == 0 {
		cfg.Log.MaxSize = DefaultLogMaxSize
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = DefaultLogMaxBackups
	}
	if cfg.Log.MaxAge == 0 {
		cfg.Log.MaxAge = DefaultLogMaxAge
	}
}

// Validate rejects values that cannot be used
func (c *Config) Validate() error {
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative: %s", c.HTTP.Timeout)
	}
	if c.Updates.ChannelCapacity < 0 {
		return fmt.Errorf("updates.channel_capacity must not be negative: %d", c.Updates.ChannelCapacity)
	}
	for name, link := range map[string]string{
		"providers.odaily":        c.Providers.Odaily,
		"providers.cryptocompare": c.Providers.CryptoCompare,
	} {
		if _, err := platform.ValidateLink(link); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// RefreshSpec returns the cron spec, or "" when auto-refresh is disabled
func (c *Config) RefreshSpec() string {
	if c.Refresh.Disabled {
		return ""
	}
	return c.Refresh.Spec
}

// Endpoints returns the provider endpoints for feed.Defaults
func (c *Config) Endpoints() feed.Endpoints {
	return feed.Endpoints{
		Odaily:            c.Providers.Odaily,
		CryptoCompare:     c.Providers.CryptoCompare,
		CryptoCompareLang: c.Providers.CryptoCompareLang,
	}
}

// LoggerConfig converts the log section for logger.Init
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
	}
}
