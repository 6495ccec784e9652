package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"algoway/pkg/route"
)

const fileName = ".algoway.yaml"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	BaseURL        string  `yaml:"base_url,omitempty"`
	AccentColor    string  `yaml:"accent_color,omitempty"`
	DefaultSort    string  `yaml:"default_sort,omitempty"`
	RequestTimeout string  `yaml:"request_timeout,omitempty"` // e.g. "30s"; empty means no timeout
	RateLimitRPS   float64 `yaml:"rate_limit_rps,omitempty"`
	RateLimitBurst int     `yaml:"rate_limit_burst,omitempty"`
	CacheTTL       string  `yaml:"cache_ttl,omitempty"` // e.g. "5m"; empty disables caching
	RedisAddr      string  `yaml:"redis_addr,omitempty"`
	LogLevel       string  `yaml:"log_level,omitempty"`
}

// pathOverride is set by the --config flag
var pathOverride string

// SetPath makes Load and Save use path instead of ~/.algoway.yaml
func SetPath(path string) {
	pathOverride = path
}

// getConfigPath returns the absolute path to the config file
func getConfigPath() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, fileName), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *AppConfig) Validate() error {
	if c.DefaultSort != "" {
		if _, err := route.ParseSortCriterion(c.DefaultSort); err != nil {
			return fmt.Errorf("default_sort: %w", err)
		}
	}
	if _, err := parseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("request_timeout: %w", err)
	}
	if _, err := parseDuration(c.CacheTTL); err != nil {
		return fmt.Errorf("cache_ttl: %w", err)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}
	if err := ValidateAccent(c.AccentColor); err != nil {
		return fmt.Errorf("accent_color: %w", err)
	}
	switch c.LogLevel {
	case "", "panic", "fatal", "error", "warn", "warning", "info", "debug", "trace":
	default:
		return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}
	return nil
}

// Timeout returns the HTTP timeout; zero means none
func (c *AppConfig) Timeout() time.Duration {
	d, _ := parseDuration(c.RequestTimeout)
	return d
}

// CacheDuration returns how long responses are cached; zero disables the cache
func (c *AppConfig) CacheDuration() time.Duration {
	d, _ := parseDuration(c.CacheTTL)
	return d
}

// Sort returns the configured default criterion, or "" when none is set
func (c *AppConfig) Sort() route.SortCriterion {
	s, err := route.ParseSortCriterion(c.DefaultSort)
	if err != nil {
		return ""
	}
	return s
}

// ValidateAccent accepts an empty value, an ANSI color code 0-255 or #RRGGBB
func ValidateAccent(s string) error {
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return fmt.Errorf("hex color %q must look like #RRGGBB", s)
		}
		if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
			return fmt.Errorf("hex color %q must look like #RRGGBB", s)
		}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 || !route.IsDigits(s) {
		return fmt.Errorf("color %q must be an ANSI code 0-255 or #RRGGBB", s)
	}
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", s)
	}
	return d, nil
}
