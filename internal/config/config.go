// ABOUTME: Configuration loader for the mikrodash client
// ABOUTME: Reads .env files and environment variables with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL          = "http://localhost:5000"
	DefaultRefreshInterval = 60 * time.Second
	DefaultRequestTimeout  = 30 * time.Second
)

type Config struct {
	// Backend
	APIURL         string
	RequestTimeout time.Duration
	AllProxy       string // ssh+socks5://user@host:port?private-key=/path

	// Session
	DashboardURL    string // dashboard URL whose device query parameter selects the device
	DeviceID        string
	RefreshInterval time.Duration // <= 0 disables timed polling

	// Logging
	LogLevel  string
	LogFormat string
	ConfigDir string // holds debug.log and recent.json for the TUI
}

// Load reads envFile (if it exists) into the environment without overriding
// variables that are already set, then builds a Config from the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		APIURL:         strings.TrimRight(ensureScheme(getEnv("MIKRODASH_API_URL", DefaultAPIURL)), "/"),
		RequestTimeout: getEnvDuration("MIKRODASH_TIMEOUT", DefaultRequestTimeout),
		AllProxy:       os.Getenv("MIKRODASH_ALL_PROXY"),

		DashboardURL:    os.Getenv("MIKRODASH_URL"),
		DeviceID:        os.Getenv("MIKRODASH_DEVICE"),
		RefreshInterval: getEnvDuration("MIKRODASH_REFRESH_INTERVAL", DefaultRefreshInterval),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		ConfigDir: getEnv("MIKRODASH_CONFIG_DIR", defaultConfigDir()),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overrides are command-line values that take precedence over the
// environment. Zero values leave the loaded setting alone.
type Overrides struct {
	APIURL          string
	DashboardURL    string
	DeviceID        string
	AllProxy        string
	LogLevel        string
	RequestTimeout  time.Duration
	RefreshInterval *time.Duration
}

// Apply merges o into the config and validates the result.
func (c *Config) Apply(o Overrides) error {
	if o.APIURL != "" {
		c.APIURL = strings.TrimRight(ensureScheme(o.APIURL), "/")
	}
	if o.DashboardURL != "" {
		c.DashboardURL = o.DashboardURL
	}
	if o.DeviceID != "" {
		c.DeviceID = o.DeviceID
	}
	if o.AllProxy != "" {
		c.AllProxy = o.AllProxy
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.RequestTimeout != 0 {
		c.RequestTimeout = o.RequestTimeout
	}
	if o.RefreshInterval != nil {
		c.RefreshInterval = *o.RefreshInterval
	}
	return c.Validate()
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("MIKRODASH_API_URL is not a valid URL: %q", c.APIURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("MIKRODASH_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.AllProxy != "" && !strings.HasPrefix(c.AllProxy, "ssh+socks5://") && !strings.HasPrefix(c.AllProxy, "socks5://") {
		return fmt.Errorf("MIKRODASH_ALL_PROXY must use the ssh+socks5:// scheme, got %q", c.AllProxy)
	}
	return nil
}

// DebugLogPath returns where the TUI writes its log, or "" when disabled.
func (c *Config) DebugLogPath() string {
	if c.ConfigDir == "" {
		return ""
	}
	return filepath.Join(c.ConfigDir, "debug.log")
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mikrodash")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration accepts a Go duration ("90s", "2m") or a plain number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// ensureScheme adds http:// prefix if the URL has no scheme
func ensureScheme(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}
	if !strings.Contains(rawURL, "://") {
		return "http://" + rawURL
	}
	return rawURL
}
