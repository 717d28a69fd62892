// Package config loads dashboard and server settings from the environment.
// Command-line flags in cmd/ override what Load returns.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"foodadmin/internal/dashboard"

	log "github.com/sirupsen/logrus"
)

const (
	EnvAPIURL        = "FOODADMIN_API_URL"
	EnvLogFile       = "FOODADMIN_LOG_FILE"
	EnvLogLevel      = "FOODADMIN_LOG_LEVEL"
	EnvDeletePolicy  = "FOODADMIN_DELETE_POLICY"
	EnvCloseOnSubmit = "FOODADMIN_CLOSE_ON_SUBMIT"
	EnvHTTPTimeout   = "FOODADMIN_HTTP_TIMEOUT"

	EnvServerAddr     = "FOODSERVER_ADDR"
	EnvServerSeed     = "FOODSERVER_SEED"
	EnvServerLogLevel = "FOODSERVER_LOG_LEVEL"

	// DefaultAPIURL matches the development server's default address.
	DefaultAPIURL = "http://localhost:3333"
)

// Config holds the dashboard client settings.
type Config struct {
	APIURL        string
	LogFile       string // empty logs to stderr
	LogLevel      string
	DeletePolicy  dashboard.DeletePolicy
	CloseOnSubmit bool          // dialogs toggle closed when submitted
	HTTPTimeout   time.Duration // zero means no timeout
}

// ServerConfig holds the development API server settings.
type ServerConfig struct {
	Addr     string
	SeedFile string // empty serves the built-in menu
	LogLevel string
}

// DefaultLogFile is where the dashboard logs unless told otherwise; the
// terminal itself belongs to the UI.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "foodadmin.log")
}

// Load reads the dashboard configuration from the environment. Values that
// fail to parse are errors; the rest is checked by Validate once flag
// overrides have been applied.
func Load() (*Config, error) {
	policy, err := dashboard.ParseDeletePolicy(os.Getenv(EnvDeletePolicy))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvDeletePolicy, err)
	}
	closeOnSubmit, err := getEnvAsBool(EnvCloseOnSubmit, true)
	if err != nil {
		return nil, err
	}
	timeout, err := getEnvAsDuration(EnvHTTPTimeout, 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIURL:        getEnv(EnvAPIURL, DefaultAPIURL),
		LogFile:       getEnv(EnvLogFile, DefaultLogFile()),
		LogLevel:      getEnv(EnvLogLevel, "info"),
		DeletePolicy:  policy,
		CloseOnSubmit: closeOnSubmit,
		HTTPTimeout:   timeout,
	}
	return cfg, nil
}

// Validate checks the settings that can be wrong.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api url %q: %w", c.APIURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api url %q: want http(s)://host[:port]", c.APIURL)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must not be negative, got %s", c.HTTPTimeout)
	}
	return nil
}

// LoadServer reads the development server configuration from the environment.
// Call Validate after applying flag overrides.
func LoadServer() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Addr:     getEnv(EnvServerAddr, ":3333"),
		SeedFile: os.Getenv(EnvServerSeed),
		LogLevel: getEnv(EnvServerLogLevel, "info"),
	}
	return cfg, nil
}

// Validate checks the server settings.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
