// Package config resolves the target user, credentials, and run settings.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Defaults used when neither the config file nor the environment sets a value.
const (
	DefaultUsername   = "Leg3ndary"
	DefaultAPIURL     = "https://api.github.com/"
	DefaultUserAgent  = "GitHub-Resume-Builder"
	DefaultOutputFile = "github_resume_data.json"
	DefaultMaxPages   = 100
	DefaultTimeout    = 30 * time.Second
	DefaultLogLevel   = "info"
)

// Config holds the settings of a single extraction run.
type Config struct {
	// GitHub
	Username  string `toml:"username"`
	Token     string `toml:"token"`
	APIURL    string `toml:"api_url"`
	UserAgent string `toml:"user_agent"`

	// Run
	OutputFile string   `toml:"output"`
	MaxPages   int      `toml:"max_pages"` // 0 means no page bound
	Timeout    Duration `toml:"timeout"`   // 0 means no timeout
	LogLevel   string   `toml:"log_level"`
}

// Duration is a time.Duration that decodes from TOML strings such as "45s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Username:   DefaultUsername,
		APIURL:     DefaultAPIURL,
		UserAgent:  DefaultUserAgent,
		OutputFile: DefaultOutputFile,
		MaxPages:   DefaultMaxPages,
		Timeout:    Duration{DefaultTimeout},
		LogLevel:   DefaultLogLevel,
	}
}

// Load builds the configuration from defaults, the optional TOML file at
// path, a .env file in the working directory, and the process environment,
// in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg.Username = getEnv("GITHUB_USERNAME", cfg.Username)
	cfg.Token = getEnv("GITHUB_TOKEN", cfg.Token)
	cfg.APIURL = getEnv("GITHUB_API_URL", cfg.APIURL)
	cfg.UserAgent = getEnv("GITHUB_USER_AGENT", cfg.UserAgent)
	cfg.OutputFile = getEnv("RESUME_OUTPUT", cfg.OutputFile)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	var err error
	if cfg.MaxPages, err = getEnvAsInt("RESUME_MAX_PAGES", cfg.MaxPages); err != nil {
		return nil, err
	}
	if cfg.Timeout.Duration, err = getEnvAsDuration("RESUME_TIMEOUT", cfg.Timeout.Duration); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a run.
// An empty token is allowed and results in unauthenticated requests.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return &ConfigError{Field: "GITHUB_USERNAME", Message: "username is required"}
	}
	if c.MaxPages < 0 {
		return &ConfigError{Field: "RESUME_MAX_PAGES", Message: "must not be negative"}
	}
	if c.Timeout.Duration < 0 {
		return &ConfigError{Field: "RESUME_TIMEOUT", Message: "must not be negative"}
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return &ConfigError{Field: "RESUME_OUTPUT", Message: "output file is required"}
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: "GITHUB_API_URL", Message: "must be an absolute URL"}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return &ConfigError{Field: "LOG_LEVEL", Message: "must be one of debug, info, warn, error"}
	}
	return nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ConfigError{Field: key, Message: "must be an integer"}
	}
	return n, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, &ConfigError{Field: key, Message: "must be a duration such as 30s or 2m"}
	}
	return d, nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
