// Package config resolves the effective client configuration from
// layered sources: explicit options, environment variables, an optional
// TOML config file, and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Built-in defaults, the lowest-precedence layer.
const (
	DefaultBaseURL = "https://api.johnsosoka.com"
	DefaultTimeout = 30 * time.Second
)

// Environment variables recognized by Resolve.
const (
	EnvBaseURL = "JSCOM_API_BASE_URL"
	EnvToken   = "JSCOM_API_TOKEN"
	EnvTimeout = "JSCOM_API_TIMEOUT" // decimal seconds, e.g. "30" or "2.5"
)

// Config is the resolved, immutable client configuration. Created once
// per command invocation.
type Config struct {
	// BaseURL is the API base URL, never with a trailing slash.
	BaseURL string

	// AuthToken authenticates protected endpoints. Empty means no token;
	// the auth header is then omitted entirely.
	AuthToken string

	// Timeout applies to each individual request. Always positive.
	Timeout time.Duration
}

// Options are the explicit, highest-precedence values. Zero values mean
// "not supplied"; the lower layers are consulted instead.
type Options struct {
	BaseURL   string
	AuthToken string
	Timeout   time.Duration
}

// fileConfig mirrors the optional TOML config file at
// $XDG_CONFIG_HOME/jscom/config.toml.
type fileConfig struct {
	BaseURL        string  `toml:"base_url"`
	AuthToken      string  `toml:"auth_token"`
	TimeoutSeconds float64 `toml:"timeout_seconds"`
}

// Resolve merges explicit options, environment variables, the config
// file, and defaults into a Config. Precedence per field, highest
// first: option > env > file > default.
//
// A timeout that is present but not a positive number (in the env or
// the file) falls back silently to the default. An explicitly supplied
// negative Options.Timeout is the one construction error.
func Resolve(opts Options) (*Config, error) {
	if opts.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", opts.Timeout)
	}

	file := loadFile()

	baseURL := firstNonEmpty(opts.BaseURL, os.Getenv(EnvBaseURL), file.BaseURL, DefaultBaseURL)
	token := firstNonEmpty(opts.AuthToken, os.Getenv(EnvToken), file.AuthToken)

	timeout := opts.Timeout
	if timeout == 0 {
		if env := os.Getenv(EnvTimeout); env != "" {
			// Present but unparseable or non-positive means the default,
			// not an error and not the file layer.
			timeout = timeoutFromSeconds(env)
			if timeout == 0 {
				timeout = DefaultTimeout
			}
		}
	}
	if timeout == 0 && file.TimeoutSeconds > 0 {
		timeout = time.Duration(file.TimeoutSeconds * float64(time.Second))
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Config{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		AuthToken: token,
		Timeout:   timeout,
	}, nil
}

// timeoutFromSeconds parses a decimal-seconds string. Anything absent,
// unparseable, or non-positive yields zero so the next layer applies.
func timeoutFromSeconds(s string) time.Duration {
	if s == "" {
		return 0
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

// loadFile reads the config file if one exists. Missing or malformed
// files are skipped; the file layer is best-effort.
func loadFile() fileConfig {
	var fc fileConfig
	path := filePath()
	if path == "" {
		return fc
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}
	}
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return fileConfig{}
	}
	return fc
}

// filePath returns the config file location, honoring XDG_CONFIG_HOME.
func filePath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "jscom", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "jscom", "config.toml")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
