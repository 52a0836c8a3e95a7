// Package config provides YAML configuration parsing for homework-bot.
//
// This package enables running the bot as a standalone binary. All fields
// are optional: a missing config file degrades to pure defaults, with the
// three credentials sourced from the environment.
//
// Example configuration:
//
//	endpoint: https://practicum.yandex.ru/api/user_api/homework_statuses/
//	poll_interval: 10m
//	timeout: 10s
//	status_port: 8080
//
//	practicum:
//	  token: ${PRACTICUM_TOKEN}
//
//	telegram:
//	  token: ${TELEGRAM_TOKEN}
//	  chat_id: ${TELEGRAM_CHAT_ID}
package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// minPollInterval is the minimum allowed polling interval.
// This prevents accidental DoS of the review API with overly aggressive polling.
const minPollInterval = 1 * time.Second

// defaults applied by Parse
const (
	defaultEndpoint     = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultPollInterval = 600 * time.Second
	defaultTimeout      = 10 * time.Second
)

// Environment variables the credentials default to.
const (
	EnvPracticumToken = "PRACTICUM_TOKEN"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
)

// Config is the root configuration structure for homework-bot.
//
// It maps directly to the YAML configuration file structure.
// Use [Load], [Parse] or [Default] to create a Config.
type Config struct {
	// Endpoint is the homework-statuses API URL.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}.
	// Defaults to the production Practicum endpoint.
	Endpoint string `yaml:"endpoint"`

	// PollInterval is the time between poll cycles.
	// Accepts duration strings like "10m", "600s". Defaults to 600s.
	PollInterval Duration `yaml:"poll_interval"`

	// Timeout is the per-request timeout for API and notification calls.
	// Defaults to 10s.
	Timeout Duration `yaml:"timeout"`

	// StatusPort enables the status API server when non-zero.
	StatusPort int `yaml:"status_port"`

	// Practicum holds the review API credential.
	Practicum PracticumConfig `yaml:"practicum"`

	// Telegram holds the messaging credentials.
	Telegram TelegramConfig `yaml:"telegram"`
}

// PracticumConfig holds the review API credential.
type PracticumConfig struct {
	// Token is the API key, sent as "Authorization: OAuth <token>".
	// Defaults to ${PRACTICUM_TOKEN}.
	Token string `yaml:"token"`
}

// TelegramConfig holds the messaging credentials.
type TelegramConfig struct {
	// Token is the bot key. Defaults to ${TELEGRAM_TOKEN}.
	Token string `yaml:"token"`

	// ChatID is the destination chat identifier, kept as an opaque
	// string until construction. Defaults to ${TELEGRAM_CHAT_ID}.
	ChatID string `yaml:"chat_id"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with
// environment values. An unset variable without a default is an error.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// expandCredential is like expandEnvVars but maps unset variables to the
// empty string, so missing credentials can be collected and reported
// together instead of failing one at a time.
func expandCredential(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}
		if value, exists := os.LookupEnv(submatches[1]); exists {
			return value
		}
		if len(submatches) > 2 && submatches[2] != "" {
			return submatches[3]
		}
		return ""
	})
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in the file are expanded before validation.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Default returns the configuration used when no config file is given:
// all defaults, with the credentials sourced from the environment.
func Default() (*Config, error) {
	return Parse(nil)
}

// Parse parses YAML configuration data.
//
// Defaults are applied for the endpoint (production Practicum URL), poll
// interval (600s), timeout (10s) and the three credentials (environment
// expansion of PRACTICUM_TOKEN, TELEGRAM_TOKEN and TELEGRAM_CHAT_ID).
// Missing credentials are all enumerated in a single error so a broken
// deployment is diagnosed in one pass.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = Duration(defaultPollInterval)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = Duration(defaultTimeout)
	}
	if cfg.Practicum.Token == "" {
		cfg.Practicum.Token = "${" + EnvPracticumToken + "}"
	}
	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = "${" + EnvTelegramToken + "}"
	}
	if cfg.Telegram.ChatID == "" {
		cfg.Telegram.ChatID = "${" + EnvTelegramChatID + "}"
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	expanded, err := expandEnvVars(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	c.Endpoint = expanded

	parsedURL, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("endpoint scheme must be http or https, got %q", parsedURL.Scheme)
	}

	if c.PollInterval.Duration() < minPollInterval {
		return fmt.Errorf("poll_interval must be at least %s, got %s", minPollInterval, c.PollInterval.Duration())
	}
	if c.Timeout.Duration() < 0 {
		return fmt.Errorf("timeout cannot be negative, got %s", c.Timeout.Duration())
	}
	if c.StatusPort < 0 || c.StatusPort > 65535 {
		return fmt.Errorf("status_port must be between 0 and 65535, got %d", c.StatusPort)
	}

	c.Practicum.Token = expandCredential(c.Practicum.Token)
	c.Telegram.Token = expandCredential(c.Telegram.Token)
	c.Telegram.ChatID = expandCredential(c.Telegram.ChatID)

	var missing []string
	if c.Practicum.Token == "" {
		missing = append(missing, EnvPracticumToken)
	}
	if c.Telegram.Token == "" {
		missing = append(missing, EnvTelegramToken)
	}
	if c.Telegram.ChatID == "" {
		missing = append(missing, EnvTelegramChatID)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required credentials: %s", strings.Join(missing, ", "))
	}

	if _, err := strconv.ParseInt(c.Telegram.ChatID, 10, 64); err != nil {
		return fmt.Errorf("telegram chat_id must be an integer, got %q", c.Telegram.ChatID)
	}

	return nil
}

// ChatID returns the destination chat identifier as an integer.
// Parse guarantees the value is numeric.
func (c *Config) ChatID() int64 {
	id, _ := strconv.ParseInt(c.Telegram.ChatID, 10, 64)
	return id
}
