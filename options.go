package homeworkbot

import (
	"errors"
	"log/slog"
	"time"

	"github.com/DenisBelikov/homework-bot/internal/history"
)

// botConfig holds mutable state during Bot construction.
type botConfig struct {
	fetcher    Fetcher
	notifier   Notifier
	interval   time.Duration
	logger     *slog.Logger
	log        history.Log
	statusPort int
}

// Option is a function that configures a [Bot] instance during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithFetcher], [WithNotifier], [WithPollInterval],
// [WithLogger], [WithHistory], [WithStatusPort].
type Option func(*botConfig) error

// WithFetcher sets the [Fetcher] used to query the review API.
//
// A fetcher is required for [New] to succeed. The production fetcher is
// the internal practicum client, wired up by the config package; tests
// typically inject a fake.
func WithFetcher(f Fetcher) Option {
	return func(cfg *botConfig) error {
		if f == nil {
			return errors.New("fetcher must not be nil")
		}
		cfg.fetcher = f
		return nil
	}
}

// WithNotifier sets the [Notifier] that delivers messages to the chat.
//
// A notifier is required for [New] to succeed.
func WithNotifier(n Notifier) Option {
	return func(cfg *botConfig) error {
		if n == nil {
			return errors.New("notifier must not be nil")
		}
		cfg.notifier = n
		return nil
	}
}

// WithPollInterval sets how long the loop waits between iterations.
//
// The wait is unconditional and not adaptive to error rate. Defaults to
// 600 seconds if not specified.
//
// Returns an error if the duration is zero or negative.
func WithPollInterval(d time.Duration) Option {
	return func(cfg *botConfig) error {
		if d <= 0 {
			return errors.New("poll interval must be positive")
		}
		cfg.interval = d
		return nil
	}
}

// WithLogger sets the logger for loop events.
//
// Defaults to slog.Default() if not specified.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *botConfig) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithHistory sets the notification log that records deliveries.
//
// Defaults to a fresh in-memory log if not specified.
func WithHistory(log history.Log) Option {
	return func(cfg *botConfig) error {
		if log == nil {
			return errors.New("history log must not be nil")
		}
		cfg.log = log
		return nil
	}
}

// WithStatusPort enables the status API server on the given TCP port.
//
// The server exposes the bot's current state and recent deliveries at
// /api/status and a liveness check at /healthz. Disabled by default.
//
// Returns an error if the port is outside the valid range (1-65535).
func WithStatusPort(port int) Option {
	return func(cfg *botConfig) error {
		if port < 1 || port > 65535 {
			return errors.New("status port must be between 1 and 65535")
		}
		cfg.statusPort = port
		return nil
	}
}
