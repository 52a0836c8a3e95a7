package config

import (
	"log/slog"

	homeworkbot "github.com/DenisBelikov/homework-bot"
	"github.com/DenisBelikov/homework-bot/internal/practicum"
	"github.com/DenisBelikov/homework-bot/internal/telegram"
)

// BuildOptions converts a validated configuration into SDK options,
// constructing the production API client and Telegram notifier.
//
// The returned options are ready to pass to homeworkbot.New. Constructing
// the notifier performs a network call to verify the bot token, so this is
// the first point at which a bad Telegram credential surfaces.
func BuildOptions(cfg *Config, logger *slog.Logger) ([]homeworkbot.Option, error) {
	client := practicum.NewClient(cfg.Endpoint, cfg.Practicum.Token, cfg.Timeout.Duration())

	notifier, err := telegram.New(cfg.Telegram.Token, cfg.ChatID(), logger)
	if err != nil {
		client.Close()
		return nil, err
	}

	opts := []homeworkbot.Option{
		homeworkbot.WithFetcher(client),
		homeworkbot.WithNotifier(notifier),
		homeworkbot.WithPollInterval(cfg.PollInterval.Duration()),
		homeworkbot.WithLogger(logger),
	}
	if cfg.StatusPort > 0 {
		opts = append(opts, homeworkbot.WithStatusPort(cfg.StatusPort))
	}
	return opts, nil
}
