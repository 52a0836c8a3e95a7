package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	homeworkbot "github.com/DenisBelikov/homework-bot"
	"github.com/DenisBelikov/homework-bot/config"
	"github.com/spf13/cobra"
)

// newLogger creates a JSON logger for CLI use.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// runCmd starts the poll loop.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the poll loop",
	Long: `Run the homework-bot poll loop.

The bot will:
  - Load configuration (file is optional; credentials come from
    PRACTICUM_TOKEN, TELEGRAM_TOKEN and TELEGRAM_CHAT_ID by default)
  - Poll the review API at the configured interval
  - Forward status changes and errors to the configured Telegram chat

The bot runs until interrupted (Ctrl+C) or receives SIGTERM.

Example:
  homework-bot run
  homework-bot run -c config.yaml --debug`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "path to config file (optional)")
	runCmd.Flags().Bool("debug", false, "enable debug logging")
}

func runRun(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	logger := newLogger(debug)

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configFile)
	if err != nil {
		// one line enumerating everything wrong, then a non-zero exit
		logger.Error("startup configuration invalid", "error", err)
		return err
	}

	logger.Info("config loaded",
		"endpoint", cfg.Endpoint,
		"poll_interval", cfg.PollInterval.Duration().String(),
		"status_port", cfg.StatusPort,
	)

	opts, err := config.BuildOptions(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build collaborators: %w", err)
	}

	bot, err := homeworkbot.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// blocks until the context is cancelled
	if err := bot.Start(ctx); err != nil {
		return fmt.Errorf("bot error: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// loadConfig loads the given file, or falls back to pure defaults with
// environment credentials when no file was given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}
