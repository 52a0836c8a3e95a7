// Package main is the entry point for the homework-bot CLI.
//
// The bot can be run either as a library (SDK) or as a standalone binary.
// This CLI provides the standalone binary approach.
//
// Usage:
//
//	homework-bot run                    # Run with env credentials
//	homework-bot run -c config.yaml     # Run with a config file
//	homework-bot validate -c config.yaml # Validate configuration
//	homework-bot version                # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "homework-bot",
	Short: "A homework review status notifier for Telegram",
	Long: `homework-bot polls the Yandex.Practicum homework-review API and
forwards review status changes to a Telegram chat.

Quick start:
  1. Export PRACTICUM_TOKEN, TELEGRAM_TOKEN and TELEGRAM_CHAT_ID
  2. Run: homework-bot run

A config file overrides the defaults:
  poll_interval: 10m
  status_port: 8080
  telegram:
    chat_id: ${TELEGRAM_CHAT_ID}`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this homework-bot binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("homework-bot %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
