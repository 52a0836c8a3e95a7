package main

import (
	"fmt"

	"github.com/DenisBelikov/homework-bot/config"
	"github.com/spf13/cobra"
)

// validateCmd validates a config file without starting the bot.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a homework-bot configuration file without starting the bot.

This command parses the YAML, expands environment variables, and validates
all fields including the presence of the three credentials. It's useful
for CI/CD pipelines or pre-deployment checks. Credential values are never
printed.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  homework-bot validate -c config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	statusServer := "disabled"
	if cfg.StatusPort > 0 {
		statusServer = fmt.Sprintf("port %d", cfg.StatusPort)
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Endpoint:      %s\n", cfg.Endpoint)
	fmt.Printf("  Poll interval: %s\n", cfg.PollInterval.Duration())
	fmt.Printf("  Timeout:       %s\n", cfg.Timeout.Duration())
	fmt.Printf("  Status server: %s\n", statusServer)
	fmt.Printf("  Credentials:   all present\n")

	return nil
}
