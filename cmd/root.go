package cmd

import (
	"fmt"
	"log/slog"

	"github.com/sherine-k/village/pkg/config"
	"github.com/sherine-k/village/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFormat  string
	useColor   bool

	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "village",
		Short: "Village barbershop simulator",
		Long: `A CLI tool that simulates a village barbershop.

Every step the resident whose beard is due soonest is shaved by the barber
who becomes free soonest, and the logical clock advances to the later of the
two times. The deposit command runs a compound interest comparison.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(cmd.ErrOrStderr(), logLevel, logFormat)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (built-in scenario when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&useColor, "color", false, "Highlight warnings with terminal colors")

	rootCmd.AddCommand(
		newShaveCmd(),
		newDepositCmd(),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig returns the configuration file contents or the built-in scenario
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info("loaded configuration", "file", configFile)
	return cfg, nil
}
