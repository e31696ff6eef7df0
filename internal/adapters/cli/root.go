package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	pidFile    string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "basketball-api",
		Short: "Basketball Analytics - teams and players API",
		Long: `Basketball Analytics serves the teams and players REST API and
processes the events it emits.

Configuration is read from config.yaml, BA_* environment variables and .env.

Examples:
  basketball-api serve
  basketball-api migrate
  basketball-api consume
  basketball-api config show
  basketball-api health --address localhost:9090`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/basketball-analytics)")
	rootCmd.PersistentFlags().StringVar(&pidFile, "pid-file", "",
		"Refuse to start when another process holds this PID file")

	// Add command groups
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewMigrateCommand())
	rootCmd.AddCommand(NewConsumeCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewHealthCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
