package cmd

import (
	"fmt"
	"os"

	"maulepro-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. Run without a subcommand it behaves
// like "start", so the binary can be launched with no arguments.
var RootCmd = &cobra.Command{
	Use:   "maulepro-server",
	Short: "Local static server for the MaulePro portal",
	Long: `Serves the MaulePro portal from the project root on http://localhost:8000,
with a permissive CORS header on every response, and opens the default browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStart,
}

// Execute runs the root command and exits 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug config gives ISO8601 timestamps for the CLI.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	addServerFlags(RootCmd)
}
