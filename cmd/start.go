package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"maulepro-server/core/config"
	"maulepro-server/core/logger"
	"maulepro-server/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the local static server",
	Long: `Binds the configured port on all interfaces, serves the project root and
runs until interrupted with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	addServerFlags(startCmd)
	RootCmd.AddCommand(startCmd)
}

func addServerFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("port", "p", server.DefaultPort, "TCP port to listen on")
	cmd.Flags().StringP("root", "r", "", "directory to serve (default: parent of the executable's directory)")
	cmd.Flags().Bool("no-browser", false, "do not open the default browser")
}

// applyFlags overrides loaded configuration with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *server.Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("root") {
		cfg.Root, _ = flags.GetString("root")
	}
	if noBrowser, _ := flags.GetBool("no-browser"); noBrowser {
		cfg.OpenBrowser = false
	}
}

func runStart(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cmd, &cfg.Server)

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Resolve and validate the served directory
	if err := resolveServedRoot(&cfg.Server, logg); err != nil {
		return err
	}

	// 4. Build Server
	srv, err := server.New(cfg.Server, logg)
	if err != nil {
		return err
	}

	// 5. Serve until interrupted
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

// resolveServedRoot makes cfg.Root absolute and validates cfg. A missing
// directory is only a warning, and so is falling back to the executable-based
// default: under go run or go install that default is rarely the project.
func resolveServedRoot(cfg *server.Config, logg *zap.Logger) error {
	explicit := cfg.Root != ""

	root, err := server.ResolveRoot(cfg.Root)
	if err != nil {
		return err
	}
	cfg.Root = root

	if !explicit {
		logg.Warn("No root configured, serving the executable's parent directory; set --root or SERVER_ROOT to change it",
			zap.String("root", root))
	}

	if err := cfg.Validate(); err != nil {
		if !errors.Is(err, server.ErrRootMissing) {
			return err
		}
		// Requests will 404 until the directory appears.
		logg.Warn("Served directory is missing", zap.String("root", root))
	}
	return nil
}
