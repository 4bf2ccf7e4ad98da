// Command artikelctl runs operational tasks against the artikel database:
// schema migrations, noun imports, stale session cleanup and development
// tokens. It is meant for deploy hooks and cron jobs.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/artikel-backend/internal/app"
	"github.com/heartmarshall/artikel-backend/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "artikelctl",
		Short:         "Operate the artikel practice backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newMigrateCmd(),
		newImportNounsCmd(),
		newCleanupCmd(),
		newTokenCmd(),
	)
	return root
}

// loadConfig reads the same configuration as the server and builds its logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
