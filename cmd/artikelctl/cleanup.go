package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/artikel-backend/internal/adapter/postgres"
	sessionrepo "github.com/heartmarshall/artikel-backend/internal/adapter/postgres/session"
)

const cleanupTimeout = 5 * time.Minute

var errOlderThan = errors.New("--older-than must be positive")

// Sessions left IN_PROGRESS by a crashed or redeployed server never complete.
// cleanup marks them ABANDONED so they stop counting as open.
func newCleanupCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Abandon in-progress sessions started before a cutoff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if olderThan <= 0 {
				return errOlderThan
			}
			return runCleanup(cmd, olderThan)
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 24*time.Hour, "abandon sessions started longer ago than this")
	return cmd
}

func runCleanup(cmd *cobra.Command, olderThan time.Duration) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cleanupTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cutoff := time.Now().Add(-olderThan)
	n, err := sessionrepo.New(pool).AbandonStale(ctx, cutoff)
	if err != nil {
		log.Error("cleanup failed", slog.String("error", err.Error()), slog.Time("cutoff", cutoff))
		return fmt.Errorf("abandon stale sessions: %w", err)
	}

	log.Info("cleanup completed", slog.Int64("abandoned", n), slog.Time("cutoff", cutoff))
	fmt.Fprintf(cmd.OutOrStdout(), "abandoned %d session(s)\n", n)
	return nil
}
