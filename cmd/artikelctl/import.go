package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/artikel-backend/internal/adapter/postgres"
	nounrepo "github.com/heartmarshall/artikel-backend/internal/adapter/postgres/noun"
	"github.com/heartmarshall/artikel-backend/internal/domain"
	"github.com/heartmarshall/artikel-backend/internal/seed"
)

const importTimeout = 10 * time.Minute

func newImportNounsCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import-nouns",
		Short: "Upsert nouns from a YAML file, keyed by word and article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImportNouns(cmd, file, dryRun)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to the YAML noun list")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runImportNouns(cmd *cobra.Command, file string, dryRun bool) error {
	nouns, err := seed.ParseFile(file)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSummary(out, nouns)
	if dryRun {
		fmt.Fprintln(out, "dry run: nothing written")
		return nil
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), importTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	repo := nounrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	var written int
	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		n, err := repo.UpsertBatch(ctx, nouns)
		written = n
		return err
	})
	if err != nil {
		return fmt.Errorf("import nouns: %w", err)
	}

	log.Info("nouns imported", slog.String("file", file), slog.Int("upserted", written))
	fmt.Fprintf(out, "upserted %d noun(s)\n", written)
	return nil
}

func printSummary(w io.Writer, nouns []domain.Noun) {
	counts := map[domain.Article]int{}
	for _, n := range nouns {
		counts[n.Article]++
	}
	fmt.Fprintf(w, "parsed %d noun(s): der=%d die=%d das=%d\n",
		len(nouns), counts[domain.ArticleDer], counts[domain.ArticleDie], counts[domain.ArticleDas])
}
