package cmd

import (
	"context"
	"fmt"

	"shopzada-etl/core/source"
	"shopzada-etl/feature/ingest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ingestCmd loads every raw file from the configured source into staging.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest raw files into staging tables",
	Long: `Reads every supported file from the configured source (local
directory or S3 bucket), normalizes headers, sanitizes composite cells,
and lands each file as a stg_ table with full-replace semantics.`,
	RunE: runIngest,
}

func init() {
	RootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	src, err := source.New(cfg.Source)
	if err != nil {
		return fmt.Errorf("failed to open raw source: %w", err)
	}

	l.Info("Starting ingestion", zap.String("backend", cfg.Source.Backend))
	return ingest.NewService(db, src, l).Run(ctx)
}
