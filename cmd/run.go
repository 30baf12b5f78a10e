package cmd

import (
	"context"
	"fmt"

	"shopzada-etl/core/source"
	"shopzada-etl/feature/curate"
	"shopzada-etl/feature/ingest"
	"shopzada-etl/feature/profile"
	"shopzada-etl/feature/validate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCmd executes the full pipeline end to end.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline (ingest, profile, clean, validate)",
	Long: `Runs ingestion, staging profiling, curation, and validation in
sequence against the configured source and warehouse. Each stage reads what
the previous one landed; a stage-level failure stops the run.`,
	RunE: runPipeline,
}

func init() {
	RootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
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

	l.Info("Starting full pipeline run", zap.String("backend", cfg.Source.Backend))

	if err := ingest.NewService(db, src, l).Run(ctx); err != nil {
		return fmt.Errorf("ingest stage failed: %w", err)
	}

	if err := profile.NewService(db, l, cfg.Pipeline.ReportDir).Run(ctx); err != nil {
		return fmt.Errorf("profile stage failed: %w", err)
	}

	geo := curate.LoadGeoMap(cfg.Pipeline.GeoFixes, l)
	if err := curate.NewService(db, geo, l, cfg.Pipeline.DimDateStartYear).Run(ctx); err != nil {
		return fmt.Errorf("clean stage failed: %w", err)
	}

	if err := validate.NewService(db, l, cfg.Pipeline.ReportDir).Run(ctx); err != nil {
		return fmt.Errorf("validate stage failed: %w", err)
	}

	l.Info("Pipeline run complete")
	return nil
}
