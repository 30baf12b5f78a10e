package cmd

import (
	"context"

	"shopzada-etl/feature/curate"

	"github.com/spf13/cobra"
)

// cleanCmd builds the curated star schema from the staging tables.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Build curated tables from staging",
	Long: `Cleans and reconciles the staging tables into the curated star
schema: dimension tables for users, products and merchants, fact tables
for orders and line items, supporting tables for delays, campaigns and
card summaries, and a generated date dimension.`,
	RunE: runClean,
}

func init() {
	RootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	geo := curate.LoadGeoMap(cfg.Pipeline.GeoFixes, l)

	l.Info("Starting curation")
	return curate.NewService(db, geo, l, cfg.Pipeline.DimDateStartYear).Run(ctx)
}
