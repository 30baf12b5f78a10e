package cmd

import (
	"context"

	"shopzada-etl/feature/profile"

	"github.com/spf13/cobra"
)

// profileCmd produces data quality reports over the staging tables.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile staging tables",
	Long: `Computes per-column null and cardinality statistics, value
frequencies for suspicious columns, candidate keys, and foreign key
probes over every stg_ table, writing CSV reports to the report dir.`,
	RunE: runProfile,
}

func init() {
	RootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	l.Info("Starting staging profile")
	return profile.NewService(db, l, cfg.Pipeline.ReportDir).Run(ctx)
}
