package cmd

import (
	"context"

	"shopzada-etl/feature/validate"

	"github.com/spf13/cobra"
)

// validateCmd runs the read-only integrity checks over the curated schema.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate curated tables",
	Long: `Checks natural key uniqueness, null counts on critical columns,
and fact-to-dimension foreign key coverage over the curated tables.
Findings go to the log and a CSV report; nothing is mutated.`,
	RunE: runValidate,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	l.Info("Starting validation")
	return validate.NewService(db, l, cfg.Pipeline.ReportDir).Run(ctx)
}
