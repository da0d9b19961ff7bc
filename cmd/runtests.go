package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kokko-ng/sql-exercises/checker"
	"github.com/kokko-ng/sql-exercises/runner"
	"github.com/kokko-ng/sql-exercises/solutions"
)

var runTestsCmd = &cobra.Command{
	Use:   "run-tests [unit]",
	Short: "Check every reference solution against its stored fingerprint",
	Long: `run-tests evaluates each unit's reference solutions through the same
checking path learners use and reports a per-exercise line plus a final
summary. The exit code is zero only when every exercise passed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := checker.OpenReadOnly(cfg.Paths.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		unit := ""
		if len(args) == 1 {
			unit = args[0]
		}

		r := runner.New(
			db,
			checker.NewStore(cfg.Paths.Fingerprints, logger),
			solutions.NewDir(cfg.Paths.Solutions),
			presenter(),
			logger,
		)
		summary, err := r.Run(unit)
		if err != nil {
			return err
		}
		if !summary.OK() {
			return fmt.Errorf("%d of %d exercise(s) failed, %d unit(s) with errors",
				summary.Failed, summary.Total(), summary.UnitErrors)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runTestsCmd)
}
