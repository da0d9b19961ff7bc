package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kokko-ng/sql-exercises/checker"
	"github.com/kokko-ng/sql-exercises/generate"
	"github.com/kokko-ng/sql-exercises/solutions"
)

var generateCmd = &cobra.Command{
	Use:   "generate [unit...]",
	Short: "Build reference fingerprints from trusted solution queries",
	Long: `generate executes each reference query against the practice database,
fingerprints the result, and writes one reference file per unit. With no
arguments every discoverable unit is generated. Any failing reference
query aborts generation with a non-zero exit code.`,
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

		g := generate.New(
			db,
			checker.NewStore(cfg.Paths.Fingerprints, logger),
			solutions.NewDir(cfg.Paths.Solutions),
			logger,
		)
		return g.Units(args)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
