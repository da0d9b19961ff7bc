package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kokko-ng/sql-exercises/checker"
)

var hintUnit string

var hintCmd = &cobra.Command{
	Use:   "hint <exercise>",
	Short: "Show hints for an exercise without revealing the answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		unit := resolveUnit(hintUnit)
		store := checker.NewStore(cfg.Paths.Fingerprints, logger)
		table := store.Load(unit)

		var hints []string
		if entry, ok := table[args[0]]; ok {
			hints = entry.Hints
		}
		presenter().Hints(args[0], hints)
		return nil
	},
}

func init() {
	hintCmd.Flags().StringVar(&hintUnit, "unit", "", "unit the exercise belongs to")
	rootCmd.AddCommand(hintCmd)
}
