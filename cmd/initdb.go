package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kokko-ng/sql-exercises/seed"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create and seed the practice database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		seeder := seed.New(cfg.Seed, logger)
		if err := seeder.Create(cfg.Paths.Database); err != nil {
			return err
		}

		cmd.Printf("Practice database created at %s\n", cfg.Paths.Database)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}
