package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kokko-ng/sql-exercises/checker"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [table]",
	Short: "List practice tables, or show one table's columns",
	Args:  cobra.MaximumNArgs(1),
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

		if len(args) == 0 {
			tables, err := checker.ListTables(db)
			if err != nil {
				return err
			}
			for _, table := range tables {
				cmd.Println(table)
			}
			return nil
		}

		columns, err := checker.TableInfo(db, args[0])
		if err != nil {
			return err
		}

		rows := pterm.TableData{{"column", "type", "not null", "primary key"}}
		for _, col := range columns {
			rows = append(rows, []string{
				col.Name, col.Type, boolMark(col.NotNull), boolMark(col.Primary),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

func boolMark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
