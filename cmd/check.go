package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kokko-ng/sql-exercises/checker"
)

var (
	checkUnit string
	checkFile string
)

var checkCmd = &cobra.Command{
	Use:   "check <exercise> [query]",
	Short: "Check one candidate query against its reference fingerprint",
	Long: `check validates a learner query for one exercise. The query is read
from the second argument, from --file, or from stdin. The unit comes from
--unit, the ` + "`SQL_EXERCISES_UNIT`" + ` environment variable, or "unknown".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		query, err := readQuery(args)
		if err != nil {
			return err
		}

		db, err := checker.OpenReadOnly(cfg.Paths.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		unit := resolveUnit(checkUnit)
		store := checker.NewStore(cfg.Paths.Fingerprints, logger)
		c := checker.New(unit, db, store.Load(unit), logger)

		verdict := c.Check(args[0], query)
		presenter().Verdict(verdict)
		if !verdict.Passed {
			// Deferred cleanup must run before the process exits.
			return errVerdictFailed
		}
		return nil
	},
}

func readQuery(args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}
	if checkFile != "" {
		data, err := os.ReadFile(checkFile)
		if err != nil {
			return "", fmt.Errorf("read query file: %w", err)
		}
		return string(data), nil
	}

	info, err := os.Stdin.Stat()
	if err == nil && info.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read query from stdin: %w", err)
		}
		return string(data), nil
	}

	// No query anywhere resolves to an EMPTY_QUERY verdict downstream.
	return "", nil
}

func init() {
	checkCmd.Flags().StringVar(&checkUnit, "unit", "", "unit the exercise belongs to")
	checkCmd.Flags().StringVar(&checkFile, "file", "", "read the query from a file")
	rootCmd.AddCommand(checkCmd)
}
