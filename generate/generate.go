// Package generate builds reference fingerprint tables from trusted
// solution queries. It is the only flow that writes reference files;
// checking paths consume them read-only.
package generate

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/kokko-ng/sql-exercises/checker"
	"github.com/kokko-ng/sql-exercises/solutions"
)

type Generator struct {
	db     *sqlx.DB
	store  *checker.Store
	dir    solutions.Dir
	logger *zap.Logger
}

func New(db *sqlx.DB, store *checker.Store, dir solutions.Dir, logger *zap.Logger) *Generator {
	return &Generator{
		db:     db,
		store:  store,
		dir:    dir,
		logger: logger,
	}
}

// Unit builds and persists the reference table for one unit. Any
// reference query failure aborts the whole unit before anything is
// written: a bad reference must never leave a partial table behind.
func (g *Generator) Unit(unitID string) error {
	unit, err := g.dir.Load(unitID)
	if err != nil {
		return err
	}

	table := checker.ReferenceTable{}
	for _, exercise := range unit.ExerciseIDs() {
		result, err := checker.Execute(g.db, unit.Exercises[exercise])
		if err != nil {
			return fmt.Errorf("reference query for %s/%s failed: %w", unitID, exercise, err)
		}

		fp := checker.FingerprintOf(result)
		hints := unit.Hints[exercise]
		if hints == nil {
			hints = []string{}
		}
		table[exercise] = checker.ReferenceEntry{Fingerprint: fp, Hints: hints}

		g.logger.Info(
			"fingerprinted reference result",
			zap.String("unit", unitID),
			zap.String("exercise", exercise),
			zap.Int("rows", fp.RowCount),
			zap.Int("columns", fp.ColumnCount),
		)
	}

	if err := g.store.Save(unitID, table); err != nil {
		return err
	}

	g.logger.Info(
		"reference table written",
		zap.String("unit", unitID),
		zap.Int("exercises", len(table)),
		zap.String("path", g.store.Path(unitID)),
	)

	return nil
}

// Units builds every named unit, or every discoverable unit when none
// are named, stopping at the first failure.
func (g *Generator) Units(unitIDs []string) error {
	if len(unitIDs) == 0 {
		discovered, err := g.dir.List()
		if err != nil {
			return err
		}
		unitIDs = discovered
	}
	if len(unitIDs) == 0 {
		return fmt.Errorf("no solution manifests found")
	}

	for _, unitID := range unitIDs {
		if err := g.Unit(unitID); err != nil {
			return err
		}
	}
	return nil
}
