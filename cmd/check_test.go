package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kokko-ng/sql-exercises/checker"
)

// checkFixture builds a minimal practice database, a reference table
// for one exercise, and a config file pointing at both.
func checkFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	dbPath := filepath.Join(root, "practice.db")
	db, err := sqlx.Connect("sqlite3", dbPath)
	require.NoError(t, err)
	db.MustExec(`CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT)`)
	db.MustExec(`INSERT INTO t (id, name) VALUES (1, 'a'), (2, 'b')`)

	result, err := checker.Execute(db, "SELECT id, name FROM t")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store := checker.NewStore(filepath.Join(root, "fingerprints"), zap.NewNop())
	require.NoError(t, store.Save("unit_a", checker.ReferenceTable{
		"ex_01": {Fingerprint: checker.FingerprintOf(result), Hints: []string{}},
	}))

	cfgPath := filepath.Join(root, "config.json")
	cfg := fmt.Sprintf(`{
		"logger": {
			"level": "error",
			"encoding": "console",
			"outputPaths": ["stderr"],
			"errorOutputPaths": ["stderr"],
			"encoderConfig": {"messageKey": "msg", "levelKey": "level", "levelEncoder": "lowercase"}
		},
		"paths": {
			"database": %q,
			"fingerprints": %q,
			"solutions": %q
		},
		"seed": {
			"seed": 42, "departments": 8, "employees": 16, "customers": 10,
			"products": 10, "orders": 10, "projects": 5,
			"users": 10, "sessions": 10, "metricDays": 7
		}
	}`, dbPath, filepath.Join(root, "fingerprints"), filepath.Join(root, "exercises"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	return cfgPath
}

func runCLI(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCheckCommandPassingQuery(t *testing.T) {
	cfgPath := checkFixture(t)

	err := runCLI("check", "ex_01", "SELECT id, name FROM t",
		"--unit", "unit_a", "--config", cfgPath, "--plain")
	assert.NoError(t, err)
}

func TestCheckCommandFailingQuerySignalsExitCode(t *testing.T) {
	cfgPath := checkFixture(t)

	// The verdict is already rendered; the command reports failure
	// through the sentinel so deferred cleanup still runs before the
	// process exits.
	err := runCLI("check", "ex_01", "SELECT name, id FROM t",
		"--unit", "unit_a", "--config", cfgPath, "--plain")
	assert.ErrorIs(t, err, errVerdictFailed)
}
