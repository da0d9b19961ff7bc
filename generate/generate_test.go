package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kokko-ng/sql-exercises/checker"
	"github.com/kokko-ng/sql-exercises/solutions"
)

type fixture struct {
	db    *sqlx.DB
	store *checker.Store
	dir   string
	gen   *Generator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	db, err := sqlx.Connect("sqlite3", filepath.Join(root, "practice.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.MustExec(`CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT)`)
	db.MustExec(`INSERT INTO t (id, name) VALUES (1, 'a'), (2, 'b')`)

	solutionsDir := filepath.Join(root, "solutions")
	require.NoError(t, os.Mkdir(solutionsDir, 0o755))

	store := checker.NewStore(filepath.Join(root, "fingerprints"), zap.NewNop())
	f := &fixture{
		db:    db,
		store: store,
		dir:   solutionsDir,
		gen:   New(db, store, solutions.NewDir(solutionsDir), zap.NewNop()),
	}
	return f
}

func (f *fixture) writeManifest(t *testing.T, unit, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, unit+".yaml"), []byte(content), 0o644))
}

func TestGenerateUnit(t *testing.T) {
	f := newFixture(t)
	f.writeManifest(t, "unit_a", `exercises:
  ex_01: "SELECT id, name FROM t"
  ex_02: "SELECT id FROM t WHERE id > 99"
hints:
  ex_01:
    - Two columns only
`)

	require.NoError(t, f.gen.Unit("unit_a"))

	table := f.store.Load("unit_a")
	require.Len(t, table, 2)

	result, err := checker.Execute(f.db, "SELECT id, name FROM t")
	require.NoError(t, err)
	assert.Equal(t, checker.FingerprintOf(result), table["ex_01"].Fingerprint)
	assert.Equal(t, []string{"Two columns only"}, table["ex_01"].Hints)

	// Empty reference result still gets a fingerprint.
	assert.Equal(t, 0, table["ex_02"].RowCount)
	assert.Equal(t, []string{}, table["ex_02"].Hints)
}

func TestGenerateHaltsOnBadReferenceQuery(t *testing.T) {
	f := newFixture(t)
	f.writeManifest(t, "unit_a", `exercises:
  ex_01: "SELECT id FROM t"
  ex_02: "SELECT nope FROM missing_table"
`)

	err := f.gen.Unit("unit_a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unit_a/ex_02")

	// Nothing may be persisted for a unit with a failing reference.
	assert.NoFileExists(t, f.store.Path("unit_a"))
}

func TestGenerateUnitsDiscoversAll(t *testing.T) {
	f := newFixture(t)
	f.writeManifest(t, "unit_a", "exercises:\n  ex_01: \"SELECT id FROM t\"\n")
	f.writeManifest(t, "unit_b", "exercises:\n  ex_01: \"SELECT name FROM t\"\n")

	require.NoError(t, f.gen.Units(nil))
	assert.FileExists(t, f.store.Path("unit_a"))
	assert.FileExists(t, f.store.Path("unit_b"))
}

func TestGenerateUnitsNoneFound(t *testing.T) {
	f := newFixture(t)
	err := f.gen.Units(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no solution manifests")
}

func TestGenerateRegenerationReplacesEntry(t *testing.T) {
	f := newFixture(t)
	f.writeManifest(t, "unit_a", "exercises:\n  ex_01: \"SELECT id FROM t\"\n")
	require.NoError(t, f.gen.Unit("unit_a"))
	first := f.store.Load("unit_a")["ex_01"]

	f.writeManifest(t, "unit_a", "exercises:\n  ex_01: \"SELECT id, name FROM t\"\n")
	require.NoError(t, f.gen.Unit("unit_a"))
	second := f.store.Load("unit_a")["ex_01"]

	assert.NotEqual(t, first.Columns, second.Columns)
	assert.NotEqual(t, first.Hash, second.Hash)
}
