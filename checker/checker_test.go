package checker

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.MustExec(`CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT, salary INTEGER)`)
	db.MustExec(`INSERT INTO t (id, name, salary) VALUES
		(1, 'Ada', 120000),
		(2, 'Grace', 130000),
		(3, 'Edsger', 110000)`)
	return db
}

// referenceFor builds a reference entry the same way the generator does.
func referenceFor(t *testing.T, db *sqlx.DB, query string, hints ...string) ReferenceEntry {
	t.Helper()
	result, err := Execute(db, query)
	require.NoError(t, err)
	return ReferenceEntry{Fingerprint: FingerprintOf(result), Hints: hints}
}

func newTestChecker(t *testing.T, db *sqlx.DB, refs ReferenceTable) *Checker {
	t.Helper()
	return New("01_select_basics", db, refs, zap.NewNop())
}

func TestCheckPass(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id, name FROM t ORDER BY id"),
	}
	c := newTestChecker(t, db, refs)

	// Same data, different physical row order.
	v := c.Check("ex_01", "SELECT id, name FROM t ORDER BY name")
	assert.True(t, v.Passed)
	assert.Equal(t, None, v.Kind)
	assert.Equal(t, 3, v.Actual.RowCount)
}

func TestCheckColumnOrderMismatch(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id, name FROM t ORDER BY id"),
	}
	c := newTestChecker(t, db, refs)

	v := c.Check("ex_01", "SELECT name, id FROM t")
	assert.False(t, v.Passed)
	assert.Equal(t, ColumnMismatch, v.Kind)
	require.NotEmpty(t, v.Details)
	assert.Contains(t, v.Details[0], "wrong order")
	assert.Contains(t, v.Details[0], "[id, name]")
}

func TestCheckMissingAndExtraColumns(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id, name FROM t"),
	}
	c := newTestChecker(t, db, refs)

	v := c.Check("ex_01", "SELECT id, salary FROM t")
	assert.Equal(t, ColumnMismatch, v.Kind)
	require.Len(t, v.Details, 2)
	assert.Contains(t, v.Details[0], "Missing columns: [name]")
	assert.Contains(t, v.Details[1], "Extra columns not expected: [salary]")
}

func TestCheckDuplicatedColumnIsNotWrongOrder(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id FROM t"),
	}
	c := newTestChecker(t, db, refs)

	// Same name set as the reference, but one column selected twice.
	v := c.Check("ex_01", "SELECT id, id FROM t")
	assert.Equal(t, ColumnMismatch, v.Kind)
	require.NotEmpty(t, v.Details)
	assert.NotContains(t, v.Details[0], "wrong order")
	assert.Contains(t, v.Details[0], "Expected columns: [id]")
}

func TestCheckRowCountMismatch(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id, name FROM t"),
	}
	c := newTestChecker(t, db, refs)

	v := c.Check("ex_01", "SELECT id, name FROM t WHERE salary > 125000")
	assert.False(t, v.Passed)
	assert.Equal(t, RowCountMismatch, v.Kind)
	require.NotEmpty(t, v.Details)
	assert.Contains(t, v.Details[0], "Too few rows")
	assert.Contains(t, v.Details[0], "Expected 3, got 1")

	v = c.Check("ex_01", "SELECT a.id, a.name FROM t a, t b")
	assert.Equal(t, RowCountMismatch, v.Kind)
	assert.Contains(t, v.Details[0], "Too many rows")
}

func TestCheckValueMismatch(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id, name FROM t"),
	}
	c := newTestChecker(t, db, refs)

	v := c.Check("ex_01", "SELECT id, upper(name) AS name FROM t")
	assert.False(t, v.Passed)
	assert.Equal(t, ValueMismatch, v.Kind)
	assert.Contains(t, v.Details[0], "values differ")
}

func TestCheckDiagnosisPriority(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id, name FROM t"),
	}
	c := newTestChecker(t, db, refs)

	// Columns, row count and values all wrong: the verdict must report
	// the column mismatch alone.
	v := c.Check("ex_01", "SELECT salary FROM t WHERE id = 1")
	assert.Equal(t, ColumnMismatch, v.Kind)
}

func TestCheckEmptyQuerySkipsExecution(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id FROM t"),
	}
	c := newTestChecker(t, db, refs)

	// A closed connection would turn any execution attempt into an
	// execution error, so EmptyQuery proves nothing ran.
	require.NoError(t, db.Close())

	v := c.Check("ex_01", "   \n\t  ")
	assert.False(t, v.Passed)
	assert.Equal(t, EmptyQuery, v.Kind)
	assert.Contains(t, v.Details[0], "Empty query for 'ex_01'")
}

func TestCheckNoReference(t *testing.T) {
	db := newTestDB(t)
	c := newTestChecker(t, db, ReferenceTable{})

	v := c.Check("ex_99", "SELECT 1")
	assert.False(t, v.Passed)
	assert.Equal(t, NoReference, v.Kind)
	assert.Contains(t, v.Details[0], "ex_99")
}

func TestCheckExecutionError(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id FROM t"),
	}
	c := newTestChecker(t, db, refs)

	v := c.Check("ex_01", "SELEC id FROM t")
	assert.False(t, v.Passed)
	assert.Equal(t, ExecutionError, v.Kind)
	require.NotEmpty(t, v.Details)
	assert.True(t, strings.HasPrefix(v.Details[0], "SQL Error: "))
}

func TestCheckAppendsExerciseHint(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id, name FROM t",
			"Select only two columns", "Order does not matter"),
	}
	c := newTestChecker(t, db, refs)

	v := c.Check("ex_01", "SELECT id FROM t")
	require.NotEmpty(t, v.Details)
	last := v.Details[len(v.Details)-1]
	assert.Equal(t, "Tip: Select only two columns", last)

	// Passing checks never carry hints.
	v = c.Check("ex_01", "SELECT id, name FROM t")
	assert.True(t, v.Passed)
	assert.Empty(t, v.Details)
}

func TestHints(t *testing.T) {
	db := newTestDB(t)
	refs := ReferenceTable{
		"ex_01": referenceFor(t, db, "SELECT id FROM t", "hint one"),
	}
	c := newTestChecker(t, db, refs)

	assert.Equal(t, []string{"hint one"}, c.Hints("ex_01"))
	assert.Nil(t, c.Hints("ex_02"))
}

func TestListTablesAndTableInfo(t *testing.T) {
	db := newTestDB(t)

	tables, err := ListTables(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"t"}, tables)

	columns, err := TableInfo(db, "t")
	require.NoError(t, err)
	require.Len(t, columns, 3)
	assert.Equal(t, "id", columns[0].Name)
	assert.True(t, columns[0].Primary)

	_, err = TableInfo(db, "missing")
	assert.Error(t, err)
}

func TestOpenReadOnlyRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.db")
	db, err := sqlx.Connect("sqlite3", path)
	require.NoError(t, err)
	db.MustExec(`CREATE TABLE t (id INTEGER)`)
	require.NoError(t, db.Close())

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	_, err = ro.Exec(`INSERT INTO t (id) VALUES (1)`)
	assert.Error(t, err)

	result, err := Execute(ro, "SELECT id FROM t")
	require.NoError(t, err)
	assert.Equal(t, 0, result.RowCount())
}

func TestOpenReadOnlyMissingFile(t *testing.T) {
	_, err := OpenReadOnly(filepath.Join(t.TempDir(), "absent.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init-db")
}
