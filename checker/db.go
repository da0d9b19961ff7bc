package checker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteDriverName = "sqlite3"

// OpenReadOnly connects to the practice database in read-only mode.
// Checking paths must never be able to mutate the shared dataset.
func OpenReadOnly(path string) (*sqlx.DB, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("database not found at %s: run \"sqlex init-db\" first", path)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sqlx.Connect(sqliteDriverName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// ListTables returns the user table names of the practice database in
// alphabetical order.
func ListTables(db *sqlx.DB) ([]string, error) {
	var tables []string
	query := `SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
	if err := db.Select(&tables, query); err != nil {
		return nil, err
	}
	return tables, nil
}

// TableColumn describes one column of a practice table.
type TableColumn struct {
	Name     string `db:"name"`
	Type     string `db:"type"`
	NotNull  bool   `db:"notnull"`
	Primary  bool   `db:"pk"`
	Position int    `db:"cid"`
}

// TableInfo returns a table's column layout for learner exploration.
func TableInfo(db *sqlx.DB, table string) ([]TableColumn, error) {
	if strings.ContainsAny(table, `"';`) {
		return nil, fmt.Errorf("invalid table name: %q", table)
	}
	var columns []TableColumn
	query := fmt.Sprintf(`SELECT cid, name, type, "notnull", pk FROM pragma_table_info('%s')`, table)
	if err := db.Select(&columns, query); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no such table: %s", table)
	}
	return columns, nil
}
