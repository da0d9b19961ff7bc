package checker

import (
	"time"

	"github.com/jmoiron/sqlx"
)

// TabularResult is one materialized query result: column names in the
// order the engine returned them, and row-major scalar values.
type TabularResult struct {
	Columns []string
	Rows    [][]any
}

func (r *TabularResult) RowCount() int {
	return len(r.Rows)
}

func (r *TabularResult) ColumnCount() int {
	return len(r.Columns)
}

// Execute runs a query and materializes its full result set.
func Execute(db *sqlx.DB, query string) (*TabularResult, error) {
	rows, err := db.Queryx(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return Capture(rows)
}

// Capture drains an open row cursor into a TabularResult.
func Capture(rows *sqlx.Rows) (*TabularResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &TabularResult{Columns: columns}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = normalizeValue(v)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// normalizeValue maps driver-specific scan types onto the fixed scalar
// domain the fingerprint understands: nil, int64, float64, bool, string
// and time.Time.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(t)
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case int64, float64, bool, string, time.Time:
		return t
	case float32:
		return float64(t)
	default:
		return t
	}
}
