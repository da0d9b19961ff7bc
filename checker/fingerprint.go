package checker

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// hashLength is the number of hex characters kept from the SHA-256 digest.
const hashLength = 16

// emptySentinel is hashed in place of row data for zero-row results, so
// every empty result has the same content hash regardless of schema.
const emptySentinel = "empty"

// Fingerprint is the canonical identity of a query result: a digest of
// the row multiset plus shape metadata. Column order is significant,
// row order is not.
type Fingerprint struct {
	Hash        string   `json:"hash"`
	RowCount    int      `json:"row_count"`
	ColumnCount int      `json:"column_count"`
	Columns     []string `json:"columns"`
}

// FingerprintOf computes the canonical fingerprint of a result.
func FingerprintOf(result *TabularResult) Fingerprint {
	fp, _ := fingerprintResult(result)
	return fp
}

// fingerprintResult additionally reports whether row ordering fell back
// to string comparison because a column held mutually incomparable values.
func fingerprintResult(result *TabularResult) (Fingerprint, bool) {
	fp := Fingerprint{
		RowCount:    result.RowCount(),
		ColumnCount: result.ColumnCount(),
		Columns:     append([]string(nil), result.Columns...),
	}

	if result.RowCount() == 0 {
		fp.Hash = shortDigest([]byte(emptySentinel))
		return fp, false
	}

	rendered := make([][]string, len(result.Rows))
	fallback := !columnsComparable(result.Rows)
	if fallback {
		// Heterogeneous column: sort by string representation instead,
		// mirroring the coarser ordering the natural sort cannot provide.
		for i, row := range result.Rows {
			rendered[i] = renderRow(row)
		}
		sort.SliceStable(rendered, func(i, j int) bool {
			return lessStringRows(rendered[i], rendered[j])
		})
	} else {
		rows := make([][]any, len(result.Rows))
		copy(rows, result.Rows)
		sort.SliceStable(rows, func(i, j int) bool {
			return lessRows(rows[i], rows[j])
		})
		for i, row := range rows {
			rendered[i] = renderRow(row)
		}
	}

	fp.Hash = shortDigest(serializeRows(result.Columns, rendered))
	return fp, fallback
}

// SameShape reports whether two fingerprints agree on column names and order.
func (f Fingerprint) SameShape(other Fingerprint) bool {
	if len(f.Columns) != len(other.Columns) {
		return false
	}
	for i := range f.Columns {
		if f.Columns[i] != other.Columns[i] {
			return false
		}
	}
	return true
}

func shortDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:hashLength]
}

// serializeRows produces the canonical flat text form: a CSV header of
// column names followed by one line per sorted row.
func serializeRows(columns []string, rows [][]string) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(columns)
	for _, row := range rows {
		_ = w.Write(row)
	}
	w.Flush()
	return buf.Bytes()
}

type valueKind int

const (
	kindNull valueKind = iota
	kindNumber
	kindBool
	kindString
	kindTime
	kindOther
)

func kindOf(v any) valueKind {
	switch v.(type) {
	case nil:
		return kindNull
	case int64, float64:
		return kindNumber
	case bool:
		return kindBool
	case string:
		return kindString
	case time.Time:
		return kindTime
	default:
		return kindOther
	}
}

// columnsComparable reports whether every column holds values of a single
// kind (nulls aside), so the type-natural ordering is total.
func columnsComparable(rows [][]any) bool {
	if len(rows) == 0 {
		return true
	}
	for col := range rows[0] {
		seen := kindNull
		for _, row := range rows {
			k := kindOf(row[col])
			if k == kindNull {
				continue
			}
			if k == kindOther {
				return false
			}
			if seen == kindNull {
				seen = k
				continue
			}
			if k != seen {
				return false
			}
		}
	}
	return true
}

// lessRows orders rows lexicographically over all columns, left to right,
// with null as the minimum value in every column.
func lessRows(a, b []any) bool {
	for i := range a {
		if c := compareValues(a[i], b[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

func lessStringRows(a, b []string) bool {
	for i := range a {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

// compareValues assumes both values are null or of the same kind, which
// columnsComparable has already established.
func compareValues(a, b any) int {
	aNull, bNull := a == nil, b == nil
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return -1
	case bNull:
		return 1
	}

	switch av := a.(type) {
	case int64:
		if bv, ok := b.(int64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
		return compareFloats(float64(av), toFloat(b))
	case float64:
		return compareFloats(av, toFloat(b))
	case bool:
		bv := b.(bool)
		switch {
		case !av && bv:
			return -1
		case av && !bv:
			return 1
		}
		return 0
	case string:
		return strings.Compare(av, b.(string))
	case time.Time:
		bv := b.(time.Time)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	}
	return 0
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case int64:
		return float64(t)
	case float64:
		return t
	}
	return 0
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func renderRow(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = renderValue(v)
	}
	return out
}

// renderValue is the stable textual representation used both for the
// canonical serialization and for the string-ordering fallback. Null
// renders as the empty string.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	case time.Time:
		return t.UTC().Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", t)
	}
}
