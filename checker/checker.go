package checker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// maxDetailLines caps diagnostics before an exercise hint is considered.
const maxDetailLines = 3

// Checker validates candidate queries for one unit against that unit's
// reference table. It owns no global state: callers construct one per
// unit and independent sessions never interact.
type Checker struct {
	unit   string
	db     *sqlx.DB
	refs   ReferenceTable
	logger *zap.Logger
}

func New(unit string, db *sqlx.DB, refs ReferenceTable, logger *zap.Logger) *Checker {
	return &Checker{
		unit:   unit,
		db:     db,
		refs:   refs,
		logger: logger,
	}
}

func (c *Checker) Unit() string {
	return c.unit
}

// Hints returns the stored hints for an exercise without executing
// anything or exposing the reference fingerprint.
func (c *Checker) Hints(exercise string) []string {
	entry, ok := c.refs[exercise]
	if !ok {
		return nil
	}
	return entry.Hints
}

// Check evaluates one candidate query. Every failure mode is encoded in
// the returned Verdict; Check itself never fails.
func (c *Checker) Check(exercise, query string) Verdict {
	if strings.TrimSpace(query) == "" {
		return Verdict{
			Exercise: exercise,
			Kind:     EmptyQuery,
			Details: []string{
				fmt.Sprintf("Empty query for '%s'. Write your SQL query and try again.", exercise),
			},
		}
	}

	entry, ok := c.refs[exercise]
	if !ok {
		return Verdict{
			Exercise: exercise,
			Kind:     NoReference,
			Details: []string{
				fmt.Sprintf("No expected result found for '%s'. This exercise may not be set up yet.", exercise),
			},
		}
	}
	expected := entry.Fingerprint

	result, err := Execute(c.db, query)
	if err != nil {
		// The message describes the student's own query, never reference
		// data, so it is safe to surface verbatim.
		return Verdict{
			Exercise: exercise,
			Kind:     ExecutionError,
			Expected: &expected,
			Details:  []string{fmt.Sprintf("SQL Error: %s", err)},
		}
	}

	actual, fallback := fingerprintResult(result)
	if fallback {
		c.logger.Debug(
			"column values not mutually comparable, sorted by string representation",
			zap.String("unit", c.unit),
			zap.String("exercise", exercise),
		)
	}

	verdict := c.compare(exercise, actual, expected)
	if !verdict.Passed && len(verdict.Details) < maxDetailLines && len(entry.Hints) > 0 {
		verdict.Details = append(verdict.Details, "Tip: "+entry.Hints[0])
	}
	return verdict
}

// compare diagnoses in pipeline order: columns, then row count, then
// values. An earlier mismatch makes the later diagnostics meaningless,
// so comparison short-circuits at the first difference.
func (c *Checker) compare(exercise string, actual, expected Fingerprint) Verdict {
	verdict := Verdict{
		Exercise: exercise,
		Actual:   &actual,
		Expected: &expected,
	}

	switch {
	case !actual.SameShape(expected):
		verdict.Kind = ColumnMismatch
		verdict.Details = diagnoseColumns(actual.Columns, expected.Columns)
	case actual.RowCount != expected.RowCount:
		verdict.Kind = RowCountMismatch
		verdict.Details = diagnoseRowCount(actual.RowCount, expected.RowCount)
	case actual.Hash != expected.Hash:
		verdict.Kind = ValueMismatch
		verdict.Details = []string{
			"Row count and columns match, but values differ. Check your calculations, joins, or sorting.",
		}
	default:
		verdict.Kind = None
		verdict.Passed = true
	}

	return verdict
}

func diagnoseColumns(actual, expected []string) []string {
	if sameColumnMultiset(actual, expected) {
		return []string{
			fmt.Sprintf("Columns are correct but in wrong order. Expected order: %s",
				formatColumns(expected)),
		}
	}

	missing := columnSetDifference(expected, actual)
	extra := columnSetDifference(actual, expected)

	var details []string
	if len(missing) > 0 {
		details = append(details, "Missing columns: "+formatColumns(missing))
	}
	if len(extra) > 0 {
		details = append(details, "Extra columns not expected: "+formatColumns(extra))
	}
	if len(details) == 0 {
		details = append(details, "Expected columns: "+formatColumns(expected))
	}
	return details
}

func diagnoseRowCount(actual, expected int) []string {
	if actual > expected {
		return []string{
			fmt.Sprintf("Too many rows. Expected %d, got %d. Check your WHERE conditions.",
				expected, actual),
		}
	}
	return []string{
		fmt.Sprintf("Too few rows. Expected %d, got %d. Your filter may be too restrictive.",
			expected, actual),
	}
}

// sameColumnMultiset compares names with their multiplicities, so a
// duplicated column is never mistaken for a mere ordering problem.
func sameColumnMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, name := range a {
		counts[name]++
	}
	for _, name := range b {
		counts[name]--
		if counts[name] < 0 {
			return false
		}
	}
	return true
}

// columnSetDifference returns the names in a that are absent from b,
// sorted for stable messages.
func columnSetDifference(a, b []string) []string {
	present := make(map[string]bool, len(b))
	for _, name := range b {
		present[name] = true
	}
	seen := make(map[string]bool, len(a))
	var diff []string
	for _, name := range a {
		if !present[name] && !seen[name] {
			diff = append(diff, name)
			seen[name] = true
		}
	}
	sort.Strings(diff)
	return diff
}

func formatColumns(columns []string) string {
	return "[" + strings.Join(columns, ", ") + "]"
}
