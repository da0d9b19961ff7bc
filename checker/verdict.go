package checker

// MismatchKind classifies the outcome of one check.
type MismatchKind int

const (
	None MismatchKind = iota
	EmptyQuery
	NoReference
	ExecutionError
	ColumnMismatch
	RowCountMismatch
	ValueMismatch
)

func (k MismatchKind) String() string {
	switch k {
	case None:
		return "NONE"
	case EmptyQuery:
		return "EMPTY_QUERY"
	case NoReference:
		return "NO_REFERENCE"
	case ExecutionError:
		return "EXECUTION_ERROR"
	case ColumnMismatch:
		return "COLUMN_MISMATCH"
	case RowCountMismatch:
		return "ROW_COUNT_MISMATCH"
	case ValueMismatch:
		return "VALUE_MISMATCH"
	}
	return "UNKNOWN"
}

// Verdict is the structured result of checking one candidate query.
// It carries shape deltas and directional hints only, never reference
// query text or reference data values.
type Verdict struct {
	Exercise string
	Passed   bool
	Kind     MismatchKind
	Actual   *Fingerprint
	Expected *Fingerprint
	Details  []string
}
