// Package present renders verdicts and hints for learners. Two channels
// exist: a rich terminal renderer and a plain-text fallback for
// non-interactive output. Neither reveals reference queries or data.
package present

import (
	"fmt"
	"io"
	"os"

	"github.com/kokko-ng/sql-exercises/checker"
)

// Presenter is the human-facing side of the checking flow.
type Presenter interface {
	// Verdict renders the outcome of one check.
	Verdict(v checker.Verdict)
	// Hints renders an exercise's hint list, or a notice when none exist.
	Hints(exercise string, hints []string)
	// Warning renders a setup problem that is not the student's fault.
	Warning(message string)

	// ExerciseResult renders one line of a batch run.
	ExerciseResult(unit, exercise string, passed bool, message string)
	// UnitError renders a unit-level failure of a batch run.
	UnitError(unit string, err error)
	// Summary renders the final passed/failed/total tally.
	Summary(passed, failed, total int)
}

// New picks the presentation channel: the rich renderer when out is an
// interactive terminal, the plain renderer otherwise or when forced.
func New(out *os.File, plain bool) Presenter {
	if plain || !isTerminal(out) {
		return NewPlain(out)
	}
	return NewRich()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Plain renders single-line notices suitable for logs and pipes.
type Plain struct {
	out io.Writer
}

func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

func (p *Plain) Verdict(v checker.Verdict) {
	switch {
	case v.Passed:
		fmt.Fprintf(p.out, "PASS %s: query returned %d row(s) with correct results.\n",
			v.Exercise, v.Actual.RowCount)
	case v.Kind == checker.NoReference:
		p.Warning(firstDetail(v))
	case v.Kind == checker.EmptyQuery || v.Kind == checker.ExecutionError:
		fmt.Fprintf(p.out, "ERROR: %s\n", firstDetail(v))
	default:
		fmt.Fprintf(p.out, "FAIL %s\n", v.Exercise)
		for _, detail := range v.Details {
			fmt.Fprintf(p.out, "  - %s\n", detail)
		}
	}
}

func (p *Plain) Hints(exercise string, hints []string) {
	if len(hints) == 0 {
		p.Warning(fmt.Sprintf("No hints available for '%s'", exercise))
		return
	}
	fmt.Fprintf(p.out, "HINT for %s:\n", exercise)
	for _, hint := range hints {
		fmt.Fprintf(p.out, "  - %s\n", hint)
	}
}

func (p *Plain) Warning(message string) {
	fmt.Fprintf(p.out, "WARNING: %s\n", message)
}

func (p *Plain) ExerciseResult(unit, exercise string, passed bool, message string) {
	status := "FAIL"
	if passed {
		status = "PASS"
	}
	fmt.Fprintf(p.out, "%s %s/%s: %s\n", status, unit, exercise, message)
}

func (p *Plain) UnitError(unit string, err error) {
	fmt.Fprintf(p.out, "ERROR %s: %s\n", unit, err)
}

func (p *Plain) Summary(passed, failed, total int) {
	fmt.Fprintf(p.out, "%d passed, %d failed, %d total\n", passed, failed, total)
}

func firstDetail(v checker.Verdict) string {
	if len(v.Details) == 0 {
		return v.Kind.String()
	}
	return v.Details[0]
}
