package present

import (
	"github.com/pterm/pterm"

	"github.com/kokko-ng/sql-exercises/checker"
)

// Rich renders verdicts with pterm styling for interactive terminals.
type Rich struct{}

func NewRich() *Rich {
	return &Rich{}
}

func (r *Rich) Verdict(v checker.Verdict) {
	switch {
	case v.Passed:
		pterm.Success.Printfln("%s: query returned %d row(s) with correct results.",
			v.Exercise, v.Actual.RowCount)
	case v.Kind == checker.NoReference:
		r.Warning(firstDetail(v))
	case v.Kind == checker.EmptyQuery || v.Kind == checker.ExecutionError:
		pterm.Error.Println(firstDetail(v))
	default:
		pterm.Error.Println(v.Exercise)
		renderBullets(v.Details)
	}
}

func (r *Rich) Hints(exercise string, hints []string) {
	if len(hints) == 0 {
		r.Warning("No hints available for '" + exercise + "'")
		return
	}
	pterm.Info.Printfln("HINT for %s:", exercise)
	renderBullets(hints)
}

func (r *Rich) Warning(message string) {
	pterm.Warning.Println(message)
}

func (r *Rich) ExerciseResult(unit, exercise string, passed bool, message string) {
	line := pterm.Sprintf("%s/%s: %s", unit, exercise, message)
	if passed {
		pterm.Success.Println(line)
	} else {
		pterm.Error.Println(line)
	}
}

func (r *Rich) UnitError(unit string, err error) {
	pterm.Error.Printfln("%s: %s", unit, err)
}

func (r *Rich) Summary(passed, failed, total int) {
	pterm.Println()
	if failed == 0 {
		pterm.Success.Printfln("%d passed, %d failed, %d total", passed, failed, total)
	} else {
		pterm.Error.Printfln("%d passed, %d failed, %d total", passed, failed, total)
	}
}

func renderBullets(lines []string) {
	items := make([]pterm.BulletListItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, pterm.BulletListItem{Level: 0, Text: line})
	}
	_ = pterm.DefaultBulletList.WithItems(items).Render()
}
