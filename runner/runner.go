// Package runner batch-evaluates every exercise of one or more units
// against the stored reference fingerprints, without an external test
// framework.
package runner

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/kokko-ng/sql-exercises/checker"
	"github.com/kokko-ng/sql-exercises/present"
	"github.com/kokko-ng/sql-exercises/solutions"
)

// Result is one exercise's outcome within a batch run.
type Result struct {
	Unit     string
	Exercise string
	Passed   bool
	Message  string
}

// Summary aggregates a whole run. OK only when every exercise passed
// and no unit failed to load.
type Summary struct {
	Results    []Result
	Passed     int
	Failed     int
	UnitErrors int
}

func (s Summary) Total() int {
	return s.Passed + s.Failed
}

func (s Summary) OK() bool {
	return s.Failed == 0 && s.UnitErrors == 0
}

type Runner struct {
	db     *sqlx.DB
	store  *checker.Store
	dir    solutions.Dir
	out    present.Presenter
	logger *zap.Logger
}

func New(db *sqlx.DB, store *checker.Store, dir solutions.Dir, out present.Presenter, logger *zap.Logger) *Runner {
	return &Runner{
		db:     db,
		store:  store,
		dir:    dir,
		out:    out,
		logger: logger,
	}
}

// Run evaluates one unit, or every discoverable unit when unitID is
// empty. A unit whose manifest or reference table is missing is
// reported and contributes zero results; the run itself continues.
func (r *Runner) Run(unitID string) (Summary, error) {
	units := []string{unitID}
	if unitID == "" {
		discovered, err := r.dir.List()
		if err != nil {
			return Summary{}, err
		}
		if len(discovered) == 0 {
			return Summary{}, fmt.Errorf("no solution manifests found")
		}
		units = discovered
	}

	var summary Summary
	for _, unit := range units {
		r.runUnit(unit, &summary)
	}

	r.out.Summary(summary.Passed, summary.Failed, summary.Total())
	return summary, nil
}

func (r *Runner) runUnit(unitID string, summary *Summary) {
	unit, err := r.dir.Load(unitID)
	if err != nil {
		summary.UnitErrors++
		r.out.UnitError(unitID, err)
		return
	}

	refs := r.store.Load(unitID)
	if len(refs) == 0 {
		summary.UnitErrors++
		r.out.UnitError(unitID, fmt.Errorf(
			"no reference fingerprints at %s: run \"sqlex generate %s\" first",
			r.store.Path(unitID), unitID,
		))
		return
	}

	c := checker.New(unitID, r.db, refs, r.logger)
	for _, exercise := range unit.ExerciseIDs() {
		verdict := c.Check(exercise, unit.Exercises[exercise])
		result := Result{
			Unit:     unitID,
			Exercise: exercise,
			Passed:   verdict.Passed,
			Message:  describe(verdict),
		}
		summary.Results = append(summary.Results, result)
		if result.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		r.out.ExerciseResult(unitID, exercise, result.Passed, result.Message)
	}
}

func describe(v checker.Verdict) string {
	if v.Passed {
		return fmt.Sprintf("ok (%d rows)", v.Actual.RowCount)
	}
	if len(v.Details) > 0 {
		return fmt.Sprintf("%s: %s", v.Kind, v.Details[0])
	}
	return v.Kind.String()
}
