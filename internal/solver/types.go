// Package solver implements the three solving strategies named in
// spec.md §4: a backtracking CSP solver with MRV/LCV/forward-checking, a
// priority-ordered greedy solver, and a hybrid orchestrator between them.
// spec.md §9's "dynamic dispatch across solvers" becomes the Outcome/
// Result tagged values below, dispatched through each solver's Solve.
package solver

import (
	"time"

	"github.com/noah-isme/schedule-engine/internal/models"
)

// Outcome tags what a solve attempt produced.
type Outcome string

const (
	OutcomeComplete   Outcome = "complete"
	OutcomePartial    Outcome = "partial"
	OutcomeInfeasible Outcome = "infeasible"
)

// Result is the uniform return shape of every solver in this package.
type Result struct {
	Outcome    Outcome
	Entries    []models.ScheduleEntry
	TimedOut   bool
	Backtracks int
}

// buildEntry assembles a ScheduleEntry from a requirement and the triple
// assigned to it.
func buildEntry(req models.SessionRequirement, t models.Triple) models.ScheduleEntry {
	return models.ScheduleEntry{
		SessionRequirement: req,
		CourseID:           req.CourseID,
		FacultyID:          t.FacultyID,
		ClassroomID:        t.ClassroomID,
		TimeSlot:           t.TimeSlot,
	}
}

// entriesFromAssignment renders a requirement->triple assignment as the
// ordered ScheduleEntry slice callers expect, ordered by requirement ID
// for determinism.
func entriesFromAssignment(variables []models.SessionRequirement, assigned map[string]models.Triple) []models.ScheduleEntry {
	entries := make([]models.ScheduleEntry, 0, len(assigned))
	for _, v := range variables {
		if t, ok := assigned[v.ID()]; ok {
			entries = append(entries, buildEntry(v, t))
		}
	}
	return entries
}

// clock abstracts the time source of the CSP search; NewCSP sets it to
// defaultClock, which reads time.Now. A nil clock is not substituted.
type clock func() time.Time

func defaultClock() time.Time { return time.Now() }
