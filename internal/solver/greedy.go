package solver

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/schedule-engine/internal/constraint"
	"github.com/noah-isme/schedule-engine/internal/domain"
	"github.com/noah-isme/schedule-engine/internal/models"
)

// courseTypeRank orders course types for the greedy priority key: labs
// first (hardest to place, fewest compatible rooms), then lectures,
// seminars, tutorials.
var courseTypeRank = map[models.CourseType]int{
	models.CourseTypeLab:      0,
	models.CourseTypeLecture:  1,
	models.CourseTypeSeminar:  2,
	models.CourseTypeTutorial: 3,
}

// Greedy assigns each session requirement, in priority order, the
// highest-ranked still-compatible candidate from its domain. It never
// backtracks: a requirement that finds no admissible candidate is left
// unscheduled and the solver moves on, per spec.md §4.4.
type Greedy struct {
	entities domain.EntitySet
	checker  *constraint.Checker
	logger   *zap.Logger
}

// NewGreedy builds a greedy solver bound to one entity set.
func NewGreedy(entities domain.EntitySet, logger *zap.Logger) *Greedy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Greedy{entities: entities, checker: constraint.New(entities), logger: logger}
}

// Solve makes one priority-ordered pass over variables. deadline is
// honored between requirements (not mid-requirement, since a single
// requirement's candidate scan is cheap and bounded by its domain size).
func (g *Greedy) Solve(variables []models.SessionRequirement, domains map[string][]models.Triple, deadline time.Time) Result {
	ordered := g.priorityOrder(variables)

	var committed []models.ScheduleEntry
	unscheduled := 0
	for i, v := range ordered {
		if defaultClock().After(deadline) {
			unscheduled += len(ordered) - i
			break
		}
		entry, ok := g.assign(v, domains[v.ID()], committed)
		if !ok {
			unscheduled++
			continue
		}
		committed = append(committed, entry)
	}

	outcome := OutcomeComplete
	if unscheduled > 0 {
		outcome = OutcomePartial
	}
	if len(committed) == 0 && len(variables) > 0 {
		outcome = OutcomeInfeasible
	}

	sort.Slice(committed, func(i, j int) bool {
		return committed[i].SessionRequirement.ID() < committed[j].SessionRequirement.ID()
	})
	return Result{Outcome: outcome, Entries: committed}
}

// assign picks the first domain candidate (already ranked by the §4.1
// preference score) that the constraint checker admits on top of what's
// already committed.
func (g *Greedy) assign(v models.SessionRequirement, candidates []models.Triple, committed []models.ScheduleEntry) (models.ScheduleEntry, bool) {
	for _, t := range candidates {
		entry := buildEntry(v, t)
		if g.checker.Admits(committed, entry) {
			return entry, true
		}
	}
	return models.ScheduleEntry{}, false
}

// priorityOrder sorts requirements by (-credits, -enrolled_count,
// course_type_rank, course_id, session_idx), matching spec.md §4.4: the
// hardest-to-place sessions are committed first so easier ones yield the
// remaining slack.
func (g *Greedy) priorityOrder(variables []models.SessionRequirement) []models.SessionRequirement {
	ordered := make([]models.SessionRequirement, len(variables))
	copy(ordered, variables)

	sort.SliceStable(ordered, func(i, j int) bool {
		ci, okI := g.entities.Course(ordered[i].CourseID)
		cj, okJ := g.entities.Course(ordered[j].CourseID)
		if !okI || !okJ {
			return ordered[i].CourseID < ordered[j].CourseID
		}
		if ci.Credits != cj.Credits {
			return ci.Credits > cj.Credits
		}
		if ci.EnrolledCount != cj.EnrolledCount {
			return ci.EnrolledCount > cj.EnrolledCount
		}
		ri, rj := courseTypeRank[ci.CourseType], courseTypeRank[cj.CourseType]
		if ri != rj {
			return ri < rj
		}
		if ordered[i].CourseID != ordered[j].CourseID {
			return ordered[i].CourseID < ordered[j].CourseID
		}
		return ordered[i].SessionIdx < ordered[j].SessionIdx
	})
	return ordered
}
