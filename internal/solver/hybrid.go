package solver

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/schedule-engine/internal/analyzer"
	"github.com/noah-isme/schedule-engine/internal/domain"
	"github.com/noah-isme/schedule-engine/internal/models"
)

// Hybrid runs the CSP solver within the caller's time budget and falls
// back to the greedy solver when CSP times out or cannot complete,
// keeping whichever result scores better (spec.md §4.5).
type Hybrid struct {
	entities domain.EntitySet
	logger   *zap.Logger
}

// NewHybrid builds a hybrid solver bound to one entity set.
func NewHybrid(entities domain.EntitySet, logger *zap.Logger) *Hybrid {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hybrid{entities: entities, logger: logger}
}

// Solve tries CSP first; if it returns Complete, that result wins
// outright. Otherwise greedy runs against the full remaining budget and
// the better-scoring of the two is returned, with Used reporting which
// one was selected. Scoring is spec.md §4.5's "by the optimization score
// (§4.7)"; a tie falls back to the lexicographic assignment fingerprint
// (SPEC_FULL's Open Question decision #3).
func (h *Hybrid) Solve(variables []models.SessionRequirement, domains map[string][]models.Triple, deadline time.Time) (Result, models.SolverKind) {
	csp := NewCSP(h.entities, h.logger).Solve(variables, domains, deadline)
	if csp.Outcome == OutcomeComplete {
		return csp, models.SolverCSP
	}

	greedy := NewGreedy(h.entities, h.logger).Solve(variables, domains, deadline)

	cspScore := h.score(csp, variables)
	greedyScore := h.score(greedy, variables)
	if greedyScore > cspScore {
		return greedy, models.SolverGreedy
	}
	if cspScore > greedyScore {
		return csp, models.SolverCSP
	}
	if fingerprintLess(greedy.Entries, csp.Entries) {
		return greedy, models.SolverGreedy
	}
	return csp, models.SolverCSP
}

func (h *Hybrid) score(result Result, variables []models.SessionRequirement) float64 {
	conflicts := analyzer.Build(result.Entries).EdgeCount()
	return OptimizationScore(result.Entries, variables, h.entities, conflicts)
}

// fingerprintLess compares two candidates' entries by the lexicographic
// assignment fingerprint: the ordered list of (requirement_id, day_index,
// start_minute, classroom_id, faculty_id) tuples, earlier means smaller.
// Both slices are sorted on a copy first since entry order isn't itself
// part of the fingerprint.
func fingerprintLess(a, b []models.ScheduleEntry) bool {
	fa, fb := fingerprint(a), fingerprint(b)
	for i := 0; i < len(fa) && i < len(fb); i++ {
		if fa[i] != fb[i] {
			return fa[i] < fb[i]
		}
	}
	return len(fa) < len(fb)
}

func fingerprint(entries []models.ScheduleEntry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = fmt.Sprintf("%s|%d|%d|%s|%s",
			e.SessionRequirement.ID(), e.TimeSlot.Day.DayIndex(), int(e.TimeSlot.Start),
			e.ClassroomID, e.FacultyID)
	}
	sort.Strings(keys)
	return keys
}
