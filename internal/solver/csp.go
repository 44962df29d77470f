package solver

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/schedule-engine/internal/constraint"
	"github.com/noah-isme/schedule-engine/internal/domain"
	"github.com/noah-isme/schedule-engine/internal/models"
)

// CSP is a backtracking constraint solver over session-requirement
// variables: MRV variable ordering, LCV value ordering, and forward
// checking, per spec.md §4.3.
type CSP struct {
	entities domain.EntitySet
	checker  *constraint.Checker
	logger   *zap.Logger
	now      clock
}

// NewCSP builds a CSP solver bound to one entity set.
func NewCSP(entities domain.EntitySet, logger *zap.Logger) *CSP {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSP{entities: entities, checker: constraint.New(entities), logger: logger, now: defaultClock}
}

// Solve runs backtracking search against domains until either a complete
// assignment is found, the domain of some variable is found empty
// (Infeasible), or deadline passes (Partial, TimedOut=true).
func (c *CSP) Solve(variables []models.SessionRequirement, domains map[string][]models.Triple, deadline time.Time) Result {
	if len(variables) == 0 {
		return Result{Outcome: OutcomeComplete}
	}
	for _, v := range variables {
		if len(domains[v.ID()]) == 0 {
			return Result{Outcome: OutcomeInfeasible}
		}
	}

	live := make(map[string][]models.Triple, len(domains))
	for k, v := range domains {
		cp := make([]models.Triple, len(v))
		copy(cp, v)
		live[k] = cp
	}

	s := &cspSearch{
		entities:  c.entities,
		checker:   c.checker,
		variables: variables,
		deadline:  deadline,
		now:       c.now,
		logger:    c.logger,
		bestCount: -1,
	}
	assigned := make(map[string]models.Triple, len(variables))
	complete, timedOut := s.backtrack(assigned, live)

	if complete {
		return Result{Outcome: OutcomeComplete, Entries: entriesFromAssignment(variables, assigned), Backtracks: s.backtracks}
	}
	if timedOut {
		best := s.bestAssigned
		if best == nil {
			best = assigned
		}
		return Result{
			Outcome:    OutcomePartial,
			Entries:    entriesFromAssignment(variables, best),
			TimedOut:   true,
			Backtracks: s.backtracks,
		}
	}
	// Search space exhausted without a deadline: report the best partial
	// assignment found, matching the Partial outcome's shape. A fully
	// exhausted search with no assignment at all falls back to empty.
	best := s.bestAssigned
	return Result{Outcome: OutcomePartial, Entries: entriesFromAssignment(variables, best), Backtracks: s.backtracks}
}

// cspSearch carries one search's mutable state. It is owned exclusively
// by this call's stack frames (spec.md §5) and never escapes Solve.
type cspSearch struct {
	entities  domain.EntitySet
	checker   *constraint.Checker
	variables []models.SessionRequirement
	deadline  time.Time
	now       clock
	logger    *zap.Logger

	backtracks   int
	bestAssigned map[string]models.Triple
	bestCount    int
}

func (s *cspSearch) backtrack(assigned map[string]models.Triple, live map[string][]models.Triple) (complete bool, timedOut bool) {
	if s.now().After(s.deadline) {
		s.logger.Debug("csp_deadline_hit", zap.Int("assigned", len(assigned)))
		s.recordBest(assigned)
		return false, true
	}
	if len(assigned) == len(s.variables) {
		s.recordBest(assigned)
		return true, false
	}

	v, ok := s.selectVariable(assigned, live)
	if !ok {
		return false, false
	}
	s.logger.Debug("csp_variable_picked", zap.String("requirement", v.ID()), zap.Int("live_values", len(live[v.ID()])))
	candidates := s.orderValues(v, live)

	for _, t := range candidates {
		entry := buildEntry(v, t)
		committed := entriesFromAssignment(s.variables, assigned)
		if !s.checker.Admits(committed, entry) {
			continue
		}

		assigned[v.ID()] = t
		s.recordBest(assigned)
		removed := forwardCheck(v, t, s.entities, assigned, live)

		complete, timedOut := s.backtrack(assigned, live)
		if complete || timedOut {
			return complete, timedOut
		}

		restoreForwardCheck(removed, live)
		delete(assigned, v.ID())
		s.backtracks++
		s.logger.Debug("csp_backtrack", zap.String("requirement", v.ID()))
	}
	return false, false
}

func (s *cspSearch) recordBest(assigned map[string]models.Triple) {
	if len(assigned) <= s.bestCount {
		return
	}
	s.bestCount = len(assigned)
	cp := make(map[string]models.Triple, len(assigned))
	for k, v := range assigned {
		cp[k] = v
	}
	s.bestAssigned = cp
}

// selectVariable implements MRV with a degree tiebreak: fewest live
// values first, then most shared-resource neighbors, then course_id then
// session_index ascending for full determinism.
func (s *cspSearch) selectVariable(assigned map[string]models.Triple, live map[string][]models.Triple) (models.SessionRequirement, bool) {
	var unassigned []models.SessionRequirement
	for _, v := range s.variables {
		if _, done := assigned[v.ID()]; !done {
			unassigned = append(unassigned, v)
		}
	}
	if len(unassigned) == 0 {
		return models.SessionRequirement{}, false
	}

	sort.Slice(unassigned, func(i, j int) bool {
		di, dj := len(live[unassigned[i].ID()]), len(live[unassigned[j].ID()])
		if di != dj {
			return di < dj
		}
		degI := s.degree(unassigned[i], unassigned, live)
		degJ := s.degree(unassigned[j], unassigned, live)
		if degI != degJ {
			return degI > degJ
		}
		if unassigned[i].CourseID != unassigned[j].CourseID {
			return unassigned[i].CourseID < unassigned[j].CourseID
		}
		return unassigned[i].SessionIdx < unassigned[j].SessionIdx
	})
	return unassigned[0], true
}

// degree counts other unassigned variables whose live domain shares a
// room or faculty resource with v's live domain.
func (s *cspSearch) degree(v models.SessionRequirement, unassigned []models.SessionRequirement, live map[string][]models.Triple) int {
	resources := make(map[string]struct{})
	for _, t := range live[v.ID()] {
		resources[roomKey(t.ClassroomID)] = struct{}{}
		resources[facultyKey(t.FacultyID)] = struct{}{}
	}
	count := 0
	for _, u := range unassigned {
		if u.ID() == v.ID() {
			continue
		}
		for _, t := range live[u.ID()] {
			_, byRoom := resources[roomKey(t.ClassroomID)]
			_, byFaculty := resources[facultyKey(t.FacultyID)]
			if byRoom || byFaculty {
				count++
				break
			}
		}
	}
	return count
}

// orderValues implements LCV: ascending by the number of values the
// candidate would eliminate from other unassigned variables' domains.
func (s *cspSearch) orderValues(v models.SessionRequirement, live map[string][]models.Triple) []models.Triple {
	candidates := make([]models.Triple, len(live[v.ID()]))
	copy(candidates, live[v.ID()])

	eliminated := make([]int, len(candidates))
	for i, t := range candidates {
		eliminated[i] = s.countEliminations(v, t, live)
	}

	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return eliminated[idx[i]] < eliminated[idx[j]]
	})

	ordered := make([]models.Triple, len(candidates))
	for i, k := range idx {
		ordered[i] = candidates[k]
	}
	return ordered
}

func (s *cspSearch) countEliminations(v models.SessionRequirement, t models.Triple, live map[string][]models.Triple) int {
	count := 0
	for _, u := range s.variables {
		if u.ID() == v.ID() {
			continue
		}
		for _, other := range live[u.ID()] {
			if conflictsWith(t, other) {
				count++
			}
		}
	}
	return count
}

// forwardCheck applies spec.md §4.3's pruning rule after v<-t: remove from
// every other unassigned domain any triple that overlaps t on the same
// resource, or that would push the assigned faculty over their weekly
// cap. Removed values are returned keyed by requirement ID so the caller
// can restore them on backtrack.
func forwardCheck(v models.SessionRequirement, t models.Triple, entities domain.EntitySet, assigned map[string]models.Triple, live map[string][]models.Triple) map[string][]models.Triple {
	removed := make(map[string][]models.Triple)
	faculty, _ := entities.FacultyMember(t.FacultyID)
	usedMinutes := assignedMinutesFor(entities, assigned, t.FacultyID)

	for reqID, candidates := range live {
		if reqID == v.ID() {
			continue
		}
		var kept, gone []models.Triple
		for _, cand := range candidates {
			remove := conflictsWith(t, cand)
			if !remove && cand.FacultyID == t.FacultyID && faculty.MaxHoursPerWeek > 0 {
				if usedMinutes+cand.TimeSlot.DurationMinutes() > faculty.MaxMinutesPerWeek() {
					remove = true
				}
			}
			if remove {
				gone = append(gone, cand)
			} else {
				kept = append(kept, cand)
			}
		}
		if len(gone) > 0 {
			live[reqID] = kept
			removed[reqID] = gone
		}
	}
	return removed
}

func restoreForwardCheck(removed map[string][]models.Triple, live map[string][]models.Triple) {
	for reqID, gone := range removed {
		live[reqID] = append(live[reqID], gone...)
	}
}

func assignedMinutesFor(entities domain.EntitySet, assigned map[string]models.Triple, facultyID string) int {
	total := 0
	for _, t := range assigned {
		if t.FacultyID == facultyID {
			total += t.TimeSlot.DurationMinutes()
		}
	}
	return total
}

// conflictsWith is the forward-checking removal test: same overlapping
// time slot and a shared room or faculty.
func conflictsWith(a, b models.Triple) bool {
	if !a.TimeSlot.Overlaps(b.TimeSlot) {
		return false
	}
	return a.ClassroomID == b.ClassroomID || a.FacultyID == b.FacultyID
}

func roomKey(id string) string    { return "room:" + id }
func facultyKey(id string) string { return "faculty:" + id }
