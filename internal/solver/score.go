package solver

import (
	"math"
	"sort"

	"github.com/noah-isme/schedule-engine/internal/domain"
	"github.com/noah-isme/schedule-engine/internal/models"
)

// OptimizationScore implements spec.md §4.7's weighted sum, with the
// three undefined terms fixed per SPEC_FULL.md's Open Question decisions.
// It lives in the solver package (rather than the engine) so the hybrid
// orchestrator can score CSP and greedy candidates itself, per spec.md
// §4.5's "selects the better of the two by a scoring function."
func OptimizationScore(entries []models.ScheduleEntry, variables []models.SessionRequirement, es domain.EntitySet, conflicts int) float64 {
	totalVariables := len(variables)
	if totalVariables == 0 {
		return 0
	}

	conflictTerm := clamp01(1 - ratio(conflicts, len(entries)))
	preferenceTerm := clamp01(preferenceHitRate(entries, es))
	unscheduledTerm := clamp01(1 - ratio(totalVariables-len(entries), totalVariables))
	capacityTerm := clamp01(capacityFit(entries, es))
	loadTerm := clamp01(loadBalance(entries))

	score := 40*conflictTerm + 20*preferenceTerm + 20*unscheduledTerm + 10*capacityTerm + 10*loadTerm
	if math.IsNaN(score) {
		return 0
	}
	return score
}

func ratio(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// preferenceHitRate is the fraction of entries whose assignment hit a
// faculty-preferred-slot or course-preferred-day bonus.
func preferenceHitRate(entries []models.ScheduleEntry, es domain.EntitySet) float64 {
	if len(entries) == 0 {
		return 0
	}
	hits := 0
	for _, e := range entries {
		faculty, facultyOK := es.FacultyMember(e.FacultyID)
		course, courseOK := es.Course(e.CourseID)
		prefersSlot := facultyOK && faculty.PrefersSlot(e.TimeSlot)
		prefersDay := false
		if courseOK {
			_, prefersDay = course.PreferredDaySet()[e.TimeSlot.Day]
		}
		if prefersSlot || prefersDay {
			hits++
		}
	}
	return float64(hits) / float64(len(entries))
}

// capacityFit rewards rooms sized close to enrollment rather than merely
// large enough.
func capacityFit(entries []models.ScheduleEntry, es domain.EntitySet) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := 0.0
	for _, e := range entries {
		course, courseOK := es.Course(e.CourseID)
		room, roomOK := es.Classroom(e.ClassroomID)
		if !courseOK || !roomOK || room.Capacity == 0 {
			continue
		}
		fit := 1 - math.Abs(float64(room.Capacity-course.EnrolledCount))/float64(room.Capacity)
		total += clamp01(fit)
	}
	return total / float64(len(entries))
}

// loadBalance is 1 minus the coefficient of variation of assigned
// faculty minutes; undefined (scored as perfectly balanced) with fewer
// than two loaded faculty — see the reconciled note on this in
// SPEC_FULL.md's Open Question decision #3.
func loadBalance(entries []models.ScheduleEntry) float64 {
	loads := make(map[string]int)
	for _, e := range entries {
		loads[e.FacultyID] += e.TimeSlot.DurationMinutes()
	}
	if len(loads) < 2 {
		return 1
	}

	values := make([]float64, 0, len(loads))
	for _, m := range loads {
		values = append(values, float64(m))
	}
	sort.Float64s(values)

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if mean == 0 {
		return 1
	}

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	stddev := math.Sqrt(variance)

	return 1 - stddev/mean
}
