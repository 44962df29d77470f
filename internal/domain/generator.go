package domain

import (
	"fmt"
	"sort"

	"github.com/noah-isme/schedule-engine/internal/models"
)

// EmptyDomainError reports that a session requirement has no feasible
// triple even in isolation (spec.md §7 empty-domain errors).
type EmptyDomainError struct {
	Requirement models.SessionRequirement
	CourseID    string
}

func (e *EmptyDomainError) Error() string {
	return fmt.Sprintf("empty_domain:%s", e.CourseID)
}

// candidate pairs a triple with its static preference score for ranking
// before the stable-tiebreak sort.
type candidate struct {
	triple models.Triple
	score  int
}

// BuildDomains computes, for every SessionRequirement in es, the ranked
// list of feasible triples per spec.md §4.1. The returned error is the
// first EmptyDomainError encountered, in requirement order, matching the
// spec's "Infeasible is only returned when the initial domain of some
// variable is empty" rule.
func BuildDomains(es EntitySet) (map[string][]models.Triple, error) {
	domains := make(map[string][]models.Triple)
	for _, req := range es.Requirements() {
		course, ok := es.Course(req.CourseID)
		if !ok {
			continue
		}
		triples := generateForCourse(es, course)
		domains[req.ID()] = triples
		if len(triples) == 0 {
			return domains, &EmptyDomainError{Requirement: req, CourseID: course.ID}
		}
	}
	return domains, nil
}

// generateForCourse enumerates every (time-slot, room, faculty) triple
// satisfying I4-I7 for one course, ranked by the §4.1 static preference
// score with a deterministic tiebreak.
func generateForCourse(es EntitySet, course models.Course) []models.Triple {
	required := course.RequiredEquipmentSet()
	preferredDays := course.PreferredDaySet()

	var candidates []candidate
	for _, f := range es.Faculty {
		if !f.QualifiedFor(course.ID) {
			continue
		}
		if len(f.QualifiedCourses) == 0 && f.Department != course.Department {
			continue
		}
		for _, slot := range f.Availability {
			if slot.DurationMinutes() < course.DurationMinutes {
				continue
			}
			for _, bounded := range stepSlots(slot, course.DurationMinutes) {
				for _, room := range es.Classrooms {
					if !course.CourseType.CompatibleWith(room.Type) {
						continue
					}
					if course.EnrolledCount > room.Capacity {
						continue
					}
					if !room.HasEquipment(required) {
						continue
					}
					score := preferenceScore(f, room, course, bounded, preferredDays, required)
					candidates = append(candidates, candidate{
						triple: models.Triple{TimeSlot: bounded, ClassroomID: room.ID, FacultyID: f.ID},
						score:  score,
					})
				}
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return lessTriple(candidates[i].triple, candidates[j].triple)
	})

	triples := make([]models.Triple, len(candidates))
	for i, c := range candidates {
		triples[i] = c.triple
	}
	return dedupeTriples(triples)
}

// stepSlots enumerates every duration-bounded, back-to-back start time
// within an availability window: [start, start+d), [start+d, start+2d),
// and so on, so a wide window yields multiple non-overlapping candidate
// slots rather than only the one anchored at the window's start. This is
// what lets two sequential sessions share both a room and a faculty
// member's single availability window.
func stepSlots(slot models.TimeSlot, minutes int) []models.TimeSlot {
	step := models.MinuteOfDay(minutes)
	var out []models.TimeSlot
	for start := slot.Start; start+step <= slot.End; start += step {
		bounded, err := models.NewTimeSlot(slot.Day, start, start+step)
		if err != nil {
			break
		}
		out = append(out, bounded)
	}
	return out
}

// preferenceScore implements spec.md §4.1's static scoring: +3 preferred
// faculty time, +2 preferred course day, +1 capacity slack >= 1.2x
// enrolled, -1 per unit of unused required-equipment slack.
func preferenceScore(
	f models.Faculty,
	room models.Classroom,
	course models.Course,
	slot models.TimeSlot,
	preferredDays map[models.Weekday]struct{},
	required map[string]struct{},
) int {
	score := 0
	if f.PrefersSlot(slot) {
		score += 3
	}
	if _, ok := preferredDays[slot.Day]; ok {
		score += 2
	}
	if float64(room.Capacity) >= 1.2*float64(course.EnrolledCount) {
		score += 1
	}
	score -= room.EquipmentSlack(required)
	return score
}

// lessTriple implements the stable tiebreak: (day_index, start_time,
// room_id, faculty_id) ascending.
func lessTriple(a, b models.Triple) bool {
	if a.TimeSlot.Day.DayIndex() != b.TimeSlot.Day.DayIndex() {
		return a.TimeSlot.Day.DayIndex() < b.TimeSlot.Day.DayIndex()
	}
	if a.TimeSlot.Start != b.TimeSlot.Start {
		return a.TimeSlot.Start < b.TimeSlot.Start
	}
	if a.ClassroomID != b.ClassroomID {
		return a.ClassroomID < b.ClassroomID
	}
	return a.FacultyID < b.FacultyID
}

// dedupeTriples removes exact duplicate triples while preserving the
// ranked order (the same (slot, room, faculty) can arise once per
// qualifying availability window overlap; keep only the first).
func dedupeTriples(triples []models.Triple) []models.Triple {
	seen := make(map[models.Triple]struct{}, len(triples))
	out := make([]models.Triple, 0, len(triples))
	for _, t := range triples {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
