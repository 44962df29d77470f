// Package constraint implements the pairwise and per-entity conflict
// tests spec.md §4.2 calls the constraint checker: compatible, admits,
// and violations.
package constraint

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/noah-isme/schedule-engine/internal/domain"
	"github.com/noah-isme/schedule-engine/internal/models"
)

// Violation names one broken invariant from spec.md §3 (I1-I8).
type Violation string

const (
	ViolationFacultyOverlap      Violation = "faculty_overlap"      // I1
	ViolationClassroomOverlap    Violation = "classroom_overlap"    // I2
	ViolationDuplicateSession    Violation = "duplicate_session"    // I3
	ViolationFacultyAvailability Violation = "faculty_availability" // I4
	ViolationCapacity            Violation = "capacity"            // I5
	ViolationEquipment           Violation = "equipment"            // I6
	ViolationRoomType            Violation = "room_type"            // I7
	ViolationFacultyHours        Violation = "faculty_hours"        // I8
)

// Compatible reports whether two entries may coexist: either they don't
// overlap in time, or they overlap but share neither faculty nor
// classroom (I1, I2), and they are not the same session scheduled twice
// (I3: two different entries for one session requirement conflict, while
// an entry compared with itself does not).
func Compatible(a, b models.ScheduleEntry) bool {
	if a.SessionRequirement == b.SessionRequirement {
		return a == b
	}
	if !a.TimeSlot.Overlaps(b.TimeSlot) {
		return true
	}
	if a.FacultyID == b.FacultyID {
		return false
	}
	if a.ClassroomID == b.ClassroomID {
		return false
	}
	return true
}

// Checker evaluates candidates and completed schedules against an
// EntitySet.
type Checker struct {
	entities domain.EntitySet
}

// New builds a Checker bound to one entity set.
func New(entities domain.EntitySet) *Checker {
	return &Checker{entities: entities}
}

// Admits reports whether candidate may be committed on top of the
// already-committed entries, testing I1-I4 pairwise plus I8 faculty-hours
// accumulation. I5-I7 are per-candidate and are assumed already true of
// any triple drawn from the domain generator's output, but are re-checked
// here too since Admits is also used to validate externally constructed
// candidates.
func (c *Checker) Admits(committed []models.ScheduleEntry, candidate models.ScheduleEntry) bool {
	faculty, ok := c.entities.FacultyMember(candidate.FacultyID)
	if !ok {
		return false
	}
	if !faculty.IsAvailable(candidate.TimeSlot) {
		return false
	}
	if !c.entryMeetsOwnInvariants(candidate) {
		return false
	}
	for _, e := range committed {
		if !Compatible(e, candidate) {
			return false
		}
	}
	return c.facultyHoursOK(committed, candidate, faculty)
}

func (c *Checker) entryMeetsOwnInvariants(e models.ScheduleEntry) bool {
	course, ok := c.entities.Course(e.CourseID)
	if !ok {
		return false
	}
	room, ok := c.entities.Classroom(e.ClassroomID)
	if !ok {
		return false
	}
	if course.EnrolledCount > room.Capacity {
		return false
	}
	if !room.HasEquipment(course.RequiredEquipmentSet()) {
		return false
	}
	return course.CourseType.CompatibleWith(room.Type)
}

func (c *Checker) facultyHoursOK(committed []models.ScheduleEntry, candidate models.ScheduleEntry, faculty models.Faculty) bool {
	total := candidate.TimeSlot.DurationMinutes()
	for _, e := range committed {
		if e.FacultyID == candidate.FacultyID {
			total += e.TimeSlot.DurationMinutes()
		}
	}
	return total <= faculty.MaxMinutesPerWeek()
}

// Violations evaluates a completed Schedule against every invariant,
// returning one Violation per distinct broken rule found (not one per
// offending pair — spec.md's validator treats any breach as fatal to the
// request, it does not need a full enumeration of every pair).
func (c *Checker) Violations(entries []models.ScheduleEntry) []Violation {
	seen := make(map[Violation]struct{})
	add := func(v Violation) { seen[v] = struct{}{} }

	seenSession := make(map[models.SessionRequirement]models.ScheduleEntry)
	for _, e := range entries {
		if prior, ok := seenSession[e.SessionRequirement]; ok && prior != e {
			add(ViolationDuplicateSession)
		}
		seenSession[e.SessionRequirement] = e

		faculty, ok := c.entities.FacultyMember(e.FacultyID)
		if !ok || !faculty.IsAvailable(e.TimeSlot) {
			add(ViolationFacultyAvailability)
		}
		course, courseOK := c.entities.Course(e.CourseID)
		room, roomOK := c.entities.Classroom(e.ClassroomID)
		if courseOK && roomOK {
			if course.EnrolledCount > room.Capacity {
				add(ViolationCapacity)
			}
			if !room.HasEquipment(course.RequiredEquipmentSet()) {
				add(ViolationEquipment)
			}
			if !course.CourseType.CompatibleWith(room.Type) {
				add(ViolationRoomType)
			}
		}
	}

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if a.SessionRequirement == b.SessionRequirement {
				continue
			}
			if !a.TimeSlot.Overlaps(b.TimeSlot) {
				continue
			}
			if a.FacultyID == b.FacultyID {
				add(ViolationFacultyOverlap)
			}
			if a.ClassroomID == b.ClassroomID {
				add(ViolationClassroomOverlap)
			}
		}
	}

	hours := make(map[string]int)
	for _, e := range entries {
		hours[e.FacultyID] += e.TimeSlot.DurationMinutes()
	}
	for facultyID, minutes := range hours {
		faculty, ok := c.entities.FacultyMember(facultyID)
		if ok && minutes > faculty.MaxMinutesPerWeek() {
			add(ViolationFacultyHours)
		}
	}

	out := make([]Violation, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}

// AggregateError combines violations into one multierr-joined error for
// callers that want a single error value (the engine's "internal" error
// path, spec.md §7).
func AggregateError(violations []Violation) error {
	var err error
	for _, v := range violations {
		err = multierr.Append(err, fmt.Errorf("invariant violated: %s", v))
	}
	return err
}
