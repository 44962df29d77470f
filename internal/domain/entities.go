// Package domain projects the raw entity collections into the indexed
// working set the solvers operate on, and generates each session
// requirement's feasible candidate triples (spec.md §4.1).
package domain

import (
	"sort"

	"github.com/noah-isme/schedule-engine/internal/models"
)

// EntitySet is the indexed, read-only view of the four entity
// collections for one solve. Once built it is never mutated — solvers own
// their own assignment/domain state, never the entity set (spec.md §5).
type EntitySet struct {
	Courses    []models.Course
	Faculty    []models.Faculty
	Classrooms []models.Classroom

	courseByID    map[string]models.Course
	facultyByID   map[string]models.Faculty
	classroomByID map[string]models.Classroom
}

// NewEntitySet indexes the three collections by ID.
func NewEntitySet(courses []models.Course, faculty []models.Faculty, classrooms []models.Classroom) EntitySet {
	es := EntitySet{
		Courses:       courses,
		Faculty:       faculty,
		Classrooms:    classrooms,
		courseByID:    make(map[string]models.Course, len(courses)),
		facultyByID:   make(map[string]models.Faculty, len(faculty)),
		classroomByID: make(map[string]models.Classroom, len(classrooms)),
	}
	for _, c := range courses {
		es.courseByID[c.ID] = c
	}
	for _, f := range faculty {
		es.facultyByID[f.ID] = f
	}
	for _, r := range classrooms {
		es.classroomByID[r.ID] = r
	}
	return es
}

// Course looks up a course by ID.
func (es EntitySet) Course(id string) (models.Course, bool) {
	c, ok := es.courseByID[id]
	return c, ok
}

// FacultyMember looks up a faculty record by ID.
func (es EntitySet) FacultyMember(id string) (models.Faculty, bool) {
	f, ok := es.facultyByID[id]
	return f, ok
}

// Classroom looks up a classroom by ID.
func (es EntitySet) Classroom(id string) (models.Classroom, bool) {
	r, ok := es.classroomByID[id]
	return r, ok
}

// idSet builds a lookup set from a string slice; a nil/empty slice means
// "no filter", signaled by the returned bool.
func idSet(ids []string) (map[string]struct{}, bool) {
	if len(ids) == 0 {
		return nil, false
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, true
}

// Project narrows the entity set by config.selected_courses,
// selected_faculty, and selected_batches. Batches filter courses only
// (spec.md §9 Open Question); courses are also filtered in on any
// selected faculty being qualified for them, so an unreachable course
// does not linger in the solve. Filtering then solving on the result is
// equivalent to solving on an already-filtered set (spec.md §8 law).
func (es EntitySet) Project(selectedCourses, selectedFaculty, selectedBatches []string) EntitySet {
	courseFilter, hasCourseFilter := idSet(selectedCourses)
	facultyFilter, hasFacultyFilter := idSet(selectedFaculty)
	batchFilter, hasBatchFilter := idSet(selectedBatches)

	courses := make([]models.Course, 0, len(es.Courses))
	for _, c := range es.Courses {
		if hasCourseFilter {
			if _, ok := courseFilter[c.ID]; !ok {
				continue
			}
		}
		if hasBatchFilter && !coursesAnyBatch(c, batchFilter) {
			continue
		}
		if hasFacultyFilter {
			reachable := false
			for _, f := range es.Faculty {
				if _, ok := facultyFilter[f.ID]; ok && f.QualifiedFor(c.ID) {
					reachable = true
					break
				}
			}
			if !reachable {
				continue
			}
		}
		courses = append(courses, c)
	}

	faculty := make([]models.Faculty, 0, len(es.Faculty))
	for _, f := range es.Faculty {
		if hasFacultyFilter {
			if _, ok := facultyFilter[f.ID]; !ok {
				continue
			}
		}
		faculty = append(faculty, f)
	}

	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	sort.Slice(faculty, func(i, j int) bool { return faculty[i].ID < faculty[j].ID })

	classrooms := make([]models.Classroom, len(es.Classrooms))
	copy(classrooms, es.Classrooms)
	sort.Slice(classrooms, func(i, j int) bool { return classrooms[i].ID < classrooms[j].ID })

	return NewEntitySet(courses, faculty, classrooms)
}

func coursesAnyBatch(c models.Course, batches map[string]struct{}) bool {
	if len(c.Batches) == 0 {
		return false
	}
	for _, b := range c.Batches {
		if _, ok := batches[b]; ok {
			return true
		}
	}
	return false
}

// Requirements expands every course into its SessionRequirements, ordered
// by (course ID, session index) for determinism.
func (es EntitySet) Requirements() []models.SessionRequirement {
	var reqs []models.SessionRequirement
	courses := make([]models.Course, len(es.Courses))
	copy(courses, es.Courses)
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	for _, c := range courses {
		reqs = append(reqs, models.ExpandCourse(c)...)
	}
	return reqs
}

// CanonicalTimeSlots is the union of every faculty availability window,
// used by the analyzer's room_utilization denominator (spec.md §4.6).
func (es EntitySet) CanonicalTimeSlots() []models.TimeSlot {
	seen := make(map[models.TimeSlot]struct{})
	var slots []models.TimeSlot
	for _, f := range es.Faculty {
		for _, w := range f.Availability {
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				slots = append(slots, w)
			}
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Day != slots[j].Day {
			return slots[i].Day.DayIndex() < slots[j].Day.DayIndex()
		}
		return slots[i].Start < slots[j].Start
	})
	return slots
}
