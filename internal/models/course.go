package models

// CourseType classifies the teaching format of a course and drives the
// room-compatibility mapping in I7.
type CourseType string

const (
	CourseTypeLecture  CourseType = "Lecture"
	CourseTypeLab      CourseType = "Lab"
	CourseTypeTutorial CourseType = "Tutorial"
	CourseTypeSeminar  CourseType = "Seminar"
)

// Valid reports whether ct is one of the four recognized course types.
func (ct CourseType) Valid() bool {
	switch ct {
	case CourseTypeLecture, CourseTypeLab, CourseTypeTutorial, CourseTypeSeminar:
		return true
	}
	return false
}

// Course is a course offering that expands into SessionsPerWeek
// indistinguishable session variables for the solver.
type Course struct {
	ID                string     `json:"id"`
	Code              string     `json:"code"`
	Name              string     `json:"name"`
	Department        string     `json:"department"`
	Semester          string     `json:"semester"`
	Credits           int        `json:"credits"`
	EnrolledCount     int        `json:"enrolled_count"`
	CourseType        CourseType `json:"course_type"`
	DurationMinutes   int        `json:"duration_minutes"`
	SessionsPerWeek   int        `json:"sessions_per_week"`
	RequiredEquipment []string   `json:"required_equipment,omitempty"`
	PreferredDays     []Weekday  `json:"preferred_days,omitempty"`
	// Batches lists the student-group identifiers taking this course. The
	// engine does not model batch-vs-batch or batch-vs-room conflicts
	// (spec Open Question); batches are used only to project the course
	// set via config.selected_batches before solving.
	Batches []string `json:"batches,omitempty"`
}

// Validate checks the structural invariants spec.md §3 places on a Course,
// independent of any other entity.
func (c Course) Validate() []string {
	var errs []string
	if c.ID == "" {
		errs = append(errs, "course id is required")
	}
	if c.Credits <= 0 {
		errs = append(errs, "course credits must be positive")
	}
	if c.EnrolledCount < 0 {
		errs = append(errs, "course enrolled_count must be non-negative")
	}
	if !c.CourseType.Valid() {
		errs = append(errs, "course course_type is invalid")
	}
	if c.DurationMinutes <= 0 {
		errs = append(errs, "course duration_minutes must be positive")
	}
	if c.SessionsPerWeek < 1 {
		errs = append(errs, "course sessions_per_week must be at least 1")
	}
	return errs
}

// RequiredEquipmentSet returns the required equipment as a lookup set.
func (c Course) RequiredEquipmentSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.RequiredEquipment))
	for _, e := range c.RequiredEquipment {
		set[e] = struct{}{}
	}
	return set
}

// PreferredDaySet returns preferred days as a lookup set.
func (c Course) PreferredDaySet() map[Weekday]struct{} {
	set := make(map[Weekday]struct{}, len(c.PreferredDays))
	for _, d := range c.PreferredDays {
		set[d] = struct{}{}
	}
	return set
}

// compatibleClassroomTypes implements the I7 course/room type mapping.
var compatibleClassroomTypes = map[CourseType]map[ClassroomType]struct{}{
	CourseTypeLab:      {ClassroomTypeLab: {}},
	CourseTypeLecture:  {ClassroomTypeLecture: {}, ClassroomTypeAuditorium: {}},
	CourseTypeTutorial: {ClassroomTypeTutorial: {}, ClassroomTypeLecture: {}},
	CourseTypeSeminar:  {ClassroomTypeSeminar: {}, ClassroomTypeLecture: {}},
}

// CompatibleWith reports whether a classroom type is an allowed host for
// this course type, implementing invariant I7.
func (ct CourseType) CompatibleWith(room ClassroomType) bool {
	allowed, ok := compatibleClassroomTypes[ct]
	if !ok {
		return false
	}
	_, ok = allowed[room]
	return ok
}
