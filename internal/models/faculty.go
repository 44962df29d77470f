package models

// Faculty is an instructor, identified by stable ID, with the windows in
// which they may teach and an optional subset of preferred windows.
type Faculty struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Department       string     `json:"department"`
	Email            string     `json:"email"`
	Availability     []TimeSlot `json:"availability"`
	MaxHoursPerWeek  int        `json:"max_hours_per_week"`
	PreferredTimes   []TimeSlot `json:"preferred_times,omitempty"`
	QualifiedCourses []string   `json:"qualified_courses,omitempty"`
}

// Validate checks Faculty's own structural invariants.
func (f Faculty) Validate() []string {
	var errs []string
	if f.ID == "" {
		errs = append(errs, "faculty id is required")
	}
	if f.MaxHoursPerWeek <= 0 {
		errs = append(errs, "faculty max_hours_per_week must be positive")
	}
	if len(f.Availability) == 0 {
		errs = append(errs, "faculty availability must not be empty")
	}
	return errs
}

// MaxMinutesPerWeek converts MaxHoursPerWeek to minutes, resolving the
// spec's Open Question in favor of hours*60 measured by entry duration.
func (f Faculty) MaxMinutesPerWeek() int {
	return f.MaxHoursPerWeek * 60
}

// IsAvailable reports whether slot fits inside one of the faculty's
// availability windows (not merely overlaps it).
func (f Faculty) IsAvailable(slot TimeSlot) bool {
	for _, w := range f.Availability {
		if w.Day == slot.Day && w.Start <= slot.Start && slot.End <= w.End {
			return true
		}
	}
	return false
}

// PrefersSlot reports whether slot lies within a preferred window.
func (f Faculty) PrefersSlot(slot TimeSlot) bool {
	for _, w := range f.PreferredTimes {
		if w.Day == slot.Day && w.Start <= slot.Start && slot.End <= w.End {
			return true
		}
	}
	return false
}

// QualifiedFor reports whether the faculty may teach courseID. An empty
// QualifiedCourses list means "qualified for all courses in department",
// so the department match is the caller's responsibility (the domain
// generator already scopes assignment attempts to in-department courses).
func (f Faculty) QualifiedFor(courseID string) bool {
	if len(f.QualifiedCourses) == 0 {
		return true
	}
	for _, id := range f.QualifiedCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
