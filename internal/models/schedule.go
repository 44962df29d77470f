package models

import "fmt"

// SessionRequirement is one weekly occurrence of a course's expansion into
// SessionsPerWeek indistinguishable session variables. (CourseID,
// SessionIndex) is the stable identifier spec.md §9 calls for.
type SessionRequirement struct {
	CourseID   string `json:"course_id"`
	SessionIdx int    `json:"session_index"`
}

// ID renders a stable string key for maps and logs.
func (r SessionRequirement) ID() string {
	return fmt.Sprintf("%s#%d", r.CourseID, r.SessionIdx)
}

// ExpandCourse produces the ordered SessionRequirements for a course.
func ExpandCourse(c Course) []SessionRequirement {
	reqs := make([]SessionRequirement, 0, c.SessionsPerWeek)
	for i := 0; i < c.SessionsPerWeek; i++ {
		reqs = append(reqs, SessionRequirement{CourseID: c.ID, SessionIdx: i})
	}
	return reqs
}

// Triple is a candidate (time-slot, room, faculty) assignment for one
// session requirement.
type Triple struct {
	TimeSlot    TimeSlot `json:"time_slot"`
	ClassroomID string   `json:"classroom_id"`
	FacultyID   string   `json:"faculty_id"`
}

// ScheduleEntry binds a SessionRequirement to a committed Triple.
type ScheduleEntry struct {
	SessionRequirement SessionRequirement `json:"session_requirement"`
	CourseID           string             `json:"course_id"`
	FacultyID          string             `json:"faculty_id"`
	ClassroomID        string             `json:"classroom_id"`
	TimeSlot           TimeSlot           `json:"time_slot"`
}

// SolverKind tags which solver produced a Schedule.
type SolverKind string

const (
	SolverCSP    SolverKind = "csp"
	SolverGreedy SolverKind = "greedy"
	SolverHybrid SolverKind = "hybrid"
)

// ScheduleSummary is the statistics block carried alongside a Schedule.
type ScheduleSummary struct {
	TotalSessionsScheduled int     `json:"total_sessions_scheduled"`
	Unscheduled            int     `json:"unscheduled"`
	OptimizationScore      float64 `json:"optimization_score"`
	Conflicts              int     `json:"conflicts"`
}

// Schedule is an ordered, frozen set of ScheduleEntry plus its summary.
type Schedule struct {
	Entries []ScheduleEntry `json:"entries"`
	Summary ScheduleSummary `json:"summary"`
}
