package analyzer

import (
	"github.com/noah-isme/schedule-engine/internal/domain"
	"github.com/noah-isme/schedule-engine/internal/models"
)

// Fixed catalog of improvement suggestions, spec.md §4.6: deterministic
// strings triggered by threshold checks, never generated text.
const (
	suggestionUnderutilizedRooms = "underutilized rooms"
	suggestionBalanceFacultyLoad = "balance faculty load"
	suggestionRevisitDayPrefs    = "revisit day preferences"
)

const (
	underutilizationThreshold = 0.4
	facultyLoadThreshold      = 0.8
)

// Suggestions evaluates the fixed catalog's thresholds against one
// produced schedule and returns the triggered strings, in catalog order.
func Suggestions(entries []models.ScheduleEntry, es domain.EntitySet, roomUtilization float64, facultyLoad map[string]int) []string {
	var out []string
	if roomUtilization < underutilizationThreshold {
		out = append(out, suggestionUnderutilizedRooms)
	}
	if anyFacultyOverThreshold(es, facultyLoad) {
		out = append(out, suggestionBalanceFacultyLoad)
	}
	if anyDayPreferenceMismatch(entries, es) {
		out = append(out, suggestionRevisitDayPrefs)
	}
	return out
}

func anyFacultyOverThreshold(es domain.EntitySet, facultyLoad map[string]int) bool {
	for _, f := range es.Faculty {
		maxMinutes := f.MaxMinutesPerWeek()
		if maxMinutes <= 0 {
			continue
		}
		if float64(facultyLoad[f.ID]) > facultyLoadThreshold*float64(maxMinutes) {
			return true
		}
	}
	return false
}

// anyDayPreferenceMismatch looks for a course scheduled more than once on
// a day outside its preferred set — a repeated (course, day) collision
// with a preference mismatch, per spec.md §4.6.
func anyDayPreferenceMismatch(entries []models.ScheduleEntry, es domain.EntitySet) bool {
	counts := make(map[string]int)
	for _, e := range entries {
		course, ok := es.Course(e.CourseID)
		if !ok {
			continue
		}
		preferred := course.PreferredDaySet()
		if len(preferred) == 0 {
			continue
		}
		if _, ok := preferred[e.TimeSlot.Day]; ok {
			continue
		}
		key := e.CourseID + ":" + string(e.TimeSlot.Day)
		counts[key]++
		if counts[key] > 1 {
			return true
		}
	}
	return false
}
