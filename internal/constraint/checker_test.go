package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/schedule-engine/internal/domain"
	"github.com/noah-isme/schedule-engine/internal/models"
)

func mustSlot(t *testing.T, day models.Weekday, start, end models.MinuteOfDay) models.TimeSlot {
	t.Helper()
	slot, err := models.NewTimeSlot(day, start, end)
	require.NoError(t, err)
	return slot
}

func fixtureEntities(t *testing.T) domain.EntitySet {
	courses := []models.Course{
		{ID: "c1", Credits: 3, EnrolledCount: 20, CourseType: models.CourseTypeLecture, DurationMinutes: 60, SessionsPerWeek: 1},
	}
	faculty := []models.Faculty{
		{ID: "f1", MaxHoursPerWeek: 1, Availability: []models.TimeSlot{mustSlot(t, models.Monday, 540, 720)}},
	}
	rooms := []models.Classroom{
		{ID: "r1", Type: models.ClassroomTypeLecture, Capacity: 30},
	}
	return domain.NewEntitySet(courses, faculty, rooms)
}

func entry(t *testing.T, courseID string, idx int, facultyID, roomID string, day models.Weekday, start, end models.MinuteOfDay) models.ScheduleEntry {
	return models.ScheduleEntry{
		SessionRequirement: models.SessionRequirement{CourseID: courseID, SessionIdx: idx},
		CourseID:           courseID,
		FacultyID:          facultyID,
		ClassroomID:        roomID,
		TimeSlot:           mustSlot(t, day, start, end),
	}
}

func TestCompatibleIgnoresNonOverlapping(t *testing.T) {
	a := entry(t, "c1", 0, "f1", "r1", models.Monday, 540, 600)
	b := entry(t, "c1", 1, "f1", "r1", models.Monday, 600, 660)
	assert.True(t, Compatible(a, b), "touching slots never conflict")
}

func TestCompatibleRejectsSharedFacultyOverlap(t *testing.T) {
	a := entry(t, "c1", 0, "f1", "r1", models.Monday, 540, 600)
	b := entry(t, "c1", 1, "f1", "r2", models.Monday, 560, 620)
	assert.False(t, Compatible(a, b))
}

func TestAdmitsRejectsOutsideAvailability(t *testing.T) {
	checker := New(fixtureEntities(t))
	candidate := entry(t, "c1", 0, "f1", "r1", models.Tuesday, 540, 600)
	assert.False(t, checker.Admits(nil, candidate))
}

func TestAdmitsRejectsOverCapFacultyHours(t *testing.T) {
	checker := New(fixtureEntities(t)) // f1 max 1 hour/week = 60 minutes
	committed := []models.ScheduleEntry{entry(t, "c1", 0, "f1", "r1", models.Monday, 540, 600)}
	next := entry(t, "c1", 1, "f1", "r1", models.Monday, 630, 690)
	assert.False(t, checker.Admits(committed, next), "second 60-minute session exceeds the 60-minute weekly cap")
}

func TestViolationsDetectsFacultyOverlap(t *testing.T) {
	checker := New(fixtureEntities(t))
	entries := []models.ScheduleEntry{
		entry(t, "c1", 0, "f1", "r1", models.Monday, 540, 600),
		entry(t, "c1", 1, "f1", "r2", models.Monday, 560, 620),
	}
	violations := checker.Violations(entries)
	assert.Contains(t, violations, ViolationFacultyOverlap)
}
