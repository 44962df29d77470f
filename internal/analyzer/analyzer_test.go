package analyzer

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

func entry(t *testing.T, courseID string, idx int, facultyID, roomID string, day models.Weekday, start, end models.MinuteOfDay) models.ScheduleEntry {
	return models.ScheduleEntry{
		SessionRequirement: models.SessionRequirement{CourseID: courseID, SessionIdx: idx},
		CourseID:           courseID,
		FacultyID:          facultyID,
		ClassroomID:        roomID,
		TimeSlot:           mustSlot(t, day, start, end),
	}
}

func TestBuildGraphFindsNoEdgesOnValidSchedule(t *testing.T) {
	entries := []models.ScheduleEntry{
		entry(t, "c1", 0, "f1", "r1", models.Monday, 540, 600),
		entry(t, "c2", 0, "f2", "r2", models.Monday, 540, 600),
	}
	g := Build(entries)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuildGraphFindsOverlapEdge(t *testing.T) {
	entries := []models.ScheduleEntry{
		entry(t, "c1", 0, "f1", "r1", models.Monday, 540, 600),
		entry(t, "c2", 0, "f1", "r2", models.Monday, 560, 620),
	}
	g := Build(entries)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.ChromaticLowerBound(), "two conflicting entries form a 2-clique")
}

func TestRoomUtilizationDividesByCartesianProduct(t *testing.T) {
	courses := []models.Course{{ID: "c1", CourseType: models.CourseTypeLecture, Credits: 1, SessionsPerWeek: 1, DurationMinutes: 60}}
	faculty := []models.Faculty{{ID: "f1", MaxHoursPerWeek: 10, Availability: []models.TimeSlot{mustSlot(t, models.Monday, 540, 600)}}}
	rooms := []models.Classroom{{ID: "r1", Type: models.ClassroomTypeLecture, Capacity: 30}, {ID: "r2", Type: models.ClassroomTypeLecture, Capacity: 30}}
	es := domain.NewEntitySet(courses, faculty, rooms)

	entries := []models.ScheduleEntry{entry(t, "c1", 0, "f1", "r1", models.Monday, 540, 600)}
	util := RoomUtilization(entries, es)
	assert.InDelta(t, 0.5, util, 0.0001) // 1 occupied of 2 rooms x 1 slot
}

func TestSuggestionsUnderutilizedRooms(t *testing.T) {
	es := domain.NewEntitySet(nil, []models.Faculty{{ID: "f1", MaxHoursPerWeek: 10}}, nil)
	suggestions := Suggestions(nil, es, 0.1, nil)
	assert.Contains(t, suggestions, suggestionUnderutilizedRooms)
}

func TestSuggestionsBalanceFacultyLoad(t *testing.T) {
	es := domain.NewEntitySet(nil, []models.Faculty{{ID: "f1", MaxHoursPerWeek: 10}}, nil)
	load := map[string]int{"f1": 550} // 550/600 > 0.8
	suggestions := Suggestions(nil, es, 1.0, load)
	assert.Contains(t, suggestions, suggestionBalanceFacultyLoad)
}
