package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/schedule-engine/internal/models"
)

func mustSlot(t *testing.T, day models.Weekday, start, end models.MinuteOfDay) models.TimeSlot {
	t.Helper()
	slot, err := models.NewTimeSlot(day, start, end)
	require.NoError(t, err)
	return slot
}

func sampleEntitySet(t *testing.T) EntitySet {
	courses := []models.Course{
		{ID: "c1", Credits: 3, EnrolledCount: 20, CourseType: models.CourseTypeLecture, DurationMinutes: 60, SessionsPerWeek: 2, Batches: []string{"batch-a"}},
		{ID: "c2", Credits: 4, EnrolledCount: 15, CourseType: models.CourseTypeLab, DurationMinutes: 90, SessionsPerWeek: 1, Batches: []string{"batch-b"}},
	}
	faculty := []models.Faculty{
		{ID: "f1", MaxHoursPerWeek: 10, Availability: []models.TimeSlot{mustSlot(t, models.Monday, 540, 720)}},
	}
	rooms := []models.Classroom{
		{ID: "r1", Type: models.ClassroomTypeLecture, Capacity: 30},
	}
	return NewEntitySet(courses, faculty, rooms)
}

func TestProjectFiltersByCourseAndBatch(t *testing.T) {
	es := sampleEntitySet(t)

	byCourse := es.Project([]string{"c1"}, nil, nil)
	assert.Len(t, byCourse.Courses, 1)
	assert.Equal(t, "c1", byCourse.Courses[0].ID)

	byBatch := es.Project(nil, nil, []string{"batch-b"})
	assert.Len(t, byBatch.Courses, 1)
	assert.Equal(t, "c2", byBatch.Courses[0].ID)
}

func TestRequirementsExpandsBySessionsPerWeek(t *testing.T) {
	es := sampleEntitySet(t)
	reqs := es.Requirements()
	assert.Len(t, reqs, 3) // c1 has 2 sessions, c2 has 1
	assert.Equal(t, "c1#0", reqs[0].ID())
	assert.Equal(t, "c1#1", reqs[1].ID())
	assert.Equal(t, "c2#0", reqs[2].ID())
}

func TestCanonicalTimeSlotsDeduped(t *testing.T) {
	es := sampleEntitySet(t)
	es.Faculty = append(es.Faculty, es.Faculty[0])
	slots := es.CanonicalTimeSlots()
	assert.Len(t, slots, 1)
}
