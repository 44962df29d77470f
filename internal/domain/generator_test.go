package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/schedule-engine/internal/models"
)

func TestBuildDomainsProducesRankedCandidates(t *testing.T) {
	es := sampleEntitySet(t)
	domains, err := BuildDomains(es)
	require.Error(t, err, "c2 has no compatible room, so an empty-domain error is reported after c1's domains are built")

	c1s0 := domains["c1#0"]
	require.NotEmpty(t, c1s0)
	assert.Equal(t, "r1", c1s0[0].ClassroomID)
	assert.Equal(t, "f1", c1s0[0].FacultyID)

	// c2 is a Lab but the only room is Lecture-typed: no compatible triple.
	assert.Empty(t, domains["c2#0"])
}

func TestBuildDomainsReturnsEmptyDomainError(t *testing.T) {
	es := sampleEntitySet(t)
	_, err := BuildDomains(es)
	require.Error(t, err)

	var emptyErr *EmptyDomainError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "c2", emptyErr.CourseID)
	assert.Equal(t, "empty_domain:c2", emptyErr.Error())
}

func TestStepSlotsEnumeratesBackToBackStarts(t *testing.T) {
	window := mustSlot(t, models.Monday, 540, 720) // 09:00-12:00
	slots := stepSlots(window, 60)
	require.Len(t, slots, 3)
	assert.Equal(t, models.MinuteOfDay(540), slots[0].Start)
	assert.Equal(t, models.MinuteOfDay(600), slots[1].Start)
	assert.Equal(t, models.MinuteOfDay(660), slots[2].Start)
}

func TestStepSlotsDropsRemainderShorterThanDuration(t *testing.T) {
	window := mustSlot(t, models.Monday, 540, 650) // 110 minutes, only one 60-min slot fits
	slots := stepSlots(window, 60)
	assert.Len(t, slots, 1)
}

func TestBuildDomainsLetsSequentialSessionsShareARoom(t *testing.T) {
	courses := []models.Course{
		{ID: "c1", Credits: 3, EnrolledCount: 20, CourseType: models.CourseTypeLecture, DurationMinutes: 60, SessionsPerWeek: 2},
	}
	faculty := []models.Faculty{
		{ID: "f1", MaxHoursPerWeek: 10, Availability: []models.TimeSlot{mustSlot(t, models.Monday, 540, 720)}},
	}
	rooms := []models.Classroom{
		{ID: "r1", Type: models.ClassroomTypeLecture, Capacity: 30},
	}
	es := NewEntitySet(courses, faculty, rooms)

	domains, err := BuildDomains(es)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(domains["c1#0"]), 2, "a single shared window must offer more than one start time")
}

func TestDedupeTriplesPreservesOrder(t *testing.T) {
	slot := mustSlot(t, models.Monday, 540, 600)
	triples := []models.Triple{
		{TimeSlot: slot, ClassroomID: "r1", FacultyID: "f1"},
		{TimeSlot: slot, ClassroomID: "r1", FacultyID: "f1"},
		{TimeSlot: slot, ClassroomID: "r2", FacultyID: "f1"},
	}
	deduped := dedupeTriples(triples)
	assert.Len(t, deduped, 2)
}
