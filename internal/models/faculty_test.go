package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, day Weekday, start, end MinuteOfDay) TimeSlot {
	t.Helper()
	slot, err := NewTimeSlot(day, start, end)
	require.NoError(t, err)
	return slot
}

func TestFacultyIsAvailableRequiresContainment(t *testing.T) {
	f := Faculty{
		ID:              "f1",
		MaxHoursPerWeek: 20,
		Availability:    []TimeSlot{mustSlot(t, Monday, 540, 720)},
	}

	assert.True(t, f.IsAvailable(mustSlot(t, Monday, 600, 660)))
	assert.False(t, f.IsAvailable(mustSlot(t, Monday, 700, 740)), "slot extends past the availability window")
	assert.False(t, f.IsAvailable(mustSlot(t, Tuesday, 600, 660)))
}

func TestFacultyQualifiedForEmptyMeansAll(t *testing.T) {
	f := Faculty{}
	assert.True(t, f.QualifiedFor("anything"))

	f.QualifiedCourses = []string{"math-101"}
	assert.True(t, f.QualifiedFor("math-101"))
	assert.False(t, f.QualifiedFor("physics-201"))
}

func TestFacultyMaxMinutesPerWeek(t *testing.T) {
	f := Faculty{MaxHoursPerWeek: 10}
	assert.Equal(t, 600, f.MaxMinutesPerWeek())
}
