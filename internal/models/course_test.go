package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseValidate(t *testing.T) {
	valid := Course{
		ID: "c1", Credits: 3, EnrolledCount: 20,
		CourseType: CourseTypeLecture, DurationMinutes: 60, SessionsPerWeek: 2,
	}
	assert.Empty(t, valid.Validate())

	invalid := Course{CourseType: "bogus"}
	errs := invalid.Validate()
	assert.Contains(t, errs, "course id is required")
	assert.Contains(t, errs, "course credits must be positive")
	assert.Contains(t, errs, "course course_type is invalid")
}

func TestCourseTypeCompatibleWith(t *testing.T) {
	assert.True(t, CourseTypeLab.CompatibleWith(ClassroomTypeLab))
	assert.False(t, CourseTypeLab.CompatibleWith(ClassroomTypeLecture))
	assert.True(t, CourseTypeLecture.CompatibleWith(ClassroomTypeAuditorium))
	assert.True(t, CourseTypeTutorial.CompatibleWith(ClassroomTypeLecture))
	assert.False(t, CourseTypeSeminar.CompatibleWith(ClassroomTypeLab))
}

func TestRequiredEquipmentSet(t *testing.T) {
	c := Course{RequiredEquipment: []string{"projector", "whiteboard"}}
	set := c.RequiredEquipmentSet()
	assert.Len(t, set, 2)
	_, ok := set["projector"]
	assert.True(t, ok)
}
