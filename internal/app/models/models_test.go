package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func TestTeacherUpdateTouchesOnlyPresentFields(t *testing.T) {
	teacher := Teacher{FullName: "Ada", Qualifications: "PhD", Email: "ada@example.com", Phone: "1"}
	update := TeacherUpdate{Email: strPtr("ada@uni.edu")}

	assert.False(t, update.IsEmpty())
	assert.Equal(t, map[string]interface{}{"email": "ada@uni.edu"}, update.Columns())

	update.Apply(&teacher)
	assert.Equal(t, Teacher{FullName: "Ada", Qualifications: "PhD", Email: "ada@uni.edu", Phone: "1"}, teacher)
}

func TestCourseUpdateColumns(t *testing.T) {
	update := CourseUpdate{Price: int64Ptr(0), TeacherID: int64Ptr(4)}

	assert.Equal(t, map[string]interface{}{"price": int64(0), "teacher_id": int64(4)}, update.Columns())
}

func TestCourseUpdateApplyDropsStaleTeacher(t *testing.T) {
	course := Course{TeacherID: 1, Teacher: &Teacher{ID: 1}}

	CourseUpdate{TeacherID: int64Ptr(1)}.Apply(&course)
	assert.NotNil(t, course.Teacher)

	CourseUpdate{TeacherID: int64Ptr(2)}.Apply(&course)
	assert.Equal(t, int64(2), course.TeacherID)
	assert.Nil(t, course.Teacher)
}

func TestUpdatesEmpty(t *testing.T) {
	assert.True(t, AdminUpdate{}.IsEmpty())
	assert.True(t, TeacherUpdate{}.IsEmpty())
	assert.True(t, CourseUpdate{}.IsEmpty())
	assert.Empty(t, AdminUpdate{}.Columns())
	assert.False(t, AdminUpdate{Password: strPtr("digest")}.IsEmpty())
}
