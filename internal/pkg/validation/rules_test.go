package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func TestStructAcceptsCompleteTeacher(t *testing.T) {
	teacher := models.Teacher{FullName: "Ada", Qualifications: "PhD", Email: "ada@example.com", Phone: "1"}

	assert.NoError(t, Struct(teacher))
}

func TestStructNamesMissingFields(t *testing.T) {
	err := Struct(&models.Teacher{FullName: "Ada"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingAttrs)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Qualifications is required")
	assert.Contains(t, err.Error(), "Phone is required")
	assert.NotContains(t, err.Error(), "FullName")
}

func TestStructCourseNeedsTeacher(t *testing.T) {
	course := models.Course{Name: "Go", Description: "d", Location: "l", Price: 0}

	err := Struct(course)
	assert.ErrorIs(t, err, apperrors.ErrMissingAttrs)
	assert.Contains(t, err.Error(), "TeacherID")

	course.TeacherID = 1
	assert.NoError(t, Struct(course), "a zero price is a valid price")
}

func TestStructRejectsNonStruct(t *testing.T) {
	err := Struct("not a struct")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.NotErrorIs(t, err, apperrors.ErrMissingAttrs)
}

func TestFormatFieldError(t *testing.T) {
	type sample struct {
		Name  string `validate:"required"`
		Price int64  `validate:"gt=0"`
		Email string `validate:"email"`
	}

	err := validator.New().Struct(sample{Price: -1, Email: "nope"})
	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 3)

	assert.Equal(t, "Name is required", FormatFieldError(fieldErrs[0]))
	assert.Equal(t, "Price must be greater than 0", FormatFieldError(fieldErrs[1]))
	assert.Equal(t, "Email validation failed: email", FormatFieldError(fieldErrs[2]))
}
