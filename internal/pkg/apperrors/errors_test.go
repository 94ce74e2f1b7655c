package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwrapsToCategory(t *testing.T) {
	wrapped := fmt.Errorf("creating teacher: %w", ErrMissingAttrs)

	assert.ErrorIs(t, wrapped, ErrMissingAttrs)
	assert.ErrorIs(t, wrapped, ErrValidationFailed)
	assert.NotErrorIs(t, wrapped, ErrResourceNotFound)
	assert.Equal(t, "creating teacher: Missing attrs!", wrapped.Error())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, MsgNoSuchCourse, Message(fmt.Errorf("x: %w", ErrCourseNotFound), "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", Message(NewCustomError(ErrConflict, ""), "fallback"))
}

func TestCustomErrorWithoutMessage(t *testing.T) {
	assert.Equal(t, "conflict", NewCustomError(ErrConflict, "").Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}
