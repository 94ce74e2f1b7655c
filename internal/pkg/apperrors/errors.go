package apperrors

import "errors"

// Error categories. Every user facing error wraps exactly one of these.
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Messages returned to API clients in the "msg" field.
const (
	MsgSuccess          = "Success!"
	MsgMissingAttrs     = "Missing attrs!"
	MsgNothingToChange  = "Not changing anything!"
	MsgInternal         = "Internal server error"
	MsgNotLoggedIn      = "You can only do this while logged in."
	MsgUsernameTaken    = "Username already taken!"
	MsgNoSuchUser       = "No such user!"
	MsgWrongPassword    = "Wrong password!"
	MsgMissingPassword  = "Must specify new password!"
	MsgNoSuchTeacher    = "No such teacher!"
	MsgNoSuchCourse     = "No such course!"
	MsgTeacherHasCourse = "Teacher still has courses!"
	MsgPasswordTooLong  = "Password too long!"
	MsgNoSuchRoute      = "No such route!"
)

// Validation
var (
	ErrMissingAttrs    = NewCustomError(ErrValidationFailed, MsgMissingAttrs)
	ErrNothingToChange = NewCustomError(ErrValidationFailed, MsgNothingToChange)
	ErrMissingPassword = NewCustomError(ErrValidationFailed, MsgMissingPassword)
	ErrPasswordTooLong = NewCustomError(ErrValidationFailed, MsgPasswordTooLong)
	// ErrUnknownTeacher is returned when a course points at a teacher that does not exist.
	ErrUnknownTeacher = NewCustomError(ErrValidationFailed, MsgNoSuchTeacher)
	// ErrTeacherHasCourses is returned when deleting a teacher that courses still reference.
	ErrTeacherHasCourses = NewCustomError(ErrValidationFailed, MsgTeacherHasCourse)
)

// Admin errors
var (
	ErrUsernameTaken = NewCustomError(ErrConflict, MsgUsernameTaken)
	ErrAdminNotFound = NewCustomError(ErrResourceNotFound, MsgNoSuchUser)
	ErrWrongPassword = NewCustomError(ErrInvalidCredentials, MsgWrongPassword)
	ErrNotLoggedIn   = NewCustomError(ErrUnauthorized, MsgNotLoggedIn)
)

// Teacher and course errors
var (
	ErrTeacherNotFound = NewCustomError(ErrResourceNotFound, MsgNoSuchTeacher)
	ErrCourseNotFound  = NewCustomError(ErrResourceNotFound, MsgNoSuchCourse)
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// Message returns the client facing message carried by err, or fallback
// when err is not a CustomError.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
