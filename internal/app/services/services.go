// Package services holds the business rules between the HTTP controllers and
// the repositories:
// - AuthService: admin registration, login and token resolution
// - ProfileService: the logged in admin's own record
// - TeacherService: teacher CRUD
// - CourseService: course CRUD, keeping every course pointed at an existing teacher
package services

import (
	"errors"

	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// isNotFound reports whether err is a repository not found error.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound)
}
