package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func newTeacher() *models.Teacher {
	return &models.Teacher{FullName: "Ada Lovelace", Qualifications: "PhD", Email: "ada@example.com", Phone: "555"}
}

func TestAdminUsernameIsUnique(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	first := &models.Admin{Username: "a", Password: "digest", FullName: "A", Email: "a@a"}
	require.NoError(t, repos.Admins.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	err := repos.Admins.Create(ctx, &models.Admin{Username: "a", Password: "digest", FullName: "B", Email: "b@b"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	second := &models.Admin{Username: "b", Password: "digest", FullName: "B", Email: "b@b"}
	require.NoError(t, repos.Admins.Create(ctx, second))

	_, err = repos.Admins.Update(ctx, second.ID, models.AdminUpdate{Username: strPtr("a")})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	// Renaming to your own username is not a conflict.
	_, err = repos.Admins.Update(ctx, second.ID, models.AdminUpdate{Username: strPtr("b")})
	assert.NoError(t, err)
}

func TestConcurrentRegistrationKeepsOneAdmin(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repos.Admins.Create(ctx, &models.Admin{Username: "race", Password: "d", FullName: "R", Email: "r@r"})
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	}
	assert.Equal(t, 1, succeeded)
}

func TestAdminCreateRequiresFields(t *testing.T) {
	err := NewRepositories().Admins.Create(context.Background(), &models.Admin{Username: "a"})
	assert.ErrorIs(t, err, apperrors.ErrMissingAttrs)
}

func TestAdminLookups(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()
	admin := &models.Admin{Username: "a", Password: "digest", FullName: "A", Email: "a@a"}
	require.NoError(t, repos.Admins.Create(ctx, admin))

	byName, err := repos.Admins.GetByUsername(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, byName.ID)

	_, err = repos.Admins.GetByUsername(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
	_, err = repos.Admins.GetByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)

	updated, err := repos.Admins.Update(ctx, admin.ID, models.AdminUpdate{Email: strPtr("new@a")})
	require.NoError(t, err)
	assert.Equal(t, "new@a", updated.Email)
	assert.Equal(t, "A", updated.FullName)
	assert.Equal(t, "a", updated.Username)
}

func TestTeacherLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	teacher := newTeacher()
	require.NoError(t, repos.Teachers.Create(ctx, teacher))
	assert.False(t, teacher.CreatedAt.IsZero())

	updated, err := repos.Teachers.Update(ctx, teacher.ID, models.TeacherUpdate{Phone: strPtr("777")})
	require.NoError(t, err)
	assert.Equal(t, "777", updated.Phone)
	assert.Equal(t, teacher.FullName, updated.FullName)
	assert.Equal(t, teacher.Qualifications, updated.Qualifications)
	assert.Equal(t, teacher.Email, updated.Email)

	_, err = repos.Teachers.Update(ctx, teacher.ID, models.TeacherUpdate{})
	assert.ErrorIs(t, err, apperrors.ErrNothingToChange)
	_, err = repos.Teachers.Update(ctx, 42, models.TeacherUpdate{Phone: strPtr("1")})
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)

	all, err := repos.Teachers.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, repos.Teachers.Delete(ctx, teacher.ID))
	assert.ErrorIs(t, repos.Teachers.Delete(ctx, teacher.ID), apperrors.ErrTeacherNotFound)
}

func TestCourseReferencesExistingTeacher(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	orphan := &models.Course{Name: "Go", Description: "d", Location: "l", Price: 10, TeacherID: 5}
	assert.ErrorIs(t, repos.Courses.Create(ctx, orphan), apperrors.ErrUnknownTeacher)

	teacher := newTeacher()
	require.NoError(t, repos.Teachers.Create(ctx, teacher))

	course := &models.Course{Name: "Go", Description: "d", Location: "l", Price: 10, TeacherID: teacher.ID}
	require.NoError(t, repos.Courses.Create(ctx, course))

	all, err := repos.Courses.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Teacher)
	assert.Equal(t, teacher.FullName, all[0].Teacher.FullName)

	_, err = repos.Courses.Update(ctx, course.ID, models.CourseUpdate{TeacherID: int64Ptr(99)})
	assert.ErrorIs(t, err, apperrors.ErrUnknownTeacher)

	// Teachers with courses cannot be removed.
	assert.ErrorIs(t, repos.Teachers.Delete(ctx, teacher.ID), apperrors.ErrTeacherHasCourses)

	require.NoError(t, repos.Courses.Delete(ctx, course.ID))
	assert.ErrorIs(t, repos.Courses.Delete(ctx, course.ID), apperrors.ErrCourseNotFound)
	assert.NoError(t, repos.Teachers.Delete(ctx, teacher.ID))
}

func TestCourseUpdateMovesTeacher(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	first, second := newTeacher(), newTeacher()
	second.FullName = "Grace Hopper"
	require.NoError(t, repos.Teachers.Create(ctx, first))
	require.NoError(t, repos.Teachers.Create(ctx, second))

	course := &models.Course{Name: "Go", Description: "d", Location: "l", Price: 10, TeacherID: first.ID}
	require.NoError(t, repos.Courses.Create(ctx, course))

	updated, err := repos.Courses.Update(ctx, course.ID, models.CourseUpdate{TeacherID: &second.ID, Price: int64Ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Price)
	assert.Equal(t, "Go", updated.Name)
	require.NotNil(t, updated.Teacher)
	assert.Equal(t, "Grace Hopper", updated.Teacher.FullName)

	fetched, err := repos.Courses.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, fetched.TeacherID)
}
