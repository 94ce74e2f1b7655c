package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/app/repositories/memory"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	auth.BcryptCost = bcrypt.MinCost
}

type fixture struct {
	repos    *repositories.Repositories
	auth     *AuthService
	profile  *ProfileService
	teachers TeacherService
	courses  CourseService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := memory.NewRepositories()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenIssuer: "coursehub"})
	log := zerolog.Nop()
	return &fixture{
		repos:    repos,
		auth:     NewAuthService(repos.Admins, jwtService, log),
		profile:  NewProfileService(repos.Admins, log),
		teachers: NewTeacherService(repos.Teachers, log),
		courses:  NewCourseService(repos.Courses, repos.Teachers, log),
	}
}

func (f *fixture) register(t *testing.T, username string) *models.Admin {
	t.Helper()
	admin, err := f.auth.Register(context.Background(), &dto.RegisterRequest{
		Username: username,
		Password: "pw-" + username,
		FullName: "Full " + username,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return admin
}

func (f *fixture) teacher(t *testing.T, name string) *models.Teacher {
	t.Helper()
	teacher, err := f.teachers.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		FullName:       name,
		Qualifications: "MSc",
		Email:          "t@example.com",
		Phone:          "555",
	})
	require.NoError(t, err)
	return teacher
}

func (f *fixture) course(t *testing.T, teacherID int64) *models.Course {
	t.Helper()
	price := int64(100)
	course, err := f.courses.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:        "Go",
		Description: "Intro",
		Location:    "Room 1",
		Price:       &price,
		TeacherID:   &teacherID,
	})
	require.NoError(t, err)
	return course
}

func int64Ptr(v int64) *int64 { return &v }

func TestRegisterStoresDigest(t *testing.T) {
	f := newFixture(t)
	admin := f.register(t, "alice")

	stored, err := f.repos.Admins.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, stored.ID)
	assert.NotEqual(t, "pw-alice", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "pw-alice"))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice")

	_, err := f.auth.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Password: "x", FullName: "Other", Email: "o@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	f := newFixture(t)

	cases := map[string]*dto.RegisterRequest{
		"nil":         nil,
		"no username": {Password: "p", FullName: "f", Email: "e"},
		"no password": {Username: "u", FullName: "f", Email: "e"},
		"no fullName": {Username: "u", Password: "p", Email: "e"},
		"no email":    {Username: "u", Password: "p", FullName: "f"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.auth.Register(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrMissingAttrs)
		})
	}
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	admin := f.register(t, "alice")
	ctx := context.Background()

	token, err := f.auth.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "pw-alice"})
	require.NoError(t, err)

	resolved, err := f.auth.ResolveIdentity(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, resolved.ID)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrWrongPassword)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Username: "bob", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Username: "alice"})
	assert.ErrorIs(t, err, apperrors.ErrMissingAttrs)
}

func TestResolveIdentityRejectsBadToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.ResolveIdentity(context.Background(), "garbage")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	f.register(t, "bob")
	ctx := context.Background()

	_, err := f.profile.UpdateProfile(ctx, alice.ID, dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNothingToChange)

	_, err = f.profile.UpdateProfile(ctx, alice.ID, dto.UpdateProfileRequest{Username: "bob"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	// Keeping one's own username is not a conflict.
	updated, err := f.profile.UpdateProfile(ctx, alice.ID, dto.UpdateProfileRequest{Username: "alice", Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "Full alice", updated.FullName)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	ctx := context.Background()

	err := f.profile.ChangePassword(ctx, alice.ID, dto.ChangePasswordRequest{})
	assert.ErrorIs(t, err, apperrors.ErrMissingPassword)

	stored, err := f.profile.GetProfile(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.Password, "pw-alice"), "rejected change must not write")

	require.NoError(t, f.profile.ChangePassword(ctx, alice.ID, dto.ChangePasswordRequest{Password: "fresh"}))

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "fresh"})
	assert.NoError(t, err)
	_, err = f.auth.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "pw-alice"})
	assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
}

func TestTeacherLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	teacher := f.teacher(t, "Ada")

	_, err := f.teachers.UpdateTeacher(ctx, teacher.ID, dto.UpdateTeacherRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNothingToChange)

	_, err = f.teachers.UpdateTeacher(ctx, 999, dto.UpdateTeacherRequest{Phone: "1"})
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)

	updated, err := f.teachers.UpdateTeacher(ctx, teacher.ID, dto.UpdateTeacherRequest{Phone: "777"})
	require.NoError(t, err)
	assert.Equal(t, "777", updated.Phone)
	assert.Equal(t, "Ada", updated.FullName)

	require.NoError(t, f.teachers.DeleteTeacher(ctx, teacher.ID))
	assert.ErrorIs(t, f.teachers.DeleteTeacher(ctx, teacher.ID), apperrors.ErrTeacherNotFound)
}

func TestCreateTeacherMissingAttrs(t *testing.T) {
	f := newFixture(t)

	_, err := f.teachers.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{FullName: "Ada"})
	assert.ErrorIs(t, err, apperrors.ErrMissingAttrs)
}

func TestDeleteTeacherWithCourses(t *testing.T) {
	f := newFixture(t)
	teacher := f.teacher(t, "Ada")
	f.course(t, teacher.ID)

	err := f.teachers.DeleteTeacher(context.Background(), teacher.ID)
	assert.ErrorIs(t, err, apperrors.ErrTeacherHasCourses)
}

func TestCreateCourse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	teacher := f.teacher(t, "Ada")

	_, err := f.courses.CreateCourse(ctx, &dto.CreateCourseRequest{
		Name: "Go", Description: "d", Location: "l", Price: int64Ptr(0), TeacherID: int64Ptr(404),
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownTeacher)

	_, err = f.courses.CreateCourse(ctx, &dto.CreateCourseRequest{
		Name: "Go", Location: "l", Price: int64Ptr(0), TeacherID: &teacher.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrMissingAttrs)

	_, err = f.courses.CreateCourse(ctx, &dto.CreateCourseRequest{
		Name: "Go", Description: "d", Location: "l", TeacherID: &teacher.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrMissingAttrs)

	free, err := f.courses.CreateCourse(ctx, &dto.CreateCourseRequest{
		Name: "Go", Description: "d", Location: "l", Price: int64Ptr(0), TeacherID: &teacher.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), free.Price)

	all, err := f.courses.GetAllCourses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Teacher)
	assert.Equal(t, "Ada", all[0].Teacher.FullName)
}

func TestUpdateCourse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.teacher(t, "Ada")
	grace := f.teacher(t, "Grace")
	course := f.course(t, ada.ID)

	_, err := f.courses.UpdateCourse(ctx, course.ID, dto.UpdateCourseRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNothingToChange)

	_, err = f.courses.UpdateCourse(ctx, 999, dto.UpdateCourseRequest{Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = f.courses.UpdateCourse(ctx, course.ID, dto.UpdateCourseRequest{TeacherID: int64Ptr(999)})
	assert.ErrorIs(t, err, apperrors.ErrUnknownTeacher)

	updated, err := f.courses.UpdateCourse(ctx, course.ID, dto.UpdateCourseRequest{
		Price:     int64Ptr(0),
		TeacherID: &grace.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Price)
	assert.Equal(t, "Go", updated.Name)
	assert.Equal(t, grace.ID, updated.TeacherID)
	require.NotNil(t, updated.Teacher)
	assert.Equal(t, "Grace", updated.Teacher.FullName)

	require.NoError(t, f.courses.DeleteCourse(ctx, course.ID))
	assert.ErrorIs(t, f.courses.DeleteCourse(ctx, course.ID), apperrors.ErrCourseNotFound)
	require.NoError(t, f.teachers.DeleteTeacher(ctx, ada.ID))
}
