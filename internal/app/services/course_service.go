package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courseRepo  repositories.ICourseRepository
	teacherRepo repositories.ITeacherRepository
	logger      zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, teacherRepo repositories.ITeacherRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

// ensureTeacherExists maps a missing teacher to a validation error so the
// caller sees 400 instead of 404.
func (s *courseServiceImpl) ensureTeacherExists(ctx context.Context, teacherID int64) error {
	if _, err := s.teacherRepo.GetByID(ctx, teacherID); err != nil {
		if isNotFound(err) {
			return apperrors.ErrUnknownTeacher
		}
		return fmt.Errorf("failed to look up teacher: %w", err)
	}
	return nil
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if req == nil || req.Price == nil || req.TeacherID == nil {
		return nil, apperrors.ErrMissingAttrs
	}

	course := req.ToModel()
	if err := validation.Struct(course); err != nil {
		return nil, err
	}
	if err := s.ensureTeacherExists(ctx, course.TeacherID); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", course.ID).Int64("teacherID", course.TeacherID).Msg("Course created")
	return course, nil
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	update := req.ToUpdate()
	if update.IsEmpty() {
		return nil, apperrors.ErrNothingToChange
	}

	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if update.TeacherID != nil {
		if err := s.ensureTeacherExists(ctx, *update.TeacherID); err != nil {
			return nil, err
		}
	}

	course, err := s.courseRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", id).Msg("Course updated")
	return course, nil
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}
