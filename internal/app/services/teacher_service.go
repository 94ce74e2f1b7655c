package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	UpdateTeacher(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

type teacherServiceImpl struct {
	teacherRepo repositories.ITeacherRepository
	logger      zerolog.Logger
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo repositories.ITeacherRepository, logger zerolog.Logger) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	if req == nil {
		return nil, apperrors.ErrMissingAttrs
	}

	teacher := req.ToModel()
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("teacherID", teacher.ID).Msg("Teacher created")
	return teacher, nil
}

func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	update := req.ToUpdate()
	if update.IsEmpty() {
		return nil, apperrors.ErrNothingToChange
	}

	teacher, err := s.teacherRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("teacherID", id).Msg("Teacher updated")
	return teacher, nil
}

func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("teacherID", id).Msg("Teacher deleted")
	return nil
}
