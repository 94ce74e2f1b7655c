package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

const courseTeacherConstraint = "courses_teacher_id_fkey"

// Course columns followed by the joined teacher's columns.
var courseWithTeacherColumns = []string{
	"c.id", "c.name", "c.description", "c.location", "c.price", "c.teacher_id", "c.created_at", "c.updated_at",
	"t.id", "t.full_name", "t.qualifications", "t.email", "t.phone", "t.created_at", "t.updated_at",
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanCourseWithTeacher(row pgx.Row) (*models.Course, error) {
	course := &models.Course{Teacher: &models.Teacher{}}
	t := course.Teacher
	err := row.Scan(
		&course.ID, &course.Name, &course.Description, &course.Location, &course.Price, &course.TeacherID, &course.CreatedAt, &course.UpdatedAt,
		&t.ID, &t.FullName, &t.Qualifications, &t.Email, &t.Phone, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (r *CourseRepository) selectWithTeacher() squirrel.SelectBuilder {
	return r.sb.Select(courseWithTeacherColumns...).
		From("courses c").
		Join("teachers t ON t.id = c.teacher_id")
}

// Create inserts a new course. The referenced teacher must exist.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := validation.Struct(course); err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("courses").
		Columns("name", "description", "location", "price", "teacher_id").
		Values(course.Name, course.Description, course.Location, course.Price, course.TeacherID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, courseTeacherConstraint) {
			return apperrors.ErrUnknownTeacher
		}
		if dberrors.IsNotNullViolation(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrMissingAttrs, err)
		}
		logger.Error().Err(err).Int64("teacherID", course.TeacherID).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course and its teacher by course ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectWithTeacher().
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourseWithTeacher(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses with their teachers
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.selectWithTeacher().
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourseWithTeacher(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during get all")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Update applies the present fields of update in a single statement and
// returns the course with its (possibly new) teacher.
func (r *CourseRepository) Update(ctx context.Context, id int64, update models.CourseUpdate) (*models.Course, error) {
	if update.IsEmpty() {
		return nil, apperrors.ErrNothingToChange
	}

	sql, args, err := r.sb.Update("courses").
		SetMap(update.Columns()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return nil, fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, courseTeacherConstraint) {
			return nil, apperrors.ErrUnknownTeacher
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing update course query")
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrCourseNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
