package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursehub/internal/app/models"
)

// IAdminRepository defines the persistence operations for administrators
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	Update(ctx context.Context, id int64, update models.AdminUpdate) (*models.Admin, error)
}

// ITeacherRepository defines the persistence operations for teachers
type ITeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	Update(ctx context.Context, id int64, update models.TeacherUpdate) (*models.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

// ICourseRepository defines the persistence operations for courses.
// Reads always attach the course's teacher.
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, id int64, update models.CourseUpdate) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

// Repositories holds all the repository instances
type Repositories struct {
	Admins   IAdminRepository
	Teachers ITeacherRepository
	Courses  ICourseRepository
}

// NewRepositories initializes the PostgreSQL backed repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Admins:   NewAdminRepository(db),
		Teachers: NewTeacherRepository(db),
		Courses:  NewCourseRepository(db),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
