// Package memory provides a process-local implementation of the repository
// interfaces. It backs the "memory" database driver and the HTTP tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// Store keeps every table in maps guarded by a single lock, so the
// uniqueness and reference checks below are atomic with their writes.
type Store struct {
	mu       sync.RWMutex
	admins   map[int64]models.Admin
	teachers map[int64]models.Teacher
	courses  map[int64]models.Course
	lastID   map[string]int64
	now      func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		admins:   map[int64]models.Admin{},
		teachers: map[int64]models.Teacher{},
		courses:  map[int64]models.Course{},
		lastID:   map[string]int64{},
		now:      time.Now,
	}
}

// NewRepositories wires a fresh store into the repository set
func NewRepositories() *repositories.Repositories {
	return NewStore().Repositories()
}

// Repositories exposes the store through the repository interfaces
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		Admins:   &adminRepository{s},
		Teachers: &teacherRepository{s},
		Courses:  &courseRepository{s},
	}
}

func (s *Store) nextID(table string) int64 {
	s.lastID[table]++
	return s.lastID[table]
}

type adminRepository struct{ s *Store }

func (r *adminRepository) Create(_ context.Context, admin *models.Admin) error {
	if err := validation.Struct(admin); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.usernameTaken(admin.Username, 0) {
		return apperrors.ErrUsernameTaken
	}
	admin.ID = r.s.nextID("admins")
	admin.CreatedAt = r.s.now()
	admin.UpdatedAt = admin.CreatedAt
	r.s.admins[admin.ID] = *admin
	return nil
}

func (r *adminRepository) usernameTaken(username string, exceptID int64) bool {
	for id, a := range r.s.admins {
		if id != exceptID && a.Username == username {
			return true
		}
	}
	return false
}

func (r *adminRepository) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	admin, ok := r.s.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return &admin, nil
}

func (r *adminRepository) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, admin := range r.s.admins {
		if admin.Username == username {
			return &admin, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (r *adminRepository) Update(_ context.Context, id int64, update models.AdminUpdate) (*models.Admin, error) {
	if update.IsEmpty() {
		return nil, apperrors.ErrNothingToChange
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	admin, ok := r.s.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	if update.Username != nil && r.usernameTaken(*update.Username, id) {
		return nil, apperrors.ErrUsernameTaken
	}
	update.Apply(&admin)
	admin.UpdatedAt = r.s.now()
	r.s.admins[id] = admin
	return &admin, nil
}

type teacherRepository struct{ s *Store }

func (r *teacherRepository) Create(_ context.Context, teacher *models.Teacher) error {
	if err := validation.Struct(teacher); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	teacher.ID = r.s.nextID("teachers")
	teacher.CreatedAt = r.s.now()
	teacher.UpdatedAt = teacher.CreatedAt
	r.s.teachers[teacher.ID] = *teacher
	return nil
}

func (r *teacherRepository) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	teacher, ok := r.s.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return &teacher, nil
}

func (r *teacherRepository) GetAll(_ context.Context) ([]*models.Teacher, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	teachers := make([]*models.Teacher, 0, len(r.s.teachers))
	for _, t := range r.s.teachers {
		teacher := t
		teachers = append(teachers, &teacher)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

func (r *teacherRepository) Update(_ context.Context, id int64, update models.TeacherUpdate) (*models.Teacher, error) {
	if update.IsEmpty() {
		return nil, apperrors.ErrNothingToChange
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	teacher, ok := r.s.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	update.Apply(&teacher)
	teacher.UpdatedAt = r.s.now()
	r.s.teachers[id] = teacher
	return &teacher, nil
}

func (r *teacherRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.teachers[id]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	for _, c := range r.s.courses {
		if c.TeacherID == id {
			return apperrors.ErrTeacherHasCourses
		}
	}
	delete(r.s.teachers, id)
	return nil
}

type courseRepository struct{ s *Store }

// withTeacher returns a copy of c with its teacher attached. Callers hold the lock.
func (r *courseRepository) withTeacher(c models.Course) *models.Course {
	if t, ok := r.s.teachers[c.TeacherID]; ok {
		c.Teacher = &t
	}
	return &c
}

func (r *courseRepository) Create(_ context.Context, course *models.Course) error {
	if err := validation.Struct(course); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.teachers[course.TeacherID]; !ok {
		return apperrors.ErrUnknownTeacher
	}
	course.ID = r.s.nextID("courses")
	course.CreatedAt = r.s.now()
	course.UpdatedAt = course.CreatedAt
	course.Teacher = nil
	r.s.courses[course.ID] = *course
	return nil
}

func (r *courseRepository) GetByID(_ context.Context, id int64) (*models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	course, ok := r.s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return r.withTeacher(course), nil
}

func (r *courseRepository) GetAll(_ context.Context) ([]*models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	courses := make([]*models.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		courses = append(courses, r.withTeacher(c))
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (r *courseRepository) Update(_ context.Context, id int64, update models.CourseUpdate) (*models.Course, error) {
	if update.IsEmpty() {
		return nil, apperrors.ErrNothingToChange
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	course, ok := r.s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	if update.TeacherID != nil {
		if _, ok := r.s.teachers[*update.TeacherID]; !ok {
			return nil, apperrors.ErrUnknownTeacher
		}
	}
	update.Apply(&course)
	course.UpdatedAt = r.s.now()
	r.s.courses[id] = course
	return r.withTeacher(course), nil
}

func (r *courseRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.s.courses, id)
	return nil
}
