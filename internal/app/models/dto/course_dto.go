package dto

import "github.com/yigit/coursehub/internal/app/models"

// CreateCourseRequest represents course creation data.
// The teacherId key is matched case-insensitively, so "TeacherId" binds too.
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required" example:"Intro to Go"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required" example:"Room 101"`
	Price       *int64 `json:"price" binding:"required" example:"250"`
	TeacherID   *int64 `json:"teacherId" binding:"required" example:"1"`
}

// ToModel converts the request into a course
func (r CreateCourseRequest) ToModel() *models.Course {
	course := &models.Course{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
	}
	if r.Price != nil {
		course.Price = *r.Price
	}
	if r.TeacherID != nil {
		course.TeacherID = *r.TeacherID
	}
	return course
}

// UpdateCourseRequest represents course update data. Empty strings and
// null numbers are left untouched.
type UpdateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Price       *int64 `json:"price"`
	TeacherID   *int64 `json:"teacherId"`
}

// ToUpdate converts the request into a partial course update
func (r UpdateCourseRequest) ToUpdate() models.CourseUpdate {
	return models.CourseUpdate{
		Name:        optional(r.Name),
		Description: optional(r.Description),
		Location:    optional(r.Location),
		Price:       r.Price,
		TeacherID:   r.TeacherID,
	}
}
