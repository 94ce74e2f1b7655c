package models

import "time"

// Course represents a course taught by a single teacher
type Course struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" validate:"required" example:"Intro to Go"`
	Description string    `json:"description" db:"description" validate:"required"`
	Location    string    `json:"location" db:"location" validate:"required" example:"Room 101"`
	Price       int64     `json:"price" db:"price" example:"250"`
	TeacherID   int64     `json:"teacherId" db:"teacher_id" validate:"required,gt=0" example:"1"`
	Teacher     *Teacher  `json:"teacher,omitempty"` // Relation, no db tag
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CourseUpdate holds the course fields to change. Nil fields are left untouched.
type CourseUpdate struct {
	Name        *string
	Description *string
	Location    *string
	Price       *int64
	TeacherID   *int64
}

// IsEmpty reports whether the update changes nothing.
func (u CourseUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Location == nil && u.Price == nil && u.TeacherID == nil
}

// Columns maps the present fields to their column names.
func (u CourseUpdate) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setIfPresent(cols, "name", u.Name)
	setIfPresent(cols, "description", u.Description)
	setIfPresent(cols, "location", u.Location)
	if u.Price != nil {
		cols["price"] = *u.Price
	}
	if u.TeacherID != nil {
		cols["teacher_id"] = *u.TeacherID
	}
	return cols
}

// Apply copies the present fields onto c.
func (u CourseUpdate) Apply(c *Course) {
	applyString(&c.Name, u.Name)
	applyString(&c.Description, u.Description)
	applyString(&c.Location, u.Location)
	if u.Price != nil {
		c.Price = *u.Price
	}
	if u.TeacherID != nil && *u.TeacherID != c.TeacherID {
		c.TeacherID = *u.TeacherID
		c.Teacher = nil
	}
}
