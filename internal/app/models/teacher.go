package models

import "time"

// Teacher represents a teacher that can be assigned to courses
type Teacher struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	FullName       string    `json:"fullName" db:"full_name" validate:"required" example:"Ada Lovelace"`
	Qualifications string    `json:"qualifications" db:"qualifications" validate:"required" example:"PhD Mathematics"`
	Email          string    `json:"email" db:"email" validate:"required" example:"ada@example.com"`
	Phone          string    `json:"phone" db:"phone" validate:"required" example:"+44 20 7946 0000"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// TeacherUpdate holds the teacher fields to change. Nil fields are left untouched.
type TeacherUpdate struct {
	FullName       *string
	Qualifications *string
	Email          *string
	Phone          *string
}

// IsEmpty reports whether the update changes nothing.
func (u TeacherUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Qualifications == nil && u.Email == nil && u.Phone == nil
}

// Columns maps the present fields to their column names.
func (u TeacherUpdate) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setIfPresent(cols, "full_name", u.FullName)
	setIfPresent(cols, "qualifications", u.Qualifications)
	setIfPresent(cols, "email", u.Email)
	setIfPresent(cols, "phone", u.Phone)
	return cols
}

// Apply copies the present fields onto t.
func (u TeacherUpdate) Apply(t *Teacher) {
	applyString(&t.FullName, u.FullName)
	applyString(&t.Qualifications, u.Qualifications)
	applyString(&t.Email, u.Email)
	applyString(&t.Phone, u.Phone)
}
