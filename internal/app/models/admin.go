package models

import (
	"time"
)

// Admin defines the administrator model based on the 'admins' table
type Admin struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" validate:"required" example:"jdoe"`
	Password  string    `json:"-" db:"password" validate:"required"` // bcrypt digest, never serialized
	FullName  string    `json:"fullName" db:"full_name" validate:"required" example:"John Doe"`
	Email     string    `json:"email" db:"email" validate:"required" example:"jdoe@example.com"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AdminUpdate holds the admin fields to change. Nil fields are left untouched.
type AdminUpdate struct {
	Username *string
	FullName *string
	Email    *string
	Password *string // bcrypt digest
}

// IsEmpty reports whether the update changes nothing.
func (u AdminUpdate) IsEmpty() bool {
	return u.Username == nil && u.FullName == nil && u.Email == nil && u.Password == nil
}

// Columns maps the present fields to their column names.
func (u AdminUpdate) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setIfPresent(cols, "username", u.Username)
	setIfPresent(cols, "full_name", u.FullName)
	setIfPresent(cols, "email", u.Email)
	setIfPresent(cols, "password", u.Password)
	return cols
}

// Apply copies the present fields onto a.
func (u AdminUpdate) Apply(a *Admin) {
	applyString(&a.Username, u.Username)
	applyString(&a.FullName, u.FullName)
	applyString(&a.Email, u.Email)
	applyString(&a.Password, u.Password)
}
