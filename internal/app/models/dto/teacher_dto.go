package dto

import "github.com/yigit/coursehub/internal/app/models"

// CreateTeacherRequest represents teacher creation data
type CreateTeacherRequest struct {
	FullName       string `json:"fullName" binding:"required" example:"Ada Lovelace"`
	Qualifications string `json:"qualifications" binding:"required" example:"PhD Mathematics"`
	Email          string `json:"email" binding:"required" example:"ada@example.com"`
	Phone          string `json:"phone" binding:"required" example:"+44 20 7946 0000"`
}

// ToModel converts the request into a teacher
func (r CreateTeacherRequest) ToModel() *models.Teacher {
	return &models.Teacher{
		FullName:       r.FullName,
		Qualifications: r.Qualifications,
		Email:          r.Email,
		Phone:          r.Phone,
	}
}

// UpdateTeacherRequest represents teacher update data. Empty fields are left untouched.
type UpdateTeacherRequest struct {
	FullName       string `json:"fullName"`
	Qualifications string `json:"qualifications"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// ToUpdate converts the request into a partial teacher update
func (r UpdateTeacherRequest) ToUpdate() models.TeacherUpdate {
	return models.TeacherUpdate{
		FullName:       optional(r.FullName),
		Qualifications: optional(r.Qualifications),
		Email:          optional(r.Email),
		Phone:          optional(r.Phone),
	}
}
