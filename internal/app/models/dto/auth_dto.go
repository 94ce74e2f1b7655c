package dto

import "github.com/yigit/coursehub/internal/app/models"

// RegisterRequest represents an admin registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"hunter2"`
	FullName string `json:"fullName" binding:"required" example:"John Doe"`
	Email    string `json:"email" binding:"required" example:"jdoe@example.com"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"hunter2"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Msg   string `json:"msg" example:"Success!"`
	Token string `json:"token"`
}

// UpdateProfileRequest represents identity field changes. Empty fields are left untouched.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ToUpdate converts the request into a partial admin update
func (r UpdateProfileRequest) ToUpdate() models.AdminUpdate {
	return models.AdminUpdate{
		Username: optional(r.Username),
		FullName: optional(r.FullName),
		Email:    optional(r.Email),
	}
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	Password string `json:"password"`
}
