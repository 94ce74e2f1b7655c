package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// ProfileController handles the logged in admin's own profile
type ProfileController struct {
	profileService *services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile returns the logged in admin
// @Summary Get profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Admin
// @Failure 401 {object} dto.MessageResponse "You can only do this while logged in."
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	admin, err := c.profileService.GetProfile(ctx.Request.Context(), middleware.CurrentAdmin(ctx).ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, admin)
}

// UpdateProfile changes the admin's username, full name or email
// @Summary Update profile
// @Description Changes the supplied identity fields. Empty fields are ignored.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse "Success!"
// @Failure 400 {object} dto.MessageResponse "Not changing anything! or Username already taken!"
// @Failure 401 {object} dto.MessageResponse "You can only do this while logged in."
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := middleware.BindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, err := c.profileService.UpdateProfile(ctx.Request.Context(), middleware.CurrentAdmin(ctx).ID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessage(apperrors.MsgSuccess))
}

// ChangePassword replaces the admin's password
// @Summary Change password
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "New password"
// @Success 200 {object} dto.MessageResponse "Success!"
// @Failure 400 {object} dto.MessageResponse "Must specify new password!"
// @Failure 401 {object} dto.MessageResponse "You can only do this while logged in."
// @Router /profile [patch]
func (c *ProfileController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := middleware.BindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.profileService.ChangePassword(ctx.Request.Context(), middleware.CurrentAdmin(ctx).ID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessage(apperrors.MsgSuccess))
}
