// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles admin registration
// @Summary Register a new admin
// @Description Creates a new admin account. All four fields are required and the username must be unused.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Admin registration information"
// @Success 200 {object} dto.MessageResponse "Success!"
// @Failure 400 {object} dto.MessageResponse "Missing attrs! or Username already taken!"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		c.logger.Debug().Err(err).Msg("Invalid registration payload")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, err := c.authService.Register(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessage(apperrors.MsgSuccess))
}

// Login handles admin login
// @Summary Log in
// @Description Checks the credentials and returns a bearer token for guarded routes
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Success!"
// @Failure 400 {object} dto.MessageResponse "Missing attrs! or Wrong password!"
// @Failure 404 {object} dto.MessageResponse "No such user!"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{Msg: apperrors.MsgSuccess, Token: token})
}
