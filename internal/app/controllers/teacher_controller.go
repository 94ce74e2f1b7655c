package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// GetAllTeachers retrieves all teachers
// @Summary Get all teachers
// @Tags teachers
// @Produce json
// @Success 200 {array} models.Teacher
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, teachers)
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher details
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} models.Teacher
// @Failure 404 {object} dto.MessageResponse "No such teacher!"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, err := parseID(ctx, apperrors.ErrTeacherNotFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, teacher)
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 200 {object} dto.MessageResponse "Success!"
// @Failure 400 {object} dto.MessageResponse "Missing attrs!"
// @Failure 401 {object} dto.MessageResponse "You can only do this while logged in."
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, err := c.teacherService.CreateTeacher(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessage(apperrors.MsgSuccess))
}

// UpdateTeacher updates an existing teacher
// @Summary Update a teacher
// @Description Changes the supplied fields. Empty fields are ignored.
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Param request body dto.UpdateTeacherRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse "Success!"
// @Failure 400 {object} dto.MessageResponse "Not changing anything!"
// @Failure 401 {object} dto.MessageResponse "You can only do this while logged in."
// @Failure 404 {object} dto.MessageResponse "No such teacher!"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := middleware.BindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if req.ToUpdate().IsEmpty() {
		middleware.HandleAPIError(ctx, apperrors.ErrNothingToChange)
		return
	}

	id, err := parseID(ctx, apperrors.ErrTeacherNotFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, err := c.teacherService.UpdateTeacher(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessage(apperrors.MsgSuccess))
}

// DeleteTeacher deletes a teacher
// @Summary Delete a teacher
// @Description Teachers still assigned to a course cannot be deleted
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse "Success!"
// @Failure 400 {object} dto.MessageResponse "Teacher still has courses!"
// @Failure 401 {object} dto.MessageResponse "You can only do this while logged in."
// @Failure 404 {object} dto.MessageResponse "No such teacher!"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, err := parseID(ctx, apperrors.ErrTeacherNotFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessage(apperrors.MsgSuccess))
}
