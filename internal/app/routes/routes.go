package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// SetupRouter configures all application routes. Identity resolution runs on
// every request; mutating and profile routes additionally require a login.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	teacherController *controllers.TeacherController,
	courseController *controllers.CourseController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.Use(authMiddleware.Authenticate())
	loggedIn := authMiddleware.LoggedInOnly()

	// Unknown paths and methods answer in the same {msg} shape as every route.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewMessage(apperrors.MsgNoSuchRoute))
	})

	router.GET("/health", healthController.Health)

	// --- Auth routes ---
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	profile := router.Group("/profile", loggedIn)
	{
		profile.GET("", profileController.GetProfile)
		profile.PUT("", profileController.UpdateProfile)
		profile.PATCH("", profileController.ChangePassword)
	}

	teachers := router.Group("/teachers")
	{
		teachers.GET("", teacherController.GetAllTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.POST("", loggedIn, teacherController.CreateTeacher)
		teachers.PUT("/:id", loggedIn, teacherController.UpdateTeacher)
		teachers.DELETE("/:id", loggedIn, teacherController.DeleteTeacher)
	}

	courses := router.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", loggedIn, courseController.CreateCourse)
		courses.PUT("/:id", loggedIn, courseController.UpdateCourse)
		courses.DELETE("/:id", loggedIn, courseController.DeleteCourse)
	}
}
