package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/careerconnect/backend/internal/app/auth"
	"github.com/careerconnect/backend/internal/app/controllers"
	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/middleware"
	pkgauth "github.com/careerconnect/backend/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	mentorController *controllers.MentorController,
	communicationController *controllers.CommunicationController,
	adminController *controllers.AdminController,
	jwtService *pkgauth.JWTService,
	authz *appauth.AuthorizationService,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/password-reset", authController.RequestPasswordReset)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService, authz))
	{
		authenticated.GET("/auth/me", authController.Me)

		// Student-only routes
		students := authenticated.Group("/students")
		students.Use(middleware.RoleRequired(models.RoleStudent))
		{
			students.GET("/profile", studentController.GetProfile)
			students.PUT("/profile", studentController.UpdateProfile)
			students.POST("/assessments", studentController.SubmitAssessment)
			students.GET("/assessments", studentController.ListAssessments)
			students.GET("/progress", studentController.ListTrackers)
			students.POST("/progress", studentController.CreateTracker)
			students.PUT("/progress/:trackerId", studentController.UpdateTracker)
		}

		// Mentor discovery is open to every authenticated role
		mentors := authenticated.Group("/mentors")
		{
			mentors.GET("/search", mentorController.Search)
			mentors.GET("/:id", mentorController.GetMentor)

			mentorOnly := mentors.Group("")
			mentorOnly.Use(middleware.RoleRequired(models.RoleMentor))
			{
				mentorOnly.GET("/profile", mentorController.GetProfile)
				mentorOnly.PUT("/profile", mentorController.UpdateProfile)
				mentorOnly.GET("/resources", mentorController.ListResources)
				mentorOnly.POST("/resources", mentorController.CreateResource)
				mentorOnly.GET("/requests", mentorController.ListRequests)
				mentorOnly.PUT("/requests/:id", mentorController.RespondToRequest)
			}

			studentOnly := mentors.Group("")
			studentOnly.Use(middleware.RoleRequired(models.RoleStudent))
			{
				studentOnly.POST("/request", mentorController.RequestMentorship)
			}
		}

		// Messages and sessions; role asymmetry enforced inside the service
		communications := authenticated.Group("/communications")
		{
			communications.GET("/messages", communicationController.ListMessages)
			communications.GET("/sessions", communicationController.ListSessions)
			communications.PUT("/sessions/:id", communicationController.UpdateSession)

			commStudent := communications.Group("")
			commStudent.Use(middleware.RoleRequired(models.RoleStudent))
			{
				commStudent.POST("/messages", communicationController.SendMessage)
				commStudent.POST("/sessions", communicationController.CreateSession)
			}

			commMentor := communications.Group("")
			commMentor.Use(middleware.RoleRequired(models.RoleMentor))
			{
				commMentor.PUT("/messages/:id/read", communicationController.MarkMessageRead)
			}
		}

		// Admin-only routes
		admin := authenticated.Group("/admin")
		admin.Use(middleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/users", adminController.ListUsers)
			admin.DELETE("/users/:id", adminController.DeleteUser)
			admin.PUT("/mentors/verify/:mentorId", adminController.VerifyMentor)
			admin.GET("/mentors/pending", adminController.ListPendingMentors)
			admin.GET("/dashboard/stats", adminController.GetDashboardStats)
			admin.GET("/reports/sessions", adminController.GetSessionReport)
			admin.PUT("/profile", adminController.UpdateProfile)
		}
	}
}
