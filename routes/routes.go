// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"volunteerhub-api/config"
	"volunteerhub-api/controllers"
	"volunteerhub-api/middleware"
	"volunteerhub-api/registry"
	"volunteerhub-api/services"
	"volunteerhub-api/statistics"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, reg *registry.Registry, statsService *statistics.Service, emailService *services.EmailService, log *logrus.Logger) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService, log)
	userController := controllers.NewUserController(db)
	opportunityController := controllers.NewOpportunityController(db, reg, emailService, log)
	statisticsController := controllers.NewStatisticsController(statsService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Public reads
	v1.GET("/opportunities", opportunityController.GetOpportunities)
	v1.GET("/opportunities/:id", opportunityController.GetOpportunity)
	v1.GET("/statistics", statisticsController.GetStatistics)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
			users.PUT("/password", authController.ChangePassword)
		}

		opportunities := protected.Group("/opportunities")
		{
			opportunities.POST("/", opportunityController.CreateOpportunity)
			opportunities.PUT("/:id", opportunityController.UpdateOpportunity)
			opportunities.DELETE("/:id", opportunityController.DeleteOpportunity)
			opportunities.POST("/:id/join", opportunityController.JoinOpportunity)
			opportunities.DELETE("/:id/leave", opportunityController.LeaveOpportunity)
			opportunities.POST("/:id/image", opportunityController.UploadImage)
		}

		protected.GET("/dashboard", opportunityController.GetDashboard)
	}
}
