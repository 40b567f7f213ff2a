package routes

import (
	adminapi "eduplatform/internal/api/admin"
	authapi "eduplatform/internal/api/auth"
	billingapi "eduplatform/internal/api/billing"
	materialsapi "eduplatform/internal/api/materials"
	usersapi "eduplatform/internal/api/users"
	"eduplatform/internal/app/http/middleware"
	"eduplatform/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())

	auth.GET("/profile", usersapi.GetProfile)
	auth.PUT("/profile", usersapi.UpdateProfile)
	auth.PATCH("/profile", usersapi.UpdateProfile)
	auth.DELETE("/profile", usersapi.DeleteProfile)
	auth.POST("/change-password", authapi.ChangePassword)
	auth.GET("/users", usersapi.ListUsers)

	auth.GET("/courses", materialsapi.ListCourses)
	auth.POST("/courses", materialsapi.CreateCourse)
	auth.GET("/courses/:id", materialsapi.GetCourse)
	auth.PUT("/courses/:id", materialsapi.UpdateCourse)
	auth.PATCH("/courses/:id", materialsapi.UpdateCourse)
	auth.DELETE("/courses/:id", materialsapi.DeleteCourse)
	auth.POST("/courses/:id/pay", billingapi.PayCourse)

	auth.GET("/lessons", materialsapi.ListLessons)
	auth.POST("/lessons", materialsapi.CreateLesson)
	auth.GET("/lessons/:id", materialsapi.GetLesson)
	auth.PUT("/lessons/:id", materialsapi.UpdateLesson)
	auth.PATCH("/lessons/:id", materialsapi.UpdateLesson)
	auth.DELETE("/lessons/:id", materialsapi.DeleteLesson)

	auth.POST("/subscriptions", materialsapi.ToggleSubscription)

	auth.GET("/payments", billingapi.GetPaymentHistory)
	auth.GET("/payments/:id", billingapi.GetPayment)

	// Staff routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleStaff))
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.POST("/payments", adminapi.CreateManualPayment)
	admin.GET("/stats", adminapi.GetAdminStats)
}
