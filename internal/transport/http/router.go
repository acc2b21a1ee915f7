package handlers

import (
	"time"

	"studyhub-backend/internal/application/usecase"
	"studyhub-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	authHandler *AuthHandler,
	paymentHandler *PaymentHandler,
	courseHandler *CourseHandler,
	limiter *middleware.RateLimiter,
	auth *usecase.AuthUseCase,
	frontendURL string,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{frontendURL}
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
			authGroup.POST("/forgot-password", limiter.Limit("forgot_pass", 1, 5*time.Minute), authHandler.ForgotPassword)
			authGroup.POST("/reset-password", authHandler.ResetPassword)
		}

		payments := api.Group("/payments")
		payments.Use(middleware.AuthMiddleware(auth))
		{
			payments.POST("/capture", limiter.Limit("capture", 10, 1*time.Minute), paymentHandler.Capture)
			payments.POST("/verify", paymentHandler.Verify)
			payments.POST("/success-email", paymentHandler.SendSuccessEmail)
		}

		courses := api.Group("/courses")
		courses.Use(middleware.AuthMiddleware(auth))
		{
			courses.GET("", courseHandler.List)
			courses.GET("/enrolled", courseHandler.Enrolled)
			courses.GET("/:id", courseHandler.GetOne)
			courses.GET("/:id/progress", courseHandler.Progress)
			courses.POST("/:id/lessons/:lessonId/complete", courseHandler.CompleteLesson)
		}
	}

	return r
}
