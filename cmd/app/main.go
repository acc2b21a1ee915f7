package main

import (
	"fmt"
	"log"

	"studyhub-backend/config"
	"studyhub-backend/internal/application/usecase"
	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/infrastructure/email"
	"studyhub-backend/internal/infrastructure/gateway"
	"studyhub-backend/internal/infrastructure/repository"
	"studyhub-backend/internal/infrastructure/security"
	"studyhub-backend/internal/middleware"
	handlers "studyhub-backend/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("DB Connection failed:", err)
	}

	// Миграция
	db.AutoMigrate(&domain.User{}, &domain.Course{}, &domain.Lesson{}, &domain.Enrollment{}, &domain.CompletedLesson{})

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollRepo := repository.NewEnrollmentRepository(db)

	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager(cfg.AccessSecret)
	verifier := security.NewSignatureVerifier(cfg.RazorpaySecret)

	razorpay := gateway.NewRazorpayClient(cfg.RazorpayKey, cfg.RazorpaySecret)
	receipts := gateway.NewUUIDReceiptSource()
	sender := email.NewEmailSender(cfg.SendgridAPIKey, cfg.SMTPEmail, cfg.FrontendURL)

	authUC := usecase.NewAuthUseCase(userRepo, hasher, tokenManager)
	resetUC := usecase.NewResetUseCase(userRepo, hasher, sender)
	paymentUC := usecase.NewPaymentUseCase(courseRepo, userRepo, enrollRepo, razorpay, receipts, verifier, sender)
	courseUC := usecase.NewCourseUseCase(courseRepo, enrollRepo)

	limiter := middleware.NewRateLimiter(redisClient)

	r := handlers.NewRouter(
		handlers.NewAuthHandler(authUC, resetUC),
		handlers.NewPaymentHandler(paymentUC),
		handlers.NewCourseHandler(courseUC),
		limiter,
		authUC,
		cfg.FrontendURL,
	)

	log.Printf("StudyHub backend running on %s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("Server failed:", err)
	}
}
