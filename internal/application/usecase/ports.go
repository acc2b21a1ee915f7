package usecase

import (
	"context"
	"time"

	"studyhub-backend/internal/domain"

	"github.com/google/uuid"
)

type CourseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// SetResetCredential сохраняет хеш токена и срок жизни
	SetResetCredential(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	// FindByResetHash ищет пользователя по хешу с еще не истекшим сроком
	FindByResetHash(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error)
	// ResetPassword одним UPDATE меняет пароль и стирает токен
	ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

type EnrollmentRepository interface {
	Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	// Enroll идемпотентен: повторная вставка той же пары — no-op
	Enroll(ctx context.Context, e *domain.Enrollment) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Enrollment, error)
	CompleteLesson(ctx context.Context, item *domain.CompletedLesson) error
	CompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int, currency, receipt string) (*domain.Order, error)
}

// ReceiptSource отдает уникальный receipt для заказа в шлюзе.
// Вынесено в интерфейс, чтобы в тестах подставлять предсказуемые значения.
type ReceiptSource interface {
	NewReceipt() string
}

type EmailSender interface {
	SendResetEmail(toEmail, token string) error
	SendPaymentReceived(toEmail, name string, amount int, orderID, paymentID string) error
	SendEnrollmentEmail(toEmail, name, courseTitle string) error
}
