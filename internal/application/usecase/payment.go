package usecase

import (
	"context"
	"log"
	"time"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/infrastructure/security"

	"github.com/google/uuid"
)

const orderCurrency = "INR"

type PaymentUseCase struct {
	courseRepo  CourseRepository
	userRepo    UserRepository
	enrollRepo  EnrollmentRepository
	gateway     PaymentGateway
	receipts    ReceiptSource
	verifier    *security.SignatureVerifier
	emailSender EmailSender
}

func NewPaymentUseCase(
	cr CourseRepository,
	ur UserRepository,
	er EnrollmentRepository,
	gw PaymentGateway,
	rs ReceiptSource,
	sv *security.SignatureVerifier,
	es EmailSender,
) *PaymentUseCase {
	return &PaymentUseCase{
		courseRepo:  cr,
		userRepo:    ur,
		enrollRepo:  er,
		gateway:     gw,
		receipts:    rs,
		verifier:    sv,
		emailSender: es,
	}
}

// Capture считает сумму корзины и создает заказ в шлюзе.
// Локальное состояние здесь не меняется — только чтение.
func (uc *PaymentUseCase) Capture(ctx context.Context, userID uuid.UUID, courseIDs []uuid.UUID) (*domain.Order, error) {
	if len(courseIDs) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	total := 0
	for _, courseID := range courseIDs {
		course, err := uc.courseRepo.GetByID(ctx, courseID)
		if err != nil {
			return nil, err
		}

		enrolled, err := uc.enrollRepo.Exists(ctx, userID, courseID)
		if err != nil {
			return nil, err
		}
		if enrolled {
			return nil, domain.ErrAlreadyEnrolled
		}

		total += course.Price
	}

	// Шлюз принимает сумму в минимальных единицах (пайсах)
	order, err := uc.gateway.CreateOrder(ctx, total*100, orderCurrency, uc.receipts.NewReceipt())
	if err != nil {
		log.Printf("ERROR: gateway order creation failed: %v", err)
		return nil, domain.ErrGateway
	}

	return order, nil
}

// Verify — единственные ворота против поддельной записи на курс.
// Сначала проверка полноты полей, потом подпись, и только после
// совпадения подписи — запись на курсы.
func (uc *PaymentUseCase) Verify(ctx context.Context, userID uuid.UUID, orderID, paymentID, signature string, courseIDs []uuid.UUID) (domain.EnrollmentOutcome, error) {
	if orderID == "" || paymentID == "" || signature == "" || len(courseIDs) == 0 || userID == uuid.Nil {
		return domain.EnrollmentOutcome{}, domain.ErrMissingFields
	}

	if !uc.verifier.Verify(orderID, paymentID, signature) {
		return domain.EnrollmentOutcome{}, domain.ErrInvalidSignature
	}

	return uc.enroll(ctx, userID, courseIDs), nil
}

// enroll — батч best-effort: падение одного курса не отменяет остальные.
// Повторный вызов с теми же входами сходится к тому же состоянию.
func (uc *PaymentUseCase) enroll(ctx context.Context, userID uuid.UUID, courseIDs []uuid.UUID) domain.EnrollmentOutcome {
	var outcome domain.EnrollmentOutcome

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		// Письмо не отправим, но на запись это не влияет
		log.Printf("WARN: user %s lookup for enrollment email failed: %v", userID, err)
		user = nil
	}

	for _, courseID := range courseIDs {
		course, err := uc.courseRepo.GetByID(ctx, courseID)
		if err != nil {
			outcome.Failed = append(outcome.Failed, domain.EnrollmentFailure{
				CourseID: courseID,
				Reason:   err.Error(),
			})
			continue
		}

		err = uc.enrollRepo.Enroll(ctx, &domain.Enrollment{
			UserID:         userID,
			CourseID:       courseID,
			Status:         "active",
			LastAccessedAt: time.Now(),
		})
		if err != nil {
			outcome.Failed = append(outcome.Failed, domain.EnrollmentFailure{
				CourseID: courseID,
				Reason:   err.Error(),
			})
			continue
		}

		outcome.Enrolled = append(outcome.Enrolled, courseID)

		if user != nil {
			go func(email, name, title string) {
				if err := uc.emailSender.SendEnrollmentEmail(email, name, title); err != nil {
					log.Printf("ERROR: failed to send enrollment email to %s: %v", email, err)
				}
			}(user.Email, user.FirstName, course.Title)
		}
	}

	return outcome
}

// SendSuccessEmail — подтверждение оплаты. Отдельный endpoint, на
// запись на курс не влияет.
func (uc *PaymentUseCase) SendSuccessEmail(ctx context.Context, userID uuid.UUID, orderID, paymentID string, amount int) error {
	if orderID == "" || paymentID == "" || amount <= 0 {
		return domain.ErrMissingFields
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	// Шлюз отдал сумму в пайсах, в письме показываем рупии
	if err := uc.emailSender.SendPaymentReceived(user.Email, user.FirstName, amount/100, orderID, paymentID); err != nil {
		log.Printf("ERROR: failed to send payment email to %s: %v", user.Email, err)
		return domain.ErrMailSend
	}
	return nil
}
