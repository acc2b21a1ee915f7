package usecase

import (
	"context"
	"log"
	"time"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/infrastructure/security"
)

const resetTokenTTL = time.Hour

type ResetUseCase struct {
	userRepo    UserRepository
	hasher      *security.PasswordHasher
	emailSender EmailSender
}

func NewResetUseCase(ur UserRepository, h *security.PasswordHasher, es EmailSender) *ResetUseCase {
	return &ResetUseCase{
		userRepo:    ur,
		hasher:      h,
		emailSender: es,
	}
}

// ForgotPassword выдает одноразовый токен восстановления. В базу
// уходит только хеш, сырой токен живет в письме.
func (uc *ResetUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := security.NewResetToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(resetTokenTTL)
	if err := uc.userRepo.SetResetCredential(ctx, user.ID, security.HashResetToken(token), expiresAt); err != nil {
		return err
	}

	go func(email, token string) {
		if err := uc.emailSender.SendResetEmail(email, token); err != nil {
			log.Printf("ERROR: failed to send reset email to %s: %v", email, err)
		}
	}(user.Email, token)

	return nil
}

// ResetPassword меняет пароль по сырому токену. "Не найден" и "истек"
// наружу неразличимы — не подсказываем, какой именно случай.
func (uc *ResetUseCase) ResetPassword(ctx context.Context, token, password, confirmPassword string) error {
	if password != confirmPassword {
		return domain.ErrPasswordMismatch
	}

	user, err := uc.userRepo.FindByResetHash(ctx, security.HashResetToken(token), time.Now())
	if err != nil {
		return domain.ErrInvalidOrExpired
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return err
	}

	// Один UPDATE: новый пароль + очистка токена. Повторная попытка
	// с тем же токеном уже не найдет пользователя.
	return uc.userRepo.ResetPassword(ctx, user.ID, hash)
}
