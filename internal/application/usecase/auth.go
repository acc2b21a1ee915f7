package usecase

import (
	"context"
	"errors"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/infrastructure/security"

	"github.com/google/uuid"
)

// AuthUseCase — минимум для авторизованного канала оплаты:
// регистрация, логин, проверка access-токена. Refresh-флоу и
// управление сессиями сюда не входят.
type AuthUseCase struct {
	userRepo     UserRepository
	hasher       *security.PasswordHasher
	tokenManager *security.TokenManager
}

func NewAuthUseCase(ur UserRepository, h *security.PasswordHasher, tm *security.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     ur,
		hasher:       h,
		tokenManager: tm,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, firstName, email, password string) (string, error) {
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		ID:        uuid.New(),
		FirstName: firstName,
		Email:     email,
		Password:  hash,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	return user.ID.String(), nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return "", errors.New("invalid credentials")
	}

	return uc.tokenManager.Generate(user.ID.String())
}

func (uc *AuthUseCase) ValidateAccess(token string) (string, error) {
	return uc.tokenManager.ValidateAccessToken(token)
}
