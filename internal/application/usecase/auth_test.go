package usecase

import (
	"context"
	"testing"

	"studyhub-backend/internal/infrastructure/security"
)

func TestRegisterLoginValidateRoundtrip(t *testing.T) {
	ctx := context.Background()
	uc := NewAuthUseCase(newMemUserRepo(), security.NewPasswordHasher(), security.NewTokenManager("test-secret"))

	userID, err := uc.Register(ctx, "Ivan", "ivan@example.com", "supersecret1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := uc.Login(ctx, "ivan@example.com", "supersecret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	sub, err := uc.ValidateAccess(token)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if sub != userID {
		t.Errorf("sub = %s, want %s", sub, userID)
	}

	if _, err := uc.Login(ctx, "ivan@example.com", "wrongpass"); err == nil {
		t.Error("wrong password must not log in")
	}
	if _, err := uc.ValidateAccess(token + "x"); err == nil {
		t.Error("tampered token must not validate")
	}
}
