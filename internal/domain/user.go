package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"uniqueIndex;not null;size:100"`
	FirstName string    `gorm:"size:50"`
	Password  string    `gorm:"not null"`

	// Восстановление пароля: храним только sha256-хеш токена, сырой токен
	// уходит в письмо и нигде не сохраняется
	ResetTokenHash string     `gorm:"index;size:64"`
	ResetExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
