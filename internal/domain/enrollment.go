package domain

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment — запись о доступе пользователя к курсу.
// Составной ключ (UserID, CourseID) гарантирует уникальность пары.
type Enrollment struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status         string    `gorm:"default:'active'"` // "active", "completed"
	LastAccessedAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CompletedLesson struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CourseID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	LessonID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// EnrollmentOutcome — агрегат по батчу: ошибка одного курса не
// отменяет запись на остальные, поэтому отдаем оба списка.
type EnrollmentOutcome struct {
	Enrolled []uuid.UUID
	Failed   []EnrollmentFailure
}

type EnrollmentFailure struct {
	CourseID uuid.UUID
	Reason   string
}

func (o EnrollmentOutcome) AllSucceeded() bool {
	return len(o.Failed) == 0
}
