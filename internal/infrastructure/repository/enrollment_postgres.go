package repository

import (
	"context"

	"studyhub-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

// Enroll: ON CONFLICT DO NOTHING по составному ключу (user_id, course_id).
// Повторная вставка — no-op, существующая запись не перезаписывается.
func (r *EnrollmentRepository) Enroll(ctx context.Context, e *domain.Enrollment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(e).Error
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_accessed_at desc").
		Find(&enrollments).Error
	return enrollments, err
}

// CompleteLesson: FirstOrCreate, чтобы не плодить дубликаты при двойном клике
func (r *EnrollmentRepository) CompleteLesson(ctx context.Context, item *domain.CompletedLesson) error {
	return r.db.WithContext(ctx).FirstOrCreate(item).Error
}

func (r *EnrollmentRepository) CompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	var lessons []domain.CompletedLesson
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Find(&lessons).Error
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	for _, l := range lessons {
		ids = append(ids, l.LessonID)
	}
	return ids, nil
}
