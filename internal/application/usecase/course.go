package usecase

import (
	"context"
	"time"

	"studyhub-backend/internal/domain"

	"github.com/google/uuid"
)

type CourseUseCase struct {
	courseRepo CourseRepository
	enrollRepo EnrollmentRepository
}

func NewCourseUseCase(cr CourseRepository, er EnrollmentRepository) *CourseUseCase {
	return &CourseUseCase{courseRepo: cr, enrollRepo: er}
}

func (uc *CourseUseCase) List(ctx context.Context) ([]domain.Course, error) {
	return uc.courseRepo.List(ctx)
}

func (uc *CourseUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	return uc.courseRepo.GetByID(ctx, id)
}

func (uc *CourseUseCase) ListEnrolled(ctx context.Context, userID uuid.UUID) ([]domain.Enrollment, error) {
	return uc.enrollRepo.ListByUser(ctx, userID)
}

// Progress — ID пройденных уроков курса. Доступ только при наличии записи.
func (uc *CourseUseCase) Progress(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	enrolled, err := uc.enrollRepo.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, domain.ErrCourseNotFound
	}
	return uc.enrollRepo.CompletedLessonIDs(ctx, userID, courseID)
}

// CompleteLesson отмечает урок пройденным (повторная отметка — no-op).
func (uc *CourseUseCase) CompleteLesson(ctx context.Context, userID, courseID, lessonID uuid.UUID) error {
	enrolled, err := uc.enrollRepo.Exists(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return domain.ErrCourseNotFound
	}

	return uc.enrollRepo.CompleteLesson(ctx, &domain.CompletedLesson{
		UserID:    userID,
		CourseID:  courseID,
		LessonID:  lessonID,
		CreatedAt: time.Now(),
	})
}
