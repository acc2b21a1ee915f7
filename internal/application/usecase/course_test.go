package usecase

import (
	"context"
	"errors"
	"testing"

	"studyhub-backend/internal/domain"

	"github.com/google/uuid"
)

func TestCompleteLessonIdempotent(t *testing.T) {
	ctx := context.Background()
	course := &domain.Course{ID: uuid.New(), Title: "Go с нуля", Price: 500}
	userID := uuid.New()
	enrolls := newMemEnrollRepo()
	uc := NewCourseUseCase(newMemCourseRepo(course), enrolls)

	if err := enrolls.Enroll(ctx, &domain.Enrollment{UserID: userID, CourseID: course.ID}); err != nil {
		t.Fatal(err)
	}

	lessonID := uuid.New()
	for i := 0; i < 3; i++ {
		if err := uc.CompleteLesson(ctx, userID, course.ID, lessonID); err != nil {
			t.Fatalf("CompleteLesson #%d: %v", i+1, err)
		}
	}

	ids, err := uc.Progress(ctx, userID, course.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 {
		t.Errorf("completed lessons = %d, want 1 after triple click", len(ids))
	}
}

func TestProgressRequiresEnrollment(t *testing.T) {
	course := &domain.Course{ID: uuid.New(), Title: "Go с нуля", Price: 500}
	uc := NewCourseUseCase(newMemCourseRepo(course), newMemEnrollRepo())

	_, err := uc.Progress(context.Background(), uuid.New(), course.ID)
	if !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}
