package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"studyhub-backend/internal/domain"

	"github.com/google/uuid"
)

type memCourseRepo struct {
	mu      sync.Mutex
	courses map[uuid.UUID]*domain.Course
}

func newMemCourseRepo(courses ...*domain.Course) *memCourseRepo {
	r := &memCourseRepo{courses: make(map[uuid.UUID]*domain.Course)}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	return r
}

func (r *memCourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return c, nil
}

func (r *memCourseRepo) List(ctx context.Context) ([]domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Course
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newMemUserRepo(users ...*domain.User) *memUserRepo {
	r := &memUserRepo{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) SetResetCredential(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ResetTokenHash = tokenHash
	exp := expiresAt
	u.ResetExpiresAt = &exp
	return nil
}

func (r *memUserRepo) FindByResetHash(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetTokenHash != "" && u.ResetTokenHash == tokenHash &&
			u.ResetExpiresAt != nil && u.ResetExpiresAt.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Password = passwordHash
	u.ResetTokenHash = ""
	u.ResetExpiresAt = nil
	return nil
}

type enrollKey struct {
	userID   uuid.UUID
	courseID uuid.UUID
}

type memEnrollRepo struct {
	mu          sync.Mutex
	enrollments map[enrollKey]*domain.Enrollment
	completed   map[enrollKey][]uuid.UUID
	inserts     int // все попытки Create, включая no-op по конфликту
	failOn      map[uuid.UUID]error
}

func newMemEnrollRepo() *memEnrollRepo {
	return &memEnrollRepo{
		enrollments: make(map[enrollKey]*domain.Enrollment),
		completed:   make(map[enrollKey][]uuid.UUID),
		failOn:      make(map[uuid.UUID]error),
	}
}

func (r *memEnrollRepo) Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.enrollments[enrollKey{userID, courseID}]
	return ok, nil
}

func (r *memEnrollRepo) Enroll(ctx context.Context, e *domain.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failOn[e.CourseID]; ok {
		return err
	}
	r.inserts++
	key := enrollKey{e.UserID, e.CourseID}
	if _, ok := r.enrollments[key]; ok {
		return nil // ON CONFLICT DO NOTHING
	}
	cp := *e
	r.enrollments[key] = &cp
	return nil
}

func (r *memEnrollRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Enrollment
	for k, e := range r.enrollments {
		if k.userID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memEnrollRepo) CompleteLesson(ctx context.Context, item *domain.CompletedLesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := enrollKey{item.UserID, item.CourseID}
	for _, id := range r.completed[key] {
		if id == item.LessonID {
			return nil
		}
	}
	r.completed[key] = append(r.completed[key], item.LessonID)
	return nil
}

func (r *memEnrollRepo) CompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed[enrollKey{userID, courseID}], nil
}

func (r *memEnrollRepo) count(userID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for k := range r.enrollments {
		if k.userID == userID {
			n++
		}
	}
	return n
}

type gatewayCall struct {
	amount   int
	currency string
	receipt  string
}

type fakeGateway struct {
	mu    sync.Mutex
	calls []gatewayCall
	err   error
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int, currency, receipt string) (*domain.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.calls = append(g.calls, gatewayCall{amount, currency, receipt})
	return &domain.Order{
		ID:       "order_test_001",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

type staticReceipts struct{ receipt string }

func (s staticReceipts) NewReceipt() string { return s.receipt }

// recordingSender пишет токены сброса в канал (отправка идет в горутине)
type recordingSender struct {
	mu          sync.Mutex
	resetTokens chan string
	sent        []string
	failSend    bool
}

func newRecordingSender() *recordingSender {
	return &recordingSender{resetTokens: make(chan string, 8)}
}

func (s *recordingSender) SendResetEmail(toEmail, token string) error {
	s.resetTokens <- token
	return nil
}

func (s *recordingSender) SendPaymentReceived(toEmail, name string, amount int, orderID, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSend {
		return errors.New("sendgrid error: status=500")
	}
	s.sent = append(s.sent, "payment:"+toEmail)
	return nil
}

func (s *recordingSender) SendEnrollmentEmail(toEmail, name, courseTitle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, "enrollment:"+courseTitle)
	return nil
}
