package services

import (
	"context"
	"errors"
	"time"

	"lms_backend/internal/email"
	"lms_backend/internal/jobs"
	"lms_backend/internal/models"
	"lms_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory fakes standing in for the gorm repositories.

type fakeCourseRepo struct {
	courses map[string]*models.Course
	lessons map[string]int64
	failAll bool
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		courses: make(map[string]*models.Course),
		lessons: make(map[string]int64),
	}
}

func (r *fakeCourseRepo) Create(course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) FindByID(id string) (*models.Course, error) {
	if r.failAll {
		return nil, errors.New("storage down")
	}
	c, ok := r.courses[id]
	if !ok {
		return nil, repositories.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) FindAll(limit, offset int) ([]models.Course, int64, error) {
	var out []models.Course
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, int64(len(r.courses)), nil
}

func (r *fakeCourseRepo) FindByOwner(ownerID string, limit, offset int) ([]models.Course, int64, error) {
	var out []models.Course
	for _, c := range r.courses {
		if c.OwnerID != nil && *c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCourseRepo) Update(course *models.Course) error {
	stored, ok := r.courses[course.ID]
	if !ok {
		return repositories.ErrCourseNotFound
	}
	stored.Name = course.Name
	stored.Description = course.Description
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCourseRepo) Delete(id string) error {
	if _, ok := r.courses[id]; !ok {
		return repositories.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) CountLessons(courseID string) (int64, error) {
	return r.lessons[courseID], nil
}

func (r *fakeCourseRepo) CountSubscriptions(courseID string) (int64, error) {
	return 0, nil
}

type fakeSubscriptionRepo struct {
	subs   map[string]bool // ownerID|courseID
	emails map[string][]string
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		subs:   make(map[string]bool),
		emails: make(map[string][]string),
	}
}

func subKey(ownerID, courseID string) string { return ownerID + "|" + courseID }

func (r *fakeSubscriptionRepo) Toggle(ownerID, courseID string) (bool, error) {
	key := subKey(ownerID, courseID)
	if r.subs[key] {
		delete(r.subs, key)
		return false, nil
	}
	r.subs[key] = true
	return true, nil
}

func (r *fakeSubscriptionRepo) Exists(ownerID, courseID string) (bool, error) {
	return r.subs[subKey(ownerID, courseID)], nil
}

func (r *fakeSubscriptionRepo) FindByOwner(ownerID string) ([]models.Subscription, error) {
	return nil, nil
}

func (r *fakeSubscriptionRepo) SubscriberEmails(courseID string) ([]string, error) {
	return r.emails[courseID], nil
}

func (r *fakeSubscriptionRepo) CountByCourse(courseID string) (int64, error) {
	var n int64
	for key, ok := range r.subs {
		if ok && key[len(key)-len(courseID):] == courseID {
			n++
		}
	}
	return n, nil
}

type fakeLessonRepo struct {
	lessons map[string]*models.Lesson
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: make(map[string]*models.Lesson)}
}

func (r *fakeLessonRepo) Create(lesson *models.Lesson) error {
	if lesson.ID == "" {
		lesson.ID = uuid.NewString()
	}
	lesson.CreatedAt = time.Now()
	lesson.UpdatedAt = time.Now()
	r.lessons[lesson.ID] = lesson
	return nil
}

func (r *fakeLessonRepo) FindByID(id string) (*models.Lesson, error) {
	l, ok := r.lessons[id]
	if !ok {
		return nil, repositories.ErrLessonNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLessonRepo) FindAll(limit, offset int) ([]models.Lesson, int64, error) {
	var out []models.Lesson
	for _, l := range r.lessons {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (r *fakeLessonRepo) FindByOwner(ownerID string, limit, offset int) ([]models.Lesson, int64, error) {
	var out []models.Lesson
	for _, l := range r.lessons {
		if l.OwnerID != nil && *l.OwnerID == ownerID {
			out = append(out, *l)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeLessonRepo) Update(lesson *models.Lesson) error {
	stored, ok := r.lessons[lesson.ID]
	if !ok {
		return repositories.ErrLessonNotFound
	}
	*stored = *lesson
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeLessonRepo) Delete(id string) error {
	if _, ok := r.lessons[id]; !ok {
		return repositories.ErrLessonNotFound
	}
	delete(r.lessons, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	*stored = *user
	return nil
}

func (r *fakeUserRepo) UpdateStatus(userID string, status models.UserStatus) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(userID string, at time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.LastLoginAt = &at
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) FindByRole(role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindActive() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Status == models.UserStatusActive {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments []*models.Payment
}

func (r *fakePaymentRepo) Create(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	payment.CreatedAt = time.Now()
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) FindByID(id string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrPaymentNotFound
}

func (r *fakePaymentRepo) FindWithFilter(criteria repositories.PaymentFilter) ([]models.Payment, int64, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if criteria.UserID != "" && p.UserID != criteria.UserID {
			continue
		}
		if criteria.PaymentType != "" && p.PaymentType != criteria.PaymentType {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) Delete(id string) error {
	for i, p := range r.payments {
		if p.ID == id {
			r.payments = append(r.payments[:i], r.payments[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPaymentNotFound
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(token string) (*models.RefreshToken, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeRefreshTokenRepo) DeleteByToken(token string) error {
	if _, ok := r.tokens[token]; !ok {
		return repositories.ErrRefreshTokenNotFound
	}
	delete(r.tokens, token)
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUser(userID string) error {
	for key, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) CleanExpired() error { return nil }

// fakeEnqueuer records enqueued jobs instead of running them.
type fakeEnqueuer struct {
	jobs []jobs.Job
	err  error
}

func (e *fakeEnqueuer) Enqueue(job jobs.Job) error {
	if e.err != nil {
		return e.err
	}
	e.jobs = append(e.jobs, job)
	return nil
}

// runAll executes the recorded jobs synchronously.
func (e *fakeEnqueuer) runAll() error {
	for _, j := range e.jobs {
		if err := j.Run(context.Background()); err != nil {
			return err
		}
	}
	return nil
}

// fakeEmailProvider captures outgoing mail.
type fakeEmailProvider struct {
	sent    []*email.Email
	failFor map[string]bool // recipient -> fail
}

func (p *fakeEmailProvider) Send(e *email.Email) error {
	for _, to := range e.To {
		if p.failFor[to] {
			return errors.New("delivery refused")
		}
	}
	p.sent = append(p.sent, e)
	return nil
}

// fakeGateway scripts the payment provider.
type fakeGateway struct {
	products   int
	prices     int
	sessions   int
	failAtStep string // "product", "price", "session"
	lastStatus string
}

func (g *fakeGateway) CreateProduct(name string) (string, error) {
	if g.failAtStep == "product" {
		return "", errors.New("gateway rejected product")
	}
	g.products++
	return "prod_1", nil
}

func (g *fakeGateway) CreatePrice(productID string, amount float64) (string, error) {
	if g.failAtStep == "price" {
		return "", errors.New("gateway rejected price")
	}
	g.prices++
	return "price_1", nil
}

func (g *fakeGateway) CreateCheckoutSession(priceID string) (string, string, error) {
	if g.failAtStep == "session" {
		return "", "", errors.New("gateway rejected session")
	}
	g.sessions++
	return "cs_1", "https://pay.example/cs_1", nil
}

func (g *fakeGateway) CheckSession(sessionID string) (string, error) {
	if g.lastStatus == "" {
		return "open", nil
	}
	return g.lastStatus, nil
}
