package services

import (
	"lms_backend/internal/config"
	"lms_backend/internal/email"
	"lms_backend/internal/payments"
	"lms_backend/internal/repositories"
)

// ServiceContainer bundles the business services for handler wiring.
type ServiceContainer struct {
	Auth          AuthService
	Users         UserService
	Courses       CourseService
	Lessons       LessonService
	Subscriptions SubscriptionService
	Payments      PaymentService
	Notifications NotificationService
}

type Dependencies struct {
	Config        *config.Config
	Queue         Enqueuer
	EmailProvider email.Provider
	Gateway       payments.Gateway

	UserRepo         repositories.UserRepository
	RefreshTokenRepo repositories.RefreshTokenRepository
	CourseRepo       repositories.CourseRepository
	LessonRepo       repositories.LessonRepository
	SubscriptionRepo repositories.SubscriptionRepository
	PaymentRepo      repositories.PaymentRepository
}

func NewServiceContainer(deps Dependencies) *ServiceContainer {
	notifications := NewNotificationService(
		deps.Queue,
		deps.CourseRepo,
		deps.SubscriptionRepo,
		deps.UserRepo,
		deps.EmailProvider,
		deps.Config.CourseDebounce(),
		deps.Config.LessonDebounce(),
	)

	return &ServiceContainer{
		Auth:          NewAuthService(deps.UserRepo, deps.RefreshTokenRepo, deps.Config.RefreshTTL()),
		Users:         NewUserService(deps.UserRepo),
		Courses:       NewCourseService(deps.CourseRepo, deps.SubscriptionRepo, notifications),
		Lessons:       NewLessonService(deps.LessonRepo, deps.CourseRepo, notifications),
		Subscriptions: NewSubscriptionService(deps.SubscriptionRepo, deps.CourseRepo),
		Payments:      NewPaymentService(deps.PaymentRepo, deps.CourseRepo, deps.LessonRepo, deps.Gateway),
		Notifications: notifications,
	}
}
