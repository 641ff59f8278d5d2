package handlers

import (
	"lms_backend/internal/services"
	"lms_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	CourseHandler       *CourseHandler
	LessonHandler       *LessonHandler
	SubscriptionHandler *SubscriptionHandler
	PaymentHandler      *PaymentHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, svc.Auth),
		UserHandler:         NewUserHandler(base, svc.Users),
		CourseHandler:       NewCourseHandler(base, svc.Courses),
		LessonHandler:       NewLessonHandler(base, svc.Lessons),
		SubscriptionHandler: NewSubscriptionHandler(base, svc.Subscriptions),
		PaymentHandler:      NewPaymentHandler(base, svc.Payments),
	}
}
