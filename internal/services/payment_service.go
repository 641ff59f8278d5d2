package services

import (
	"lms_backend/internal/models"
	"lms_backend/internal/payments"
	"lms_backend/internal/repositories"
	"lms_backend/internal/services/dto"
	"lms_backend/pkg/apperrors"
)

type PaymentService interface {
	Create(userID string, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	List(userID string, filter repositories.PaymentFilter) (*dto.PaymentListResponse, error)
	CheckStatus(sessionID string) (*dto.PaymentStatusResponse, error)
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	courseRepo  repositories.CourseRepository
	lessonRepo  repositories.LessonRepository
	gateway     payments.Gateway
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	courseRepo repositories.CourseRepository,
	lessonRepo repositories.LessonRepository,
	gateway payments.Gateway,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		courseRepo:  courseRepo,
		lessonRepo:  lessonRepo,
		gateway:     gateway,
	}
}

// Create validates the target, runs the full gateway sequence and only then
// persists the payment. A failure at any gateway step leaves no local row,
// so every stored payment carries a session id and a link.
func (s *paymentService) Create(userID string, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if (req.PaidCourseID == nil) == (req.PaidLessonID == nil) {
		return nil, apperrors.ErrInvalidOperation("payments",
			"Exactly one of paid_course_id or paid_lesson_id must be set")
	}

	var itemName string
	switch {
	case req.PaidCourseID != nil:
		course, err := s.courseRepo.FindByID(*req.PaidCourseID)
		if err != nil {
			if err == repositories.ErrCourseNotFound {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		itemName = course.Name
	case req.PaidLessonID != nil:
		lesson, err := s.lessonRepo.FindByID(*req.PaidLessonID)
		if err != nil {
			if err == repositories.ErrLessonNotFound {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		itemName = lesson.Name
	}

	productID, err := s.gateway.CreateProduct(itemName)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "payments", "Failed to create product")
	}
	priceID, err := s.gateway.CreatePrice(productID, req.Amount)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "payments", "Failed to create price")
	}
	sessionID, link, err := s.gateway.CreateCheckoutSession(priceID)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "payments", "Failed to create checkout session")
	}

	payment := &models.Payment{
		UserID:       userID,
		PaidCourseID: req.PaidCourseID,
		PaidLessonID: req.PaidLessonID,
		Amount:       req.Amount,
		PaymentType:  models.PaymentType(req.PaymentType),
		SessionID:    sessionID,
		PaymentLink:  link,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := buildPaymentResponse(payment)
	return &resp, nil
}

// List returns the caller's own payments; the filter never widens past the
// authenticated user.
func (s *paymentService) List(userID string, filter repositories.PaymentFilter) (*dto.PaymentListResponse, error) {
	filter.UserID = userID

	payments, total, err := s.paymentRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.PaymentListResponse{
		Payments: make([]dto.PaymentResponse, 0, len(payments)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	for i := range payments {
		resp.Payments = append(resp.Payments, buildPaymentResponse(&payments[i]))
	}
	return resp, nil
}

func (s *paymentService) CheckStatus(sessionID string) (*dto.PaymentStatusResponse, error) {
	status, err := s.gateway.CheckSession(sessionID)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "payments", "Failed to check session status")
	}
	return &dto.PaymentStatusResponse{SessionID: sessionID, Status: status}, nil
}

func buildPaymentResponse(p *models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		PaidCourseID: p.PaidCourseID,
		PaidLessonID: p.PaidLessonID,
		Amount:       p.Amount,
		PaymentType:  string(p.PaymentType),
		SessionID:    p.SessionID,
		PaymentLink:  p.PaymentLink,
		CreatedAt:    p.CreatedAt,
	}
}
