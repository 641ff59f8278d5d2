package repositories

import (
	"errors"

	"lms_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

// PaymentFilter narrows the payment listing the way the API exposes it:
// by paid course, paid lesson or payment type, ordered by creation date.
type PaymentFilter struct {
	UserID       string
	PaidCourseID string
	PaidLessonID string
	PaymentType  models.PaymentType
	OrderDesc    bool
	Page         int
	PageSize     int
}

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByID(id string) (*models.Payment, error)
	FindWithFilter(criteria PaymentFilter) ([]models.Payment, int64, error)
	Delete(id string) error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindWithFilter(criteria PaymentFilter) ([]models.Payment, int64, error) {
	var payments []models.Payment
	query := r.db.Model(&models.Payment{})

	if criteria.UserID != "" {
		query = query.Where("user_id = ?", criteria.UserID)
	}
	if criteria.PaidCourseID != "" {
		query = query.Where("paid_course_id = ?", criteria.PaidCourseID)
	}
	if criteria.PaidLessonID != "" {
		query = query.Where("paid_lesson_id = ?", criteria.PaidLessonID)
	}
	if criteria.PaymentType != "" {
		query = query.Where("payment_type = ?", criteria.PaymentType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at"
	if criteria.OrderDesc {
		order = "created_at DESC"
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order(order).Limit(limit).Offset(offset).Find(&payments).Error
	return payments, total, err
}

func (r *PaymentRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Payment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
