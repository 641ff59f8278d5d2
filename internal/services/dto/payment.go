package dto

import "time"

type CreatePaymentRequest struct {
	PaidCourseID *string `json:"paid_course_id,omitempty" validate:"omitempty,uuid"`
	PaidLessonID *string `json:"paid_lesson_id,omitempty" validate:"omitempty,uuid"`
	Amount       float64 `json:"amount" validate:"gte=0"`
	PaymentType  string  `json:"payment_type" validate:"required,is-payment-type"`
}

type PaymentResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	PaidCourseID *string   `json:"paid_course_id"`
	PaidLessonID *string   `json:"paid_lesson_id"`
	Amount       float64   `json:"amount"`
	PaymentType  string    `json:"payment_type"`
	SessionID    string    `json:"session_id"`
	PaymentLink  string    `json:"payment_link"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type PaymentStatusResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}
