package dto

import "time"

// UserResponse is the full profile, returned to the account owner.
type UserResponse struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone,omitempty"`
	City        string            `json:"city,omitempty"`
	Role        string            `json:"role"`
	Status      string            `json:"status"`
	LastLoginAt *time.Time        `json:"last_login_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	Payments    []PaymentResponse `json:"payments,omitempty"`
}

// UserBaseResponse is the reduced profile others see.
type UserBaseResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	City  string `json:"city,omitempty"`
}

type UpdateUserRequest struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
	City  *string `json:"city,omitempty"`
}

type UserListResponse struct {
	Users    []UserBaseResponse `json:"users"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}
