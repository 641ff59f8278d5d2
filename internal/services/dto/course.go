package dto

import "time"

type CreateCourseRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=250"`
}

type UpdateCourseRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=250"`
}

// CourseResponse carries the derived read-only fields next to the record:
// lesson count, subscription count and whether the requesting user is
// subscribed.
type CourseResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	OwnerID           *string          `json:"owner_id"`
	AmountOfLessons   int64            `json:"amount_of_lessons"`
	SubscriptionCount int64            `json:"subscription_count"`
	IsSubscribed      bool             `json:"is_subscribed"`
	Lessons           []LessonResponse `json:"lessons"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

type CourseListResponse struct {
	Courses  []CourseResponse `json:"courses"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
