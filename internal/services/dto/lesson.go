package dto

import "time"

type CreateLessonRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description,omitempty" validate:"max=250"`
	VideoURL    string  `json:"video_url,omitempty" validate:"omitempty,max=200,video-url"`
	CourseID    *string `json:"course_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateLessonRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=250"`
	VideoURL    *string `json:"video_url,omitempty" validate:"omitempty,max=200,video-url"`
	CourseID    *string `json:"course_id,omitempty" validate:"omitempty,uuid"`
}

type LessonResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	CourseID    *string   `json:"course_id"`
	OwnerID     *string   `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LessonListResponse struct {
	Lessons  []LessonResponse `json:"lessons"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
