package dto

type ToggleSubscriptionRequest struct {
	CourseID string `json:"course" validate:"required,uuid"`
}

type ToggleSubscriptionResponse struct {
	Message    string `json:"message"`
	Subscribed bool   `json:"subscribed"`
}
