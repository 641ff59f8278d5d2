package services

import (
	"lms_backend/internal/repositories"
	"lms_backend/internal/services/dto"
	"lms_backend/pkg/apperrors"
)

type SubscriptionService interface {
	Toggle(userID, courseID string) (*dto.ToggleSubscriptionResponse, error)
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	courseRepo       repositories.CourseRepository
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	courseRepo repositories.CourseRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		courseRepo:       courseRepo,
	}
}

// Toggle flips the caller's subscription to the course. The course lookup
// runs first so an unknown id is a 404 with no subscription state touched.
func (s *subscriptionService) Toggle(userID, courseID string) (*dto.ToggleSubscriptionResponse, error) {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		if err == repositories.ErrCourseNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	added, err := s.subscriptionRepo.Toggle(userID, courseID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ToggleSubscriptionResponse{Subscribed: added}
	if added {
		resp.Message = "subscription added"
	} else {
		resp.Message = "subscription removed"
	}
	return resp, nil
}
