package services

import (
	"lms_backend/internal/auth"
	"lms_backend/internal/models"
	"lms_backend/internal/repositories"
	"lms_backend/internal/services/dto"
	"lms_backend/pkg/apperrors"
)

type CourseService interface {
	Create(userID string, role models.UserRole, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	List(userID string, role models.UserRole, page, pageSize int) (*dto.CourseListResponse, error)
	Get(userID string, role models.UserRole, courseID string) (*dto.CourseResponse, error)
	Update(userID string, role models.UserRole, courseID string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(userID string, role models.UserRole, courseID string) error
}

type courseService struct {
	courseRepo       repositories.CourseRepository
	subscriptionRepo repositories.SubscriptionRepository
	notifications    NotificationService
}

func NewCourseService(
	courseRepo repositories.CourseRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	notifications NotificationService,
) CourseService {
	return &courseService{
		courseRepo:       courseRepo,
		subscriptionRepo: subscriptionRepo,
		notifications:    notifications,
	}
}

func (s *courseService) Create(userID string, role models.UserRole, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if d := auth.CourseCreate(role); !d.Allowed {
		return nil, apperrors.NewForbiddenError(d.Reason)
	}

	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     &userID,
	}
	if err := s.courseRepo.Create(course); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildCourseResponse(course, userID)
}

// List scopes the result set: moderators see every course, everyone else
// only their own.
func (s *courseService) List(userID string, role models.UserRole, page, pageSize int) (*dto.CourseListResponse, error) {
	limit := pageSize
	offset := (page - 1) * pageSize

	var (
		courses []models.Course
		total   int64
		err     error
	)
	if auth.IsModerator(role) {
		courses, total, err = s.courseRepo.FindAll(limit, offset)
	} else {
		courses, total, err = s.courseRepo.FindByOwner(userID, limit, offset)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.CourseListResponse{
		Courses:  make([]dto.CourseResponse, 0, len(courses)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range courses {
		cr, err := s.buildCourseResponse(&courses[i], userID)
		if err != nil {
			return nil, err
		}
		resp.Courses = append(resp.Courses, *cr)
	}
	return resp, nil
}

func (s *courseService) Get(userID string, role models.UserRole, courseID string) (*dto.CourseResponse, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, err
	}

	if d := auth.CourseView(userID, role, course.OwnerID); !d.Allowed {
		return nil, apperrors.NewForbiddenError(d.Reason)
	}

	return s.buildCourseResponse(course, userID)
}

func (s *courseService) Update(userID string, role models.UserRole, courseID string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, err
	}

	// Update shares the view rule: owner or moderator.
	if d := auth.CourseView(userID, role, course.OwnerID); !d.Allowed {
		return nil, apperrors.NewForbiddenError(d.Reason)
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}

	// The debounce compares against the timestamp before this write.
	lastUpdate := course.UpdatedAt

	if err := s.courseRepo.Update(course); err != nil {
		if err == repositories.ErrCourseNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifications.CourseUpdated(course.ID, lastUpdate)

	return s.buildCourseResponse(course, userID)
}

func (s *courseService) Delete(userID string, role models.UserRole, courseID string) error {
	course, err := s.findCourse(courseID)
	if err != nil {
		return err
	}

	if d := auth.CourseDelete(userID, role, course.OwnerID); !d.Allowed {
		return apperrors.NewForbiddenError(d.Reason)
	}

	if err := s.courseRepo.Delete(courseID); err != nil {
		if err == repositories.ErrCourseNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *courseService) findCourse(courseID string) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if err == repositories.ErrCourseNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return course, nil
}

func (s *courseService) buildCourseResponse(course *models.Course, userID string) (*dto.CourseResponse, error) {
	lessonCount, err := s.courseRepo.CountLessons(course.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	subCount, err := s.courseRepo.CountSubscriptions(course.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	subscribed, err := s.subscriptionRepo.Exists(userID, course.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	lessons := make([]dto.LessonResponse, 0, len(course.Lessons))
	for i := range course.Lessons {
		lessons = append(lessons, buildLessonResponse(&course.Lessons[i]))
	}

	return &dto.CourseResponse{
		ID:                course.ID,
		Name:              course.Name,
		Description:       course.Description,
		OwnerID:           course.OwnerID,
		AmountOfLessons:   lessonCount,
		SubscriptionCount: subCount,
		IsSubscribed:      subscribed,
		Lessons:           lessons,
		CreatedAt:         course.CreatedAt,
		UpdatedAt:         course.UpdatedAt,
	}, nil
}
