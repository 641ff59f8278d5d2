package services

import (
	"lms_backend/internal/auth"
	"lms_backend/internal/models"
	"lms_backend/internal/repositories"
	"lms_backend/internal/services/dto"
	"lms_backend/pkg/apperrors"
)

type LessonService interface {
	Create(userID string, role models.UserRole, req *dto.CreateLessonRequest) (*dto.LessonResponse, error)
	List(userID string, role models.UserRole, page, pageSize int) (*dto.LessonListResponse, error)
	Get(userID string, role models.UserRole, lessonID string) (*dto.LessonResponse, error)
	Update(userID string, role models.UserRole, lessonID string, req *dto.UpdateLessonRequest) (*dto.LessonResponse, error)
	Delete(userID string, role models.UserRole, lessonID string) error
}

type lessonService struct {
	lessonRepo    repositories.LessonRepository
	courseRepo    repositories.CourseRepository
	notifications NotificationService
}

func NewLessonService(
	lessonRepo repositories.LessonRepository,
	courseRepo repositories.CourseRepository,
	notifications NotificationService,
) LessonService {
	return &lessonService{
		lessonRepo:    lessonRepo,
		courseRepo:    courseRepo,
		notifications: notifications,
	}
}

func (s *lessonService) Create(userID string, role models.UserRole, req *dto.CreateLessonRequest) (*dto.LessonResponse, error) {
	if d := auth.LessonCreate(role); !d.Allowed {
		return nil, apperrors.NewForbiddenError(d.Reason)
	}

	if req.CourseID != nil {
		if err := s.checkCourse(*req.CourseID); err != nil {
			return nil, err
		}
	}

	lesson := &models.Lesson{
		Name:        req.Name,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		CourseID:    req.CourseID,
		OwnerID:     &userID,
	}
	if err := s.lessonRepo.Create(lesson); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := buildLessonResponse(lesson)
	return &resp, nil
}

func (s *lessonService) List(userID string, role models.UserRole, page, pageSize int) (*dto.LessonListResponse, error) {
	limit := pageSize
	offset := (page - 1) * pageSize

	var (
		lessons []models.Lesson
		total   int64
		err     error
	)
	if auth.IsModerator(role) {
		lessons, total, err = s.lessonRepo.FindAll(limit, offset)
	} else {
		lessons, total, err = s.lessonRepo.FindByOwner(userID, limit, offset)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.LessonListResponse{
		Lessons:  make([]dto.LessonResponse, 0, len(lessons)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range lessons {
		resp.Lessons = append(resp.Lessons, buildLessonResponse(&lessons[i]))
	}
	return resp, nil
}

func (s *lessonService) Get(userID string, role models.UserRole, lessonID string) (*dto.LessonResponse, error) {
	lesson, err := s.findLesson(lessonID)
	if err != nil {
		return nil, err
	}

	if d := auth.LessonAccess(userID, role, lesson.OwnerID); !d.Allowed {
		return nil, apperrors.NewForbiddenError(d.Reason)
	}

	resp := buildLessonResponse(lesson)
	return &resp, nil
}

func (s *lessonService) Update(userID string, role models.UserRole, lessonID string, req *dto.UpdateLessonRequest) (*dto.LessonResponse, error) {
	lesson, err := s.findLesson(lessonID)
	if err != nil {
		return nil, err
	}

	if d := auth.LessonAccess(userID, role, lesson.OwnerID); !d.Allowed {
		return nil, apperrors.NewForbiddenError(d.Reason)
	}

	if req.CourseID != nil {
		if err := s.checkCourse(*req.CourseID); err != nil {
			return nil, err
		}
		lesson.CourseID = req.CourseID
	}
	if req.Name != nil {
		lesson.Name = *req.Name
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.VideoURL != nil {
		lesson.VideoURL = *req.VideoURL
	}

	// The debounce compares against the timestamp before this write.
	lastUpdate := lesson.UpdatedAt

	if err := s.lessonRepo.Update(lesson); err != nil {
		if err == repositories.ErrLessonNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifications.LessonUpdated(lesson, lastUpdate)

	resp := buildLessonResponse(lesson)
	return &resp, nil
}

func (s *lessonService) Delete(userID string, role models.UserRole, lessonID string) error {
	lesson, err := s.findLesson(lessonID)
	if err != nil {
		return err
	}

	if d := auth.LessonAccess(userID, role, lesson.OwnerID); !d.Allowed {
		return apperrors.NewForbiddenError(d.Reason)
	}

	if err := s.lessonRepo.Delete(lessonID); err != nil {
		if err == repositories.ErrLessonNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *lessonService) findLesson(lessonID string) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.FindByID(lessonID)
	if err != nil {
		if err == repositories.ErrLessonNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return lesson, nil
}

func (s *lessonService) checkCourse(courseID string) error {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		if err == repositories.ErrCourseNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildLessonResponse(lesson *models.Lesson) dto.LessonResponse {
	return dto.LessonResponse{
		ID:          lesson.ID,
		Name:        lesson.Name,
		Description: lesson.Description,
		VideoURL:    lesson.VideoURL,
		CourseID:    lesson.CourseID,
		OwnerID:     lesson.OwnerID,
		CreatedAt:   lesson.CreatedAt,
		UpdatedAt:   lesson.UpdatedAt,
	}
}
