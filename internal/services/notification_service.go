package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lms_backend/internal/email"
	"lms_backend/internal/jobs"
	"lms_backend/internal/logger"
	"lms_backend/internal/models"
	"lms_backend/internal/repositories"
)

// Enqueuer is the slice of the job queue the services need.
type Enqueuer interface {
	Enqueue(job jobs.Job) error
}

// NotificationService owns the update-notification flow: it applies the
// debounce window and hands delivery off to the background queue. Delivery
// failures never propagate into the request that triggered them.
type NotificationService interface {
	// CourseUpdated enqueues a subscriber notification unless the course
	// was already updated inside the debounce window. Reports whether a
	// job was enqueued.
	CourseUpdated(courseID string, lastUpdate time.Time) bool
	// LessonUpdated does the same for a lesson, notifying the subscribers
	// of its course.
	LessonUpdated(lesson *models.Lesson, lastUpdate time.Time) bool
	// SendCourseUpdate is the job body: deliver the fixed-template message
	// to every subscriber of the course.
	SendCourseUpdate(ctx context.Context, courseID string) error
	// NotifyAdmins sends one message to every admin account.
	NotifyAdmins(subject, body string) error
}

type notificationService struct {
	queue            Enqueuer
	courseRepo       repositories.CourseRepository
	subscriptionRepo repositories.SubscriptionRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
	courseDebounce   time.Duration
	lessonDebounce   time.Duration
}

func NewNotificationService(
	queue Enqueuer,
	courseRepo repositories.CourseRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	courseDebounce, lessonDebounce time.Duration,
) NotificationService {
	return &notificationService{
		queue:            queue,
		courseRepo:       courseRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
		courseDebounce:   courseDebounce,
		lessonDebounce:   lessonDebounce,
	}
}

// shouldNotify: no prior update, or the window has elapsed.
func shouldNotify(lastUpdate time.Time, window time.Duration) bool {
	if lastUpdate.IsZero() {
		return true
	}
	return time.Since(lastUpdate) > window
}

func (s *notificationService) CourseUpdated(courseID string, lastUpdate time.Time) bool {
	if !shouldNotify(lastUpdate, s.courseDebounce) {
		return false
	}
	s.enqueueCourseUpdate(courseID)
	return true
}

func (s *notificationService) LessonUpdated(lesson *models.Lesson, lastUpdate time.Time) bool {
	if lesson.CourseID == nil {
		return false
	}
	if !shouldNotify(lastUpdate, s.lessonDebounce) {
		return false
	}
	s.enqueueCourseUpdate(*lesson.CourseID)
	return true
}

func (s *notificationService) enqueueCourseUpdate(courseID string) {
	job := &courseUpdateJob{svc: s, courseID: courseID}
	if err := s.queue.Enqueue(job); err != nil {
		// The update itself already succeeded; losing a notification is
		// reportable but not fatal.
		logger.Error("failed to enqueue course update notification",
			"course_id", courseID, "error", err.Error())
	}
}

func (s *notificationService) SendCourseUpdate(ctx context.Context, courseID string) error {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		return fmt.Errorf("load course %s: %w", courseID, err)
	}

	recipients, err := s.subscriptionRepo.SubscriberEmails(courseID)
	if err != nil {
		return fmt.Errorf("load subscribers of course %s: %w", courseID, err)
	}
	if len(recipients) == 0 {
		return nil
	}

	subject := "Course materials updated"
	body := fmt.Sprintf("The course %q has been updated.", course.Name)

	// One recipient failing must not block the rest.
	var delivery []error
	for _, to := range recipients {
		if err := s.emailProvider.Send(&email.Email{
			To:      []string{to},
			Subject: subject,
			Body:    body,
		}); err != nil {
			logger.Error("course update mail failed",
				"course_id", courseID, "recipient", to, "error", err.Error())
			delivery = append(delivery, err)
		}
	}
	return errors.Join(delivery...)
}

func (s *notificationService) NotifyAdmins(subject, body string) error {
	admins, err := s.userRepo.FindByRole(models.UserRoleAdmin)
	if err != nil {
		return fmt.Errorf("load admin users: %w", err)
	}
	if len(admins) == 0 {
		return nil
	}

	recipients := make([]string, 0, len(admins))
	for _, a := range admins {
		recipients = append(recipients, a.Email)
	}

	return s.emailProvider.Send(&email.Email{
		To:      recipients,
		Subject: subject,
		Body:    body,
	})
}

// courseUpdateJob carries only the course id; the job re-reads state when
// it runs so stale payloads are harmless.
type courseUpdateJob struct {
	svc      *notificationService
	courseID string
}

func (j *courseUpdateJob) Name() string {
	return "course_update_notification"
}

func (j *courseUpdateJob) Run(ctx context.Context) error {
	return j.svc.SendCourseUpdate(ctx, j.courseID)
}
