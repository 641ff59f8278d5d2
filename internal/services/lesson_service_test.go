package services

import (
	"testing"
	"time"

	"lms_backend/internal/models"
	"lms_backend/internal/services/dto"
	"lms_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessonFixture(t *testing.T) (*fakeLessonRepo, *fakeCourseRepo, *fakeEnqueuer, LessonService) {
	t.Helper()

	lessons := newFakeLessonRepo()
	courses := newFakeCourseRepo()
	q := &fakeEnqueuer{}
	notifications := newTestNotificationService(q, courses, newFakeSubscriptionRepo(), newFakeUserRepo(), &fakeEmailProvider{})
	svc := NewLessonService(lessons, courses, notifications)
	return lessons, courses, q, svc
}

func TestLessonCreate_ModeratorDenied(t *testing.T) {
	t.Parallel()

	_, _, _, svc := lessonFixture(t)

	_, err := svc.Create("mod-1", models.UserRoleModerator, &dto.CreateLessonRequest{Name: "Intro"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestLessonCreate_UnknownCourseIs404(t *testing.T) {
	t.Parallel()

	lessons, _, _, svc := lessonFixture(t)
	missing := "missing-course"

	_, err := svc.Create("user-1", models.UserRoleMember, &dto.CreateLessonRequest{
		Name:     "Intro",
		CourseID: &missing,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Empty(t, lessons.lessons)
}

func TestLessonCreate_AttachesToCourse(t *testing.T) {
	t.Parallel()

	_, courses, _, svc := lessonFixture(t)
	course := &models.Course{Name: "Go Basics"}
	require.NoError(t, courses.Create(course))

	resp, err := svc.Create("user-1", models.UserRoleMember, &dto.CreateLessonRequest{
		Name:     "Intro",
		VideoURL: "https://youtube.com/watch?v=abc",
		CourseID: &course.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CourseID)
	assert.Equal(t, course.ID, *resp.CourseID)
	require.NotNil(t, resp.OwnerID)
	assert.Equal(t, "user-1", *resp.OwnerID)
}

func TestLessonUpdate_TriggersCourseNotification(t *testing.T) {
	t.Parallel()

	lessons, courses, q, svc := lessonFixture(t)
	course := &models.Course{Name: "Go Basics"}
	require.NoError(t, courses.Create(course))

	owner := "user-1"
	lesson := &models.Lesson{Name: "Intro", OwnerID: &owner, CourseID: &course.ID}
	require.NoError(t, lessons.Create(lesson))
	lessons.lessons[lesson.ID].UpdatedAt = time.Now().Add(-4 * time.Hour)

	name := "Intro v2"
	_, err := svc.Update("user-1", models.UserRoleMember, lesson.ID, &dto.UpdateLessonRequest{Name: &name})
	require.NoError(t, err)

	assert.Len(t, q.jobs, 1)
}

func TestLessonUpdate_ModeratorAllowed(t *testing.T) {
	t.Parallel()

	lessons, _, _, svc := lessonFixture(t)
	owner := "user-1"
	lesson := &models.Lesson{Name: "Intro", OwnerID: &owner}
	require.NoError(t, lessons.Create(lesson))

	name := "Edited by moderator"
	resp, err := svc.Update("mod-1", models.UserRoleModerator, lesson.ID, &dto.UpdateLessonRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Edited by moderator", resp.Name)
}

func TestLessonDelete_StrangerDenied(t *testing.T) {
	t.Parallel()

	lessons, _, _, svc := lessonFixture(t)
	owner := "user-1"
	lesson := &models.Lesson{Name: "Intro", OwnerID: &owner}
	require.NoError(t, lessons.Create(lesson))

	err := svc.Delete("stranger", models.UserRoleMember, lesson.ID)
	require.Error(t, err)

	_, err = lessons.FindByID(lesson.ID)
	assert.NoError(t, err)
}
