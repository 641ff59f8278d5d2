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

func courseFixture(t *testing.T) (*fakeCourseRepo, *fakeEnqueuer, CourseService) {
	t.Helper()

	courses := newFakeCourseRepo()
	subs := newFakeSubscriptionRepo()
	q := &fakeEnqueuer{}
	notifications := newTestNotificationService(q, courses, subs, newFakeUserRepo(), &fakeEmailProvider{})
	svc := NewCourseService(courses, subs, notifications)
	return courses, q, svc
}

func TestCourseCreate_ModeratorDenied(t *testing.T) {
	t.Parallel()

	_, _, svc := courseFixture(t)

	_, err := svc.Create("mod-1", models.UserRoleModerator, &dto.CreateCourseRequest{Name: "X"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestCourseCreate_SetsOwner(t *testing.T) {
	t.Parallel()

	courses, _, svc := courseFixture(t)

	resp, err := svc.Create("user-1", models.UserRoleMember, &dto.CreateCourseRequest{Name: "Go Basics"})
	require.NoError(t, err)

	require.NotNil(t, resp.OwnerID)
	assert.Equal(t, "user-1", *resp.OwnerID)

	stored, err := courses.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", stored.Name)
}

func TestCourseGet_OwnerAndModeratorOnly(t *testing.T) {
	t.Parallel()

	courses, _, svc := courseFixture(t)
	owner := "user-1"
	course := &models.Course{Name: "Go Basics", OwnerID: &owner}
	require.NoError(t, courses.Create(course))

	_, err := svc.Get("user-1", models.UserRoleMember, course.ID)
	assert.NoError(t, err)

	_, err = svc.Get("mod-1", models.UserRoleModerator, course.ID)
	assert.NoError(t, err)

	_, err = svc.Get("stranger", models.UserRoleMember, course.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestCourseDelete_ModeratorDenied(t *testing.T) {
	t.Parallel()

	courses, _, svc := courseFixture(t)
	owner := "user-1"
	course := &models.Course{Name: "Go Basics", OwnerID: &owner}
	require.NoError(t, courses.Create(course))

	err := svc.Delete("mod-1", models.UserRoleModerator, course.ID)
	require.Error(t, err)

	// The course is still there.
	_, err = courses.FindByID(course.ID)
	assert.NoError(t, err)

	require.NoError(t, svc.Delete("user-1", models.UserRoleMember, course.ID))
	_, err = courses.FindByID(course.ID)
	assert.Error(t, err)
}

func TestCourseUpdate_EnqueuesNotificationOnce(t *testing.T) {
	t.Parallel()

	courses, q, svc := courseFixture(t)
	owner := "user-1"
	course := &models.Course{Name: "Go Basics", OwnerID: &owner}
	require.NoError(t, courses.Create(course))

	// Make the stored record look stale so the debounce lets it through.
	courses.courses[course.ID].UpdatedAt = time.Now().Add(-5 * time.Hour)

	name := "Go Basics v2"
	_, err := svc.Update("user-1", models.UserRoleMember, course.ID, &dto.UpdateCourseRequest{Name: &name})
	require.NoError(t, err)
	require.Len(t, q.jobs, 1)

	// The second update lands inside the window: no second job.
	name = "Go Basics v3"
	_, err = svc.Update("user-1", models.UserRoleMember, course.ID, &dto.UpdateCourseRequest{Name: &name})
	require.NoError(t, err)
	assert.Len(t, q.jobs, 1)
}

func TestCourseGet_UnknownIs404(t *testing.T) {
	t.Parallel()

	_, _, svc := courseFixture(t)

	_, err := svc.Get("user-1", models.UserRoleMember, "missing")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestCourseList_ScopedByRole(t *testing.T) {
	t.Parallel()

	courses, _, svc := courseFixture(t)
	ownerA, ownerB := "user-a", "user-b"
	require.NoError(t, courses.Create(&models.Course{Name: "A", OwnerID: &ownerA}))
	require.NoError(t, courses.Create(&models.Course{Name: "B", OwnerID: &ownerB}))

	own, err := svc.List("user-a", models.UserRoleMember, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), own.Total)

	all, err := svc.List("mod-1", models.UserRoleModerator, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
}
