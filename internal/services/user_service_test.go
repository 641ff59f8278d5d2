package services

import (
	"testing"

	"lms_backend/internal/models"
	"lms_backend/internal/services/dto"
	"lms_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGet_FullProfileForSelf(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	user := &models.User{Email: "me@example.com", Role: models.UserRoleMember, Status: models.UserStatusActive, City: "Berlin"}
	require.NoError(t, users.Create(user))

	svc := NewUserService(users)

	profile, err := svc.Get(user.ID, user.ID)
	require.NoError(t, err)

	full, ok := profile.(*dto.UserResponse)
	require.True(t, ok, "own profile must be the full response")
	assert.Equal(t, "me@example.com", full.Email)
	assert.Equal(t, "member", full.Role)
}

func TestUserGet_ReducedProfileForOthers(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	target := &models.User{Email: "them@example.com", Role: models.UserRoleMember, Status: models.UserStatusActive}
	require.NoError(t, users.Create(target))

	svc := NewUserService(users)

	profile, err := svc.Get("someone-else", target.ID)
	require.NoError(t, err)

	base, ok := profile.(*dto.UserBaseResponse)
	require.True(t, ok, "foreign profile must be the reduced response")
	assert.Equal(t, "them@example.com", base.Email)
}

func TestUserUpdate_SelfOnly(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	user := &models.User{Email: "me@example.com", Status: models.UserStatusActive}
	require.NoError(t, users.Create(user))

	svc := NewUserService(users)

	city := "Munich"
	resp, err := svc.Update(user.ID, user.ID, &dto.UpdateUserRequest{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Munich", resp.City)

	_, err = svc.Update("attacker", user.ID, &dto.UpdateUserRequest{City: &city})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestUserUpdate_EmailCollision(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	a := &models.User{Email: "a@example.com", Status: models.UserStatusActive}
	b := &models.User{Email: "b@example.com", Status: models.UserStatusActive}
	require.NoError(t, users.Create(a))
	require.NoError(t, users.Create(b))

	svc := NewUserService(users)

	taken := "b@example.com"
	_, err := svc.Update(a.ID, a.ID, &dto.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUserDelete_SelfOnly(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	user := &models.User{Email: "me@example.com", Status: models.UserStatusActive}
	require.NoError(t, users.Create(user))

	svc := NewUserService(users)

	require.Error(t, svc.Delete("attacker", user.ID))
	_, err := users.FindByID(user.ID)
	assert.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID, user.ID))
	_, err = users.FindByID(user.ID)
	assert.Error(t, err)
}
