package services

import (
	"time"

	"lms_backend/internal/auth"
	"lms_backend/internal/logger"
	"lms_backend/internal/models"
	"lms_backend/internal/repositories"
	"lms_backend/internal/services/dto"
	"lms_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(req *dto.RefreshRequest) (*dto.LoginResponse, error)
	Logout(req *dto.LogoutRequest) error
}

type authService struct {
	userRepo   repositories.UserRepository
	tokenRepo  repositories.RefreshTokenRepository
	refreshTTL time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		refreshTTL: refreshTTL,
	}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleMember,
		Status:       models.UserStatusActive,
		Phone:        req.Phone,
		City:         req.City,
	}
	if err := s.userRepo.Create(user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID)
	return buildUserResponse(user), nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status == models.UserStatusBlocked {
		return nil, apperrors.ErrUserBlocked
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.LastLoginAt = &now

	return s.issueTokens(user)
}

// Refresh rotates the refresh token: the presented token is consumed and a
// new pair is issued, so a replayed token fails.
func (s *authService) Refresh(req *dto.RefreshRequest) (*dto.LoginResponse, error) {
	stored, err := s.tokenRepo.FindByToken(req.RefreshToken)
	if err != nil {
		if err == repositories.ErrRefreshTokenNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokenRepo.DeleteByToken(stored.Token)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Status == models.UserStatusBlocked {
		return nil, apperrors.ErrUserBlocked
	}

	if err := s.tokenRepo.DeleteByToken(stored.Token); err != nil &&
		err != repositories.ErrRefreshTokenNotFound {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *authService) Logout(req *dto.LogoutRequest) error {
	if err := s.tokenRepo.DeleteByToken(req.RefreshToken); err != nil {
		if err == repositories.ErrRefreshTokenNotFound {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	access, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.tokenRepo.Create(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		User:         buildUserResponse(user),
	}, nil
}
