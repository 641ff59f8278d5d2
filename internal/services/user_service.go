package services

import (
	"lms_backend/internal/auth"
	"lms_backend/internal/models"
	"lms_backend/internal/repositories"
	"lms_backend/internal/services/dto"
	"lms_backend/pkg/apperrors"
)

type UserService interface {
	List(page, pageSize int) (*dto.UserListResponse, error)
	Get(requesterID, targetID string) (interface{}, error)
	Update(requesterID, targetID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(requesterID, targetID string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(page, pageSize int) (*dto.UserListResponse, error) {
	limit := pageSize
	offset := (page - 1) * pageSize

	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users:    make([]dto.UserBaseResponse, 0, len(users)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range users {
		resp.Users = append(resp.Users, buildUserBaseResponse(&users[i]))
	}
	return resp, nil
}

// Get returns the full profile for the account owner and the reduced one
// for anybody else.
func (s *userService) Get(requesterID, targetID string) (interface{}, error) {
	user, err := s.findUser(targetID)
	if err != nil {
		return nil, err
	}

	if requesterID == targetID {
		return buildUserResponse(user), nil
	}
	base := buildUserBaseResponse(user)
	return &base, nil
}

func (s *userService) Update(requesterID, targetID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if d := auth.UserModify(requesterID, targetID); !d.Allowed {
		return nil, apperrors.NewForbiddenError(d.Reason)
	}

	user, err := s.findUser(targetID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*req.Email); err == nil {
			return nil, apperrors.ErrEmailAlreadyExists
		} else if err != repositories.ErrUserNotFound {
			return nil, apperrors.InternalError(err)
		}
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.City != nil {
		user.City = *req.City
	}

	if err := s.userRepo.Update(user); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return buildUserResponse(user), nil
}

func (s *userService) Delete(requesterID, targetID string) error {
	if d := auth.UserModify(requesterID, targetID); !d.Allowed {
		return apperrors.NewForbiddenError(d.Reason)
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	payments := make([]dto.PaymentResponse, 0, len(user.Payments))
	for i := range user.Payments {
		payments = append(payments, buildPaymentResponse(&user.Payments[i]))
	}

	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Phone:       user.Phone,
		City:        user.City,
		Role:        string(user.Role),
		Status:      string(user.Status),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		Payments:    payments,
	}
}

func buildUserBaseResponse(user *models.User) dto.UserBaseResponse {
	return dto.UserBaseResponse{
		ID:    user.ID,
		Email: user.Email,
		Phone: user.Phone,
		City:  user.City,
	}
}
