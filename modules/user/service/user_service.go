package service

import (
	"context"

	"roomboard/core/errors"
	"roomboard/core/utils"
	"roomboard/modules/user/entity"
	"roomboard/modules/user/repository"

	"github.com/google/uuid"
)

// UserService handles credential verification and provisioning
type UserService struct {
	repo repository.UserRepositoryInterface
}

// UserServiceInterface defines the service contract
type UserServiceInterface interface {
	Verify(ctx context.Context, loginName string, password string) (*entity.RoomAssignment, *errors.AppError)
	Create(ctx context.Context, loginName string, password string, room string) (*entity.RoomUser, *errors.AppError)
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface) UserServiceInterface {
	return &UserService{repo: repo}
}

// Verify checks the credentials and returns the room assigned to the account.
// A failed match and an unknown login are indistinguishable to the caller.
func (s *UserService) Verify(ctx context.Context, loginName string, password string) (*entity.RoomAssignment, *errors.AppError) {
	if loginName == "" || password == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "missing credentials", nil)
	}

	user, err := s.repo.GetByLoginName(ctx, loginName)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load user", err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	return &entity.RoomAssignment{
		LoginName: user.LoginName,
		Room:      user.Room,
	}, nil
}

// Create provisions a display-client account for a room.
func (s *UserService) Create(ctx context.Context, loginName string, password string, room string) (*entity.RoomUser, *errors.AppError) {
	if loginName == "" || password == "" || room == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "loginname, password and room are required", nil)
	}

	existing, err := s.repo.GetByLoginName(ctx, loginName)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "loginname already taken", nil)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &entity.RoomUser{
		ID:           uuid.New(),
		LoginName:    loginName,
		Room:         room,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}

	return user, nil
}
