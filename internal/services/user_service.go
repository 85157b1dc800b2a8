package services

import (
	"context"
	"errors"
	"strings"

	"atelier_backend/internal/auth"
	"atelier_backend/internal/logger"
	"atelier_backend/internal/models"
	"atelier_backend/internal/repositories"
	"atelier_backend/pkg/apperrors"
)

const userDomain = "users"

// UserService manages studio admin accounts.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// EnsureUser creates the account unless one with that username already exists.
	EnsureUser(ctx context.Context, username, password string) (user *models.User, created bool, err error)
}

type userService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.ValidationError(`Validation error: "username" is required`, nil)
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, apperrors.ValidationError(`Validation error: "password" `+strings.TrimPrefix(err.Error(), "password "), nil)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.FailedTo(userDomain, "hash password", err)
	}

	user, err := s.repo.CreateUser(ctx, &models.User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return nil, apperrors.ErrAlreadyExists(userDomain, "Username already taken", err)
		}
		return nil, apperrors.FailedTo(userDomain, "create user", err)
	}
	logger.CtxInfo(ctx, "user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err)
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, mapUserError(err)
	}
	return user, nil
}

func (s *userService) EnsureUser(ctx context.Context, username, password string) (*models.User, bool, error) {
	existing, err := s.repo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, apperrors.FailedTo(userDomain, "fetch user", err)
	}

	user, err := s.Register(ctx, username, password)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func mapUserError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrNotFound(userDomain, "User", err)
	}
	return apperrors.FailedTo(userDomain, "fetch user", err)
}
