package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/blog-service/internal/domain"
	"github.com/spec-kit/blog-service/internal/repository"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

// UserService handles profile reads and updates for the authenticated
// account. Username, password and role are out of its reach; only the
// linked person profile (name, email) is mutable here.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get fetches an account by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateProfile replaces the caller's display name and email.
func (s *UserService) UpdateProfile(ctx context.Context, actor *domain.User, name, email string) (*domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewBadRequest("Name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewBadRequest("Email is required")
	}

	user, err := s.Get(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateProfile(ctx, user.ID, name, email); err != nil {
		return nil, apperrors.MapError(err)
	}

	user.Name = name
	user.Email = email
	return user, nil
}
