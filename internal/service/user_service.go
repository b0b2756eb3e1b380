package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/ports"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("username or email already taken")
)

type UserService struct {
	users ports.UserRepository
}

func NewUserService(userRepo ports.UserRepository) *UserService {
	return &UserService{users: userRepo}
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create registers an account. Not reachable over HTTP; seeding and tests
// go through it.
func (s *UserService) Create(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	verr := &domain.ValidationError{}
	if input.Username == "" {
		verr.Add("username", "is required")
	}
	if input.Email == "" {
		verr.Add("email", "is required")
	}
	if input.Name == "" {
		verr.Add("name", "is required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !isNotFound(err) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !isNotFound(err) {
		return nil, err
	}

	user, err := s.users.Create(ctx, input)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}
