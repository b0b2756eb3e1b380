package memory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
)

func (r *UserRepo) Create(ctx context.Context, user domain.NewUser) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &domain.User{
		ID:           uuid.New(),
		Username:     user.Username,
		Email:        user.Email,
		Name:         user.Name,
		ProfileImage: user.ProfileImage,
		Location:     user.Location,
		CreatedAt:    s.now(),
	}
	s.users[record.ID] = record
	return cloneUser(record), nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return cloneUser(user), nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, sql.ErrNoRows
}
