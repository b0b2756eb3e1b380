package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.NewUser) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
