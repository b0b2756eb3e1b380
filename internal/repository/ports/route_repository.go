package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
)

type RouteRepository interface {
	Create(ctx context.Context, route domain.NewRoute) (*domain.Route, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Route, error)
	// ListPublished returns published routes passing the filter, ordered by
	// rating descending.
	ListPublished(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.RoutePatch) (*domain.Route, error)
}
