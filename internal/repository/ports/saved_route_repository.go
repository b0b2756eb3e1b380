package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
)

type SavedRouteRepository interface {
	// Add bookmarks a route for a user. Adding an existing pair returns the
	// record already stored instead of duplicating it.
	Add(ctx context.Context, userID, routeID uuid.UUID) (*domain.SavedRoute, error)
	// Remove deletes the bookmark; a missing pair reports not-found.
	Remove(ctx context.Context, userID, routeID uuid.UUID) error
	// ListRoutes resolves the user's bookmarks against the route store,
	// silently dropping routeIds that no longer resolve.
	ListRoutes(ctx context.Context, userID uuid.UUID) ([]domain.Route, error)
}
