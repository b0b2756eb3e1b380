package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
)

type ProgressRepository interface {
	Find(ctx context.Context, userID, routeID uuid.UUID) (*domain.RouteProgress, error)
	// Upsert creates or merges the progress record for (userID, routeID).
	// The whole lookup-merge-store step is atomic per key: concurrent
	// upserts for the same pair never lose a write.
	Upsert(ctx context.Context, userID, routeID uuid.UUID, patch domain.ProgressPatch) (*domain.RouteProgress, error)
	// ListCompletedRoutes resolves the routes the user has completed.
	ListCompletedRoutes(ctx context.Context, userID uuid.UUID) ([]domain.Route, error)
}
