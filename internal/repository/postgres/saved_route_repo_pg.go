package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/ports"
)

type SavedRouteRepository struct {
	db *sqlx.DB
}

func NewSavedRouteRepo(db *sqlx.DB) *SavedRouteRepository {
	return &SavedRouteRepository{db: db}
}

// Add is idempotent on the unique pair: the no-op DO UPDATE makes RETURNING
// yield the existing row instead of nothing.
func (r *SavedRouteRepository) Add(ctx context.Context, userID, routeID uuid.UUID) (*domain.SavedRoute, error) {
	const query = `
		INSERT INTO saved_route (user_id, route_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, route_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, route_id, created_at
	`

	var saved domain.SavedRoute
	if err := r.db.GetContext(ctx, &saved, query, userID, routeID); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *SavedRouteRepository) Remove(ctx context.Context, userID, routeID uuid.UUID) error {
	const query = `
		DELETE FROM saved_route
		WHERE user_id = $1 AND route_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, userID, routeID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SavedRouteRepository) ListRoutes(ctx context.Context, userID uuid.UUID) ([]domain.Route, error) {
	// The join drops bookmarks whose route has disappeared.
	const query = `
		SELECT r.id, r.title, r.description, r.long_description, r.category,
		       r.hero_image, r.duration, r.distance, r.difficulty, r.rating,
		       r.review_count, r.stops, r.is_published, r.created_by, r.created_at
		FROM saved_route s
		JOIN walking_route r ON r.id = s.route_id
		WHERE s.user_id = $1
		ORDER BY s.created_at ASC, s.id ASC
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var route domain.Route
		if err := rows.StructScan(&route); err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return routes, nil
}

var _ ports.SavedRouteRepository = (*SavedRouteRepository)(nil)
