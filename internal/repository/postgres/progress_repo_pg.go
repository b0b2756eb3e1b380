package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/ports"
)

const progressColumns = `id, user_id, route_id, current_stop_index, is_completed,
	       photos_shared, started_at, completed_at`

type ProgressRepository struct {
	db *sqlx.DB
}

func NewProgressRepo(db *sqlx.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Find(ctx context.Context, userID, routeID uuid.UUID) (*domain.RouteProgress, error) {
	query := `SELECT ` + progressColumns + `
		FROM user_route_progress
		WHERE user_id = $1 AND route_id = $2`

	var progress domain.RouteProgress
	if err := r.db.GetContext(ctx, &progress, query, userID, routeID); err != nil {
		return nil, err
	}
	return &progress, nil
}

// Upsert runs as one statement, so the per-key merge is atomic on the
// unique (user_id, route_id) pair. NULL patch fields keep the stored value;
// completed_at moves only when the patch explicitly carries is_completed
// true, and is never cleared.
func (r *ProgressRepository) Upsert(ctx context.Context, userID, routeID uuid.UUID, patch domain.ProgressPatch) (*domain.RouteProgress, error) {
	query := `
		INSERT INTO user_route_progress (
			user_id, route_id, current_stop_index, is_completed, photos_shared, completed_at
		) VALUES (
			$1, $2,
			COALESCE($3, 0),
			COALESCE($4, FALSE),
			COALESCE($5, '[]'::jsonb),
			CASE WHEN COALESCE($4, FALSE) THEN NOW() END
		)
		ON CONFLICT (user_id, route_id) DO UPDATE SET
			current_stop_index = COALESCE($3, user_route_progress.current_stop_index),
			is_completed = COALESCE($4, user_route_progress.is_completed),
			photos_shared = COALESCE($5, user_route_progress.photos_shared),
			completed_at = CASE
				WHEN COALESCE($4, FALSE) THEN NOW()
				ELSE user_route_progress.completed_at
			END
		RETURNING ` + progressColumns

	var photos any
	if patch.PhotosShared != nil {
		photos = domain.PhotoList(patch.PhotosShared)
	}

	row := r.db.QueryRowxContext(ctx, query,
		userID, routeID, patch.CurrentStopIndex, patch.IsCompleted, photos)

	var progress domain.RouteProgress
	if err := row.StructScan(&progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) ListCompletedRoutes(ctx context.Context, userID uuid.UUID) ([]domain.Route, error) {
	query := `
		SELECT r.id, r.title, r.description, r.long_description, r.category,
		       r.hero_image, r.duration, r.distance, r.difficulty, r.rating,
		       r.review_count, r.stops, r.is_published, r.created_by, r.created_at
		FROM user_route_progress p
		JOIN walking_route r ON r.id = p.route_id
		WHERE p.user_id = $1 AND p.is_completed
		ORDER BY r.created_at ASC, r.id ASC`

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

var _ ports.ProgressRepository = (*ProgressRepository)(nil)
