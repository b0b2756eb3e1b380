package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/ports"
)

const routeColumns = `id, title, description, long_description, category, hero_image,
	       duration, distance, difficulty, rating, review_count, stops,
	       is_published, created_by, created_at`

type RouteRepository struct {
	db *sqlx.DB
}

func NewRouteRepo(db *sqlx.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) Create(ctx context.Context, route domain.NewRoute) (*domain.Route, error) {
	query := `
		INSERT INTO walking_route (
			title, description, long_description, category, hero_image,
			duration, distance, difficulty, stops, is_published, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + routeColumns

	row := r.db.QueryRowxContext(ctx, query,
		route.Title,
		route.Description,
		route.LongDescription,
		route.Category,
		route.HeroImage,
		route.Duration,
		route.Distance,
		route.Difficulty,
		domain.StopList(route.Stops),
		route.IsPublished,
		route.CreatedBy,
	)

	var stored domain.Route
	if err := row.StructScan(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *RouteRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM walking_route WHERE id = $1`

	var route domain.Route
	if err := r.db.GetContext(ctx, &route, query, id); err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *RouteRepository) ListPublished(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error) {
	where := []string{"is_published = TRUE"}
	args := []any{}
	idx := 1

	if filter.Category != nil {
		where = append(where, fmt.Sprintf("category = $%d", idx))
		args = append(args, *filter.Category)
		idx++
	}
	if filter.Difficulty != nil {
		where = append(where, fmt.Sprintf("difficulty = $%d", idx))
		args = append(args, *filter.Difficulty)
		idx++
	}
	if filter.Duration != nil {
		switch *filter.Duration {
		case domain.BucketShort:
			where = append(where, "duration < 60")
		case domain.BucketMedium:
			where = append(where, "duration BETWEEN 60 AND 180")
		case domain.BucketLong:
			where = append(where, "duration > 180")
		}
	}
	if filter.Distance != nil {
		switch *filter.Distance {
		case domain.BucketShort:
			where = append(where, "distance < 2")
		case domain.BucketMedium:
			where = append(where, "distance BETWEEN 2 AND 5")
		case domain.BucketLong:
			where = append(where, "distance > 5")
		}
	}

	query := `SELECT ` + routeColumns + `
		FROM walking_route
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY rating DESC, created_at ASC, id ASC`

	rows, err := r.db.QueryxContext(ctx, query, args...)
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

func (r *RouteRepository) Update(ctx context.Context, id uuid.UUID, patch domain.RoutePatch) (*domain.Route, error) {
	setParts := []string{}
	args := []any{}
	idx := 1

	appendSet := func(column string, value any) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.LongDescription != nil {
		appendSet("long_description", patch.LongDescription)
	}
	if patch.Category != nil {
		appendSet("category", *patch.Category)
	}
	if patch.HeroImage != nil {
		appendSet("hero_image", *patch.HeroImage)
	}
	if patch.Duration != nil {
		appendSet("duration", *patch.Duration)
	}
	if patch.Distance != nil {
		appendSet("distance", *patch.Distance)
	}
	if patch.Difficulty != nil {
		appendSet("difficulty", *patch.Difficulty)
	}
	if patch.Rating != nil {
		appendSet("rating", *patch.Rating)
	}
	if patch.ReviewCount != nil {
		appendSet("review_count", *patch.ReviewCount)
	}
	if patch.Stops != nil {
		appendSet("stops", domain.StopList(patch.Stops))
	}
	if patch.IsPublished != nil {
		appendSet("is_published", *patch.IsPublished)
	}

	if len(setParts) == 0 {
		return r.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`
		UPDATE walking_route
		SET %s
		WHERE id = $%d
		RETURNING %s`, strings.Join(setParts, ", "), idx, routeColumns)
	args = append(args, id)

	var route domain.Route
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&route); err != nil {
		return nil, err
	}
	return &route, nil
}

var _ ports.RouteRepository = (*RouteRepository)(nil)
