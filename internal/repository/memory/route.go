package memory

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
)

func (r *RouteRepo) Create(ctx context.Context, route domain.NewRoute) (*domain.Route, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &domain.Route{
		ID:              uuid.New(),
		Title:           route.Title,
		Description:     route.Description,
		LongDescription: route.LongDescription,
		Category:        route.Category,
		HeroImage:       route.HeroImage,
		Duration:        route.Duration,
		Distance:        route.Distance,
		Difficulty:      route.Difficulty,
		Rating:          0,
		ReviewCount:     0,
		Stops:           append(domain.StopList{}, route.Stops...),
		IsPublished:     route.IsPublished,
		CreatedBy:       route.CreatedBy,
		CreatedAt:       s.now(),
	}
	s.routes[record.ID] = record
	s.routeOrder = append(s.routeOrder, record.ID)
	return cloneRoute(record), nil
}

func (r *RouteRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	route, ok := s.routes[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return cloneRoute(route), nil
}

func (r *RouteRepo) ListPublished(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Route, 0)
	for _, id := range s.routeOrder {
		route := s.routes[id]
		if !route.IsPublished {
			continue
		}
		if !filter.Matches(route) {
			continue
		}
		result = append(result, *cloneRoute(route))
	}

	// Ties keep insertion order.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rating > result[j].Rating
	})
	return result, nil
}

func (r *RouteRepo) Update(ctx context.Context, id uuid.UUID, patch domain.RoutePatch) (*domain.Route, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	route, ok := s.routes[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	if patch.Title != nil {
		route.Title = *patch.Title
	}
	if patch.Description != nil {
		route.Description = *patch.Description
	}
	if patch.LongDescription != nil {
		route.LongDescription = patch.LongDescription
	}
	if patch.Category != nil {
		route.Category = *patch.Category
	}
	if patch.HeroImage != nil {
		route.HeroImage = *patch.HeroImage
	}
	if patch.Duration != nil {
		route.Duration = *patch.Duration
	}
	if patch.Distance != nil {
		route.Distance = *patch.Distance
	}
	if patch.Difficulty != nil {
		route.Difficulty = *patch.Difficulty
	}
	if patch.Rating != nil {
		route.Rating = *patch.Rating
	}
	if patch.ReviewCount != nil {
		route.ReviewCount = *patch.ReviewCount
	}
	if patch.Stops != nil {
		route.Stops = append(domain.StopList{}, patch.Stops...)
	}
	if patch.IsPublished != nil {
		route.IsPublished = *patch.IsPublished
	}
	return cloneRoute(route), nil
}
