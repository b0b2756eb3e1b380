package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/ports"
)

var ErrRouteNotFound = errors.New("route not found")

const maxRouteRating = 5

type RouteService struct {
	routes ports.RouteRepository
}

func NewRouteService(routeRepo ports.RouteRepository) *RouteService {
	return &RouteService{routes: routeRepo}
}

// List runs the discovery query: published routes matching every set
// filter, ordered by rating descending. Read-only.
func (s *RouteService) List(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error) {
	return s.routes.ListPublished(ctx, filter)
}

func (s *RouteService) Get(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	route, err := s.routes.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return route, nil
}

func (s *RouteService) Create(ctx context.Context, input domain.NewRoute) (*domain.Route, error) {
	if input.Difficulty == "" {
		input.Difficulty = domain.DifficultyEasy
	}
	if err := validateNewRoute(input); err != nil {
		return nil, err
	}
	return s.routes.Create(ctx, input)
}

func (s *RouteService) Update(ctx context.Context, id uuid.UUID, patch domain.RoutePatch) (*domain.Route, error) {
	if err := validateRoutePatch(patch); err != nil {
		return nil, err
	}
	route, err := s.routes.Update(ctx, id, patch)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return route, nil
}

func validateNewRoute(input domain.NewRoute) error {
	verr := &domain.ValidationError{}

	if input.Title == "" {
		verr.Add("title", "is required")
	}
	if input.Description == "" {
		verr.Add("description", "is required")
	}
	if input.HeroImage == "" {
		verr.Add("heroImage", "is required")
	}
	if !input.Category.Valid() {
		verr.Add("category", fmt.Sprintf("must be one of %s, %s, %s, %s",
			domain.CategoryFoodDrink, domain.CategoryCultureArt,
			domain.CategoryHiddenGems, domain.CategoryNightlife))
	}
	if !input.Difficulty.Valid() {
		verr.Add("difficulty", fmt.Sprintf("must be one of %s, %s, %s",
			domain.DifficultyEasy, domain.DifficultyModerate, domain.DifficultyChallenging))
	}
	if input.Duration < 0 {
		verr.Add("duration", "must be zero or more minutes")
	}
	if input.Distance < 0 {
		verr.Add("distance", "must be zero or more kilometers")
	}
	validateStops(verr, input.Stops)

	return verr.Err()
}

func validateRoutePatch(patch domain.RoutePatch) error {
	verr := &domain.ValidationError{}

	if patch.Title != nil && *patch.Title == "" {
		verr.Add("title", "cannot be empty")
	}
	if patch.Category != nil && !patch.Category.Valid() {
		verr.Add("category", "unknown category")
	}
	if patch.Difficulty != nil && !patch.Difficulty.Valid() {
		verr.Add("difficulty", "unknown difficulty")
	}
	if patch.Duration != nil && *patch.Duration < 0 {
		verr.Add("duration", "must be zero or more minutes")
	}
	if patch.Distance != nil && *patch.Distance < 0 {
		verr.Add("distance", "must be zero or more kilometers")
	}
	if patch.Rating != nil && (*patch.Rating < 0 || *patch.Rating > maxRouteRating) {
		verr.Add("rating", "must be between 0 and 5")
	}
	if patch.ReviewCount != nil && *patch.ReviewCount < 0 {
		verr.Add("reviewCount", "must be zero or more")
	}
	if patch.Stops != nil {
		validateStops(verr, patch.Stops)
	}

	return verr.Err()
}

// Stop order values must be unique and strictly increasing; the sequence
// defines traversal order for progress tracking.
func validateStops(verr *domain.ValidationError, stops []domain.RouteStop) {
	lastOrder := 0
	for i, stop := range stops {
		field := fmt.Sprintf("stops[%d]", i)
		if stop.Name == "" {
			verr.Add(field+".name", "is required")
		}
		if stop.Latitude < -90 || stop.Latitude > 90 {
			verr.Add(field+".latitude", "must be between -90 and 90")
		}
		if stop.Longitude < -180 || stop.Longitude > 180 {
			verr.Add(field+".longitude", "must be between -180 and 180")
		}
		if stop.Order <= lastOrder {
			verr.Add(field+".order", "must be positive and strictly increasing")
		} else {
			lastOrder = stop.Order
		}
		if stop.EstimatedTimeMinutes < 0 {
			verr.Add(field+".estimatedTimeMinutes", "must be zero or more")
		}
	}
}
