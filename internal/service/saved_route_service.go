package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/ports"
)

var ErrSavedRouteNotFound = errors.New("saved route not found")

type SavedRouteService struct {
	saved ports.SavedRouteRepository
}

func NewSavedRouteService(savedRepo ports.SavedRouteRepository) *SavedRouteService {
	return &SavedRouteService{saved: savedRepo}
}

// Save bookmarks the route for the user. Saving an already-bookmarked route
// returns the existing record.
func (s *SavedRouteService) Save(ctx context.Context, userID, routeID uuid.UUID) (*domain.SavedRoute, error) {
	saved, err := s.saved.Add(ctx, userID, routeID)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost a race with a concurrent save; the record exists now.
			return s.saved.Add(ctx, userID, routeID)
		}
		return nil, err
	}
	return saved, nil
}

func (s *SavedRouteService) Unsave(ctx context.Context, userID, routeID uuid.UUID) error {
	if err := s.saved.Remove(ctx, userID, routeID); err != nil {
		if isNotFound(err) {
			return ErrSavedRouteNotFound
		}
		return err
	}
	return nil
}

func (s *SavedRouteService) SavedRoutes(ctx context.Context, userID uuid.UUID) ([]domain.Route, error) {
	return s.saved.ListRoutes(ctx, userID)
}
