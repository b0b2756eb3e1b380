package memory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
)

func (r *SavedRouteRepo) Add(ctx context.Context, userID, routeID uuid.UUID) (*domain.SavedRoute, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey{userID: userID, routeID: routeID}
	if existing, ok := s.saved[key]; ok {
		return cloneSavedRoute(existing), nil
	}

	record := &domain.SavedRoute{
		ID:        uuid.New(),
		UserID:    userID,
		RouteID:   routeID,
		CreatedAt: s.now(),
	}
	s.saved[key] = record
	s.savedOrder = append(s.savedOrder, key)
	return cloneSavedRoute(record), nil
}

func (r *SavedRouteRepo) Remove(ctx context.Context, userID, routeID uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey{userID: userID, routeID: routeID}
	if _, ok := s.saved[key]; !ok {
		return sql.ErrNoRows
	}
	delete(s.saved, key)
	for i, k := range s.savedOrder {
		if k == key {
			s.savedOrder = append(s.savedOrder[:i], s.savedOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r *SavedRouteRepo) ListRoutes(ctx context.Context, userID uuid.UUID) ([]domain.Route, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	routes := make([]domain.Route, 0)
	for _, key := range s.savedOrder {
		if key.userID != userID {
			continue
		}
		// Bookmarks are weak references; a vanished route is skipped.
		route, ok := s.routes[key.routeID]
		if !ok {
			continue
		}
		routes = append(routes, *cloneRoute(route))
	}
	return routes, nil
}
