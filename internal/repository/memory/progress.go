package memory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
)

func (r *ProgressRepo) Find(ctx context.Context, userID, routeID uuid.UUID) (*domain.RouteProgress, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.progress[progressKey{userID: userID, routeID: routeID}]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return cloneProgress(record), nil
}

func (r *ProgressRepo) Upsert(ctx context.Context, userID, routeID uuid.UUID, patch domain.ProgressPatch) (*domain.RouteProgress, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey{userID: userID, routeID: routeID}
	record, ok := s.progress[key]
	if !ok {
		record = &domain.RouteProgress{
			ID:           uuid.New(),
			UserID:       userID,
			RouteID:      routeID,
			PhotosShared: domain.PhotoList{},
			StartedAt:    s.now(),
		}
		s.progress[key] = record
	}

	if patch.CurrentStopIndex != nil {
		record.CurrentStopIndex = *patch.CurrentStopIndex
	}
	if patch.IsCompleted != nil {
		record.IsCompleted = *patch.IsCompleted
	}
	if patch.PhotosShared != nil {
		record.PhotosShared = append(domain.PhotoList{}, patch.PhotosShared...)
	}
	// Only an explicit isCompleted=true stamps the completion time; setting
	// it back to false leaves the old timestamp in place.
	if patch.IsCompleted != nil && *patch.IsCompleted {
		completed := s.now()
		record.CompletedAt = &completed
	}
	return cloneProgress(record), nil
}

func (r *ProgressRepo) ListCompletedRoutes(ctx context.Context, userID uuid.UUID) ([]domain.Route, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	completed := make(map[uuid.UUID]bool)
	for key, record := range s.progress {
		if key.userID == userID && record.IsCompleted {
			completed[key.routeID] = true
		}
	}

	routes := make([]domain.Route, 0, len(completed))
	for _, id := range s.routeOrder {
		if completed[id] {
			routes = append(routes, *cloneRoute(s.routes[id]))
		}
	}
	return routes, nil
}
