package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/ports"
)

var ErrProgressNotFound = errors.New("route progress not found")

type ProgressService struct {
	progress ports.ProgressRepository
}

func NewProgressService(progressRepo ports.ProgressRepository) *ProgressService {
	return &ProgressService{progress: progressRepo}
}

func (s *ProgressService) Get(ctx context.Context, userID, routeID uuid.UUID) (*domain.RouteProgress, error) {
	record, err := s.progress.Find(ctx, userID, routeID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	return record, nil
}

// Upsert merges the patch over the user's progress for the route, creating
// the record on first contact. The stop index is advisory resume state and
// is not checked against the route's stop count.
func (s *ProgressService) Upsert(ctx context.Context, userID, routeID uuid.UUID, patch domain.ProgressPatch) (*domain.RouteProgress, error) {
	if err := validateProgressPatch(patch); err != nil {
		return nil, err
	}
	return s.progress.Upsert(ctx, userID, routeID, patch)
}

func (s *ProgressService) CompletedRoutes(ctx context.Context, userID uuid.UUID) ([]domain.Route, error) {
	return s.progress.ListCompletedRoutes(ctx, userID)
}

func validateProgressPatch(patch domain.ProgressPatch) error {
	verr := &domain.ValidationError{}

	if patch.CurrentStopIndex != nil && *patch.CurrentStopIndex < 0 {
		verr.Add("currentStopIndex", "must be zero or more")
	}
	for i, photo := range patch.PhotosShared {
		field := fmt.Sprintf("photosShared[%d]", i)
		if photo.StopID == "" {
			verr.Add(field+".stopId", "is required")
		}
		if photo.ImageURL == "" {
			verr.Add(field+".imageUrl", "is required")
		}
		if photo.TakenAt == "" {
			verr.Add(field+".takenAt", "is required")
		}
	}

	return verr.Err()
}
