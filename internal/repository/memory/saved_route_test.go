package memory

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
)

func TestSavedRouteRepoAddIsIdempotent(t *testing.T) {
	store := NewStore()
	repo := store.SavedRoutes()
	ctx := context.Background()

	userID, routeID := uuid.New(), uuid.New()

	first, err := repo.Add(ctx, userID, routeID)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	second, err := repo.Add(ctx, userID, routeID)
	if err != nil {
		t.Fatalf("second Add returned error: %v", err)
	}
	if second.ID != first.ID || !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("re-saving must return the stored record, got %+v vs %+v", second, first)
	}
}

func TestSavedRouteRepoRemoveMissing(t *testing.T) {
	store := NewStore()
	repo := store.SavedRoutes()
	ctx := context.Background()

	userID, routeID := uuid.New(), uuid.New()

	if err := repo.Remove(ctx, userID, routeID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for an absent bookmark, got %v", err)
	}

	if _, err := repo.Add(ctx, userID, routeID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := repo.Remove(ctx, userID, routeID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if err := repo.Remove(ctx, userID, routeID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows after removal, got %v", err)
	}
}

func TestSavedRouteRepoListRoutesDropsDanglingReferences(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	route := mustCreateRoute(t, store.Routes(), domain.NewRoute{
		Title: "Kept", Description: "d", Category: domain.CategoryHiddenGems,
		HeroImage: "h", Duration: 30, Distance: 1, Difficulty: domain.DifficultyEasy,
		IsPublished: true,
	}, 0)

	userID := uuid.New()
	saved := store.SavedRoutes()
	if _, err := saved.Add(ctx, userID, route.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	// Bookmark a route that does not exist; listing must skip it silently.
	if _, err := saved.Add(ctx, userID, uuid.New()); err != nil {
		t.Fatalf("Add for dangling route returned error: %v", err)
	}

	routes, err := saved.ListRoutes(ctx, userID)
	if err != nil {
		t.Fatalf("ListRoutes returned error: %v", err)
	}
	if len(routes) != 1 || routes[0].ID != route.ID {
		t.Fatalf("expected only the resolvable route, got %d routes", len(routes))
	}
}

func TestSavedRouteRepoListRoutesScopedToUser(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	route := mustCreateRoute(t, store.Routes(), domain.NewRoute{
		Title: "Shared", Description: "d", Category: domain.CategoryNightlife,
		HeroImage: "h", Duration: 120, Distance: 3, Difficulty: domain.DifficultyModerate,
		IsPublished: true,
	}, 0)

	saved := store.SavedRoutes()
	owner, stranger := uuid.New(), uuid.New()
	if _, err := saved.Add(ctx, owner, route.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	routes, err := saved.ListRoutes(ctx, stranger)
	if err != nil {
		t.Fatalf("ListRoutes returned error: %v", err)
	}
	if len(routes) != 0 {
		t.Fatalf("expected no routes for another user, got %d", len(routes))
	}
}
