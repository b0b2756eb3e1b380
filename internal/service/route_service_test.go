package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/memory"
)

func validNewRoute() domain.NewRoute {
	return domain.NewRoute{
		Title:       "Harbor Lights Walk",
		Description: "Evening stroll along the piers",
		Category:    domain.CategoryNightlife,
		HeroImage:   "https://example.com/harbor.jpg",
		Duration:    75,
		Distance:    2.4,
		Difficulty:  domain.DifficultyEasy,
		Stops: []domain.RouteStop{
			{ID: "s1", Name: "Pier 7", Latitude: 37.800, Longitude: -122.398, Order: 1, EstimatedTimeMinutes: 15},
			{ID: "s2", Name: "Exploratorium", Latitude: 37.801, Longitude: -122.397, Order: 2, EstimatedTimeMinutes: 30},
		},
		IsPublished: true,
	}
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	fields := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	return fields
}

func TestRouteServiceCreateDefaultsDifficulty(t *testing.T) {
	svc := NewRouteService(memory.NewStore().Routes())

	input := validNewRoute()
	input.Difficulty = ""
	route, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if route.Difficulty != domain.DifficultyEasy {
		t.Fatalf("expected default difficulty easy, got %q", route.Difficulty)
	}
}

func TestRouteServiceCreateRejectsBadFields(t *testing.T) {
	svc := NewRouteService(memory.NewStore().Routes())

	input := validNewRoute()
	input.Title = ""
	input.Distance = -1
	input.Difficulty = domain.RouteDifficulty("extreme")

	_, err := svc.Create(context.Background(), input)
	fields := fieldMessages(t, err)
	if _, ok := fields["title"]; !ok {
		t.Fatalf("expected a title error, got %v", fields)
	}
	if _, ok := fields["distance"]; !ok {
		t.Fatalf("expected a distance error, got %v", fields)
	}
	if _, ok := fields["difficulty"]; !ok {
		t.Fatalf("expected a difficulty error, got %v", fields)
	}
	if _, ok := fields["description"]; ok {
		t.Fatalf("description was valid, got %v", fields)
	}
}

func TestRouteServiceCreateRejectsBadStops(t *testing.T) {
	svc := NewRouteService(memory.NewStore().Routes())

	input := validNewRoute()
	input.Stops = []domain.RouteStop{
		{ID: "s1", Name: "", Latitude: 95, Longitude: -122.4, Order: 1},
		{ID: "s2", Name: "Backtrack", Latitude: 37.8, Longitude: -122.4, Order: 1},
	}

	_, err := svc.Create(context.Background(), input)
	fields := fieldMessages(t, err)
	for _, want := range []string{"stops[0].name", "stops[0].latitude", "stops[1].order"} {
		if _, ok := fields[want]; !ok {
			t.Fatalf("expected an error on %s, got %v", want, fields)
		}
	}
}

func TestRouteServiceGetMissing(t *testing.T) {
	svc := NewRouteService(memory.NewStore().Routes())

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestRouteServiceUpdateValidatesPatch(t *testing.T) {
	store := memory.NewStore()
	svc := NewRouteService(store.Routes())
	ctx := context.Background()

	route, err := svc.Create(ctx, validNewRoute())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	rating := 6.0
	_, err = svc.Update(ctx, route.ID, domain.RoutePatch{Rating: &rating})
	fields := fieldMessages(t, err)
	if _, ok := fields["rating"]; !ok {
		t.Fatalf("expected a rating error, got %v", fields)
	}

	good := 4.5
	updated, err := svc.Update(ctx, route.ID, domain.RoutePatch{Rating: &good})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Rating != 4.5 {
		t.Fatalf("rating not applied: %v", updated.Rating)
	}

	_, err = svc.Update(ctx, uuid.New(), domain.RoutePatch{Rating: &good})
	if !errors.Is(err, ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestRouteServiceListPassesFilterThrough(t *testing.T) {
	store := memory.NewStore()
	svc := NewRouteService(store.Routes())
	ctx := context.Background()

	if _, err := svc.Create(ctx, validNewRoute()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	other := validNewRoute()
	other.Title = "Gallery Hop"
	other.Category = domain.CategoryCultureArt
	if _, err := svc.Create(ctx, other); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	category := domain.CategoryCultureArt
	routes, err := svc.List(ctx, domain.RouteFilter{Category: &category})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(routes) != 1 || routes[0].Title != "Gallery Hop" {
		t.Fatalf("expected only the culture route, got %d routes", len(routes))
	}
}
