package memory

import (
	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
)

// Fixed ids keep the demo data addressable across restarts.
var (
	DemoUserID = uuid.MustParse("7d9f3a52-1c44-4b8a-9f0e-6a2d8c51e301")

	demoRouteMissionArt = uuid.MustParse("b1a6c2d4-8e3f-47a9-b5c1-0d92f4e67a10")
	demoRouteFerryFood  = uuid.MustParse("c2b7d3e5-9f40-48ba-86d2-1ea305f78b21")
	demoRouteHiddenGems = uuid.MustParse("d3c8e4f6-0a51-49cb-97e3-2fb416a89c32")
)

func strPtr(s string) *string { return &s }

// SeedDemoData loads the sample profile and the three San Francisco walking
// routes shipped with the mobile app, so a fresh process has something to
// browse. Safe to call once right after NewStore.
func (s *Store) SeedDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	user := &domain.User{
		ID:           DemoUserID,
		Username:     "alexchen",
		Email:        "alex@example.com",
		Name:         "Alex Chen",
		ProfileImage: strPtr("https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?ixlib=rb-4.0.3&w=120&h=120&fit=crop&crop=face"),
		Location:     strPtr("San Francisco, CA"),
		CreatedAt:    now,
	}
	s.users[user.ID] = user

	creator := DemoUserID
	routes := []*domain.Route{
		{
			ID:              demoRouteMissionArt,
			Title:           "Mission District Street Art",
			Description:     "Explore vibrant murals and local culture",
			LongDescription: strPtr("Discover the vibrant street art scene in San Francisco's Mission District. This curated walking tour takes you through colorful murals, local galleries, and cultural landmarks that showcase the neighborhood's rich artistic heritage."),
			Category:        domain.CategoryCultureArt,
			HeroImage:       "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?ixlib=rb-4.0.3&w=400&h=200&fit=crop",
			Duration:        150,
			Distance:        3.2,
			Difficulty:      domain.DifficultyEasy,
			Rating:          4.8,
			ReviewCount:     124,
			Stops: domain.StopList{
				{
					ID:                   "stop-1",
					Name:                 "Balmy Alley Murals",
					Description:          "Historic mural alley with political art",
					Image:                "https://images.unsplash.com/photo-1541961017774-22349e4a1262?ixlib=rb-4.0.3&w=80&h=80&fit=crop",
					Latitude:             37.748,
					Longitude:            -122.415,
					Order:                1,
					EstimatedTimeMinutes: 20,
				},
				{
					ID:                   "stop-2",
					Name:                 "Mission Dolores Park",
					Description:          "Panoramic city views and local culture",
					Image:                "https://images.unsplash.com/photo-1515003197210-e0cd71810b5f?ixlib=rb-4.0.3&w=80&h=80&fit=crop",
					Latitude:             37.760,
					Longitude:            -122.427,
					Order:                2,
					EstimatedTimeMinutes: 30,
				},
			},
			IsPublished: true,
			CreatedBy:   &creator,
			CreatedAt:   now,
		},
		{
			ID:              demoRouteFerryFood,
			Title:           "Ferry Building Food Tour",
			Description:     "Taste local flavors and artisan foods",
			LongDescription: strPtr("Experience the best of San Francisco's culinary scene at the iconic Ferry Building Marketplace. Sample artisan cheeses, fresh produce, and local specialties while learning about the city's food culture."),
			Category:        domain.CategoryFoodDrink,
			HeroImage:       "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?ixlib=rb-4.0.3&w=400&h=200&fit=crop",
			Duration:        90,
			Distance:        1.8,
			Difficulty:      domain.DifficultyEasy,
			Rating:          4.9,
			ReviewCount:     89,
			Stops: domain.StopList{
				{
					ID:                   "stop-3",
					Name:                 "Ferry Building Marketplace",
					Description:          "Historic marketplace with local vendors",
					Image:                "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?ixlib=rb-4.0.3&w=80&h=80&fit=crop",
					Latitude:             37.795,
					Longitude:            -122.393,
					Order:                1,
					EstimatedTimeMinutes: 45,
				},
			},
			IsPublished: true,
			CreatedBy:   &creator,
			CreatedAt:   now,
		},
		{
			ID:              demoRouteHiddenGems,
			Title:           "Hidden Gardens & Secret Spots",
			Description:     "Discover SF's best-kept secrets",
			LongDescription: strPtr("Uncover San Francisco's hidden gems - secret gardens, quiet viewpoints, and lesser-known architectural treasures that most visitors never see."),
			Category:        domain.CategoryHiddenGems,
			HeroImage:       "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?ixlib=rb-4.0.3&w=400&h=200&fit=crop",
			Duration:        180,
			Distance:        4.1,
			Difficulty:      domain.DifficultyModerate,
			Rating:          4.7,
			ReviewCount:     67,
			Stops: domain.StopList{
				{
					ID:                   "stop-4",
					Name:                 "Secret Garden",
					Description:          "Hidden oasis in the heart of the city",
					Image:                "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?ixlib=rb-4.0.3&w=80&h=80&fit=crop",
					Latitude:             37.773,
					Longitude:            -122.431,
					Order:                1,
					EstimatedTimeMinutes: 30,
				},
			},
			IsPublished: true,
			CreatedBy:   &creator,
			CreatedAt:   now,
		},
	}

	for _, route := range routes {
		s.routes[route.ID] = route
		s.routeOrder = append(s.routeOrder, route.ID)
	}
}
