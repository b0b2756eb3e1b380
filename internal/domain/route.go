package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RouteCategory string

const (
	CategoryFoodDrink  RouteCategory = "food-drink"
	CategoryCultureArt RouteCategory = "culture-art"
	CategoryHiddenGems RouteCategory = "hidden-gems"
	CategoryNightlife  RouteCategory = "nightlife"
)

func (c RouteCategory) Valid() bool {
	switch c {
	case CategoryFoodDrink, CategoryCultureArt, CategoryHiddenGems, CategoryNightlife:
		return true
	}
	return false
}

type RouteDifficulty string

const (
	DifficultyEasy        RouteDifficulty = "easy"
	DifficultyModerate    RouteDifficulty = "moderate"
	DifficultyChallenging RouteDifficulty = "challenging"
)

func (d RouteDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyChallenging:
		return true
	}
	return false
}

// RouteStop is a waypoint embedded in a route. Stops have no lifecycle of
// their own; the owning route's stops column stores them as one JSON sequence
// ordered by the 1-based Order field.
type RouteStop struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Image                string  `json:"image"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Order                int     `json:"order"`
	EstimatedTimeMinutes int     `json:"estimatedTimeMinutes"`
}

// StopList owns a route's stops and maps them to a jsonb column.
type StopList []RouteStop

func (s StopList) Value() (driver.Value, error) {
	if s == nil {
		s = StopList{}
	}
	return json.Marshal(s)
}

func (s *StopList) Scan(src any) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, s)
	case string:
		return json.Unmarshal([]byte(data), s)
	case nil:
		*s = StopList{}
		return nil
	default:
		return fmt.Errorf("stops: cannot scan %T", src)
	}
}

type Route struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Title           string          `db:"title" json:"title"`
	Description     string          `db:"description" json:"description"`
	LongDescription *string         `db:"long_description" json:"longDescription,omitempty"`
	Category        RouteCategory   `db:"category" json:"category"`
	HeroImage       string          `db:"hero_image" json:"heroImage"`
	Duration        int             `db:"duration" json:"duration"`
	Distance        float64         `db:"distance" json:"distance"`
	Difficulty      RouteDifficulty `db:"difficulty" json:"difficulty"`
	Rating          float64         `db:"rating" json:"rating"`
	ReviewCount     int             `db:"review_count" json:"reviewCount"`
	Stops           StopList        `db:"stops" json:"stops"`
	IsPublished     bool            `db:"is_published" json:"isPublished"`
	CreatedBy       *uuid.UUID      `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
}

// NewRoute is the create payload accepted by the store. Rating and review
// count are not part of it; new routes always start at zero.
type NewRoute struct {
	Title           string
	Description     string
	LongDescription *string
	Category        RouteCategory
	HeroImage       string
	Duration        int
	Distance        float64
	Difficulty      RouteDifficulty
	Stops           []RouteStop
	IsPublished     bool
	CreatedBy       *uuid.UUID
}

// RoutePatch updates a route partially; nil fields are left untouched.
type RoutePatch struct {
	Title           *string
	Description     *string
	LongDescription *string
	Category        *RouteCategory
	HeroImage       *string
	Duration        *int
	Distance        *float64
	Difficulty      *RouteDifficulty
	Rating          *float64
	ReviewCount     *int
	Stops           []RouteStop
	IsPublished     *bool
}
