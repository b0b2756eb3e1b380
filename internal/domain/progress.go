package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoutePhoto is a photo a user shared at one of the route's stops. StopID is
// a weak reference into the route's stop list; TakenAt is an ISO timestamp
// supplied by the client.
type RoutePhoto struct {
	ID       string  `json:"id"`
	StopID   string  `json:"stopId"`
	ImageURL string  `json:"imageUrl"`
	Caption  *string `json:"caption,omitempty"`
	TakenAt  string  `json:"takenAt"`
}

// PhotoList maps a progress record's shared photos to a jsonb column.
type PhotoList []RoutePhoto

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		p = PhotoList{}
	}
	return json.Marshal(p)
}

func (p *PhotoList) Scan(src any) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, p)
	case string:
		return json.Unmarshal([]byte(data), p)
	case nil:
		*p = PhotoList{}
		return nil
	default:
		return fmt.Errorf("photos: cannot scan %T", src)
	}
}

// RouteProgress is a user's traversal state for one route. At most one
// record exists per (UserID, RouteID); StartedAt is fixed at creation and
// CompletedAt is stamped whenever a patch sets IsCompleted to true.
type RouteProgress struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	UserID           uuid.UUID  `db:"user_id" json:"userId"`
	RouteID          uuid.UUID  `db:"route_id" json:"routeId"`
	CurrentStopIndex int        `db:"current_stop_index" json:"currentStopIndex"`
	IsCompleted      bool       `db:"is_completed" json:"isCompleted"`
	PhotosShared     PhotoList  `db:"photos_shared" json:"photosShared"`
	StartedAt        time.Time  `db:"started_at" json:"startedAt"`
	CompletedAt      *time.Time `db:"completed_at" json:"completedAt,omitempty"`
}

// ProgressPatch carries the fields of an upsert. Nil fields keep whatever
// the existing record holds; on first creation they fall back to zero
// values. PhotosShared replaces the whole sequence when present.
type ProgressPatch struct {
	CurrentStopIndex *int
	IsCompleted      *bool
	PhotosShared     []RoutePhoto
}
